package handler

import (
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/middleware"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PortalHandler struct{ svc service.PortalService }

func NewPortalHandler(svc service.PortalService) *PortalHandler {
	return &PortalHandler{svc: svc}
}

// Estudiante godoc
// @Summary      Portal del estudiante
// @Description  Panel agregado: clases del periodo resuelto, actividades anotadas con estado de entrega y cargos pendientes.
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Param        periodo_id query string false "UUID del periodo (default: resuelto por rol)"
// @Success      200 {object} dto.PortalEstudianteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/portal/estudiante [get]
func (h *PortalHandler) Estudiante(c *gin.Context) {
	periodoID, ok := parsePeriodoQuery(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.PortalEstudiante(c.Request.Context(), usuarioID, periodoID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Maestro godoc
// @Summary      Portal del maestro
// @Description  Panel agregado: clases impartidas en el periodo resuelto con conteo de inscritos, y sus actividades.
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Param        periodo_id query string false "UUID del periodo (default: el más reciente)"
// @Success      200 {object} dto.PortalMaestroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/portal/maestro [get]
func (h *PortalHandler) Maestro(c *gin.Context) {
	periodoID, ok := parsePeriodoQuery(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.PortalMaestro(c.Request.Context(), usuarioID, periodoID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parsePeriodoQuery(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("periodo_id")
	if raw == "" {
		return nil, true
	}
	pid, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("periodo_id invalido"))
		return nil, false
	}
	return &pid, true
}

// ─── Noticias / Notificaciones ───────────────────────────────────────────────

type NoticiasHandler struct{ svc service.NoticiaService }

func NewNoticiasHandler(svc service.NoticiaService) *NoticiasHandler {
	return &NoticiasHandler{svc: svc}
}

// Crear godoc
// @Summary      Publicar noticia
// @Tags         noticias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.NoticiaRequest true "Contenido de la noticia"
// @Success      201 {object} dto.NoticiaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/noticias [post]
func (h *NoticiasHandler) Crear(c *gin.Context) {
	var req dto.NoticiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	autorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Crear(c.Request.Context(), autorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar noticias publicadas
// @Tags         noticias
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.NoticiaResponse
// @Router       /v1/noticias [get]
func (h *NoticiasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar noticias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar noticia
// @Tags         noticias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la noticia"
// @Param        body body dto.NoticiaRequest true "Contenido de la noticia"
// @Success      200 {object} dto.NoticiaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/noticias/{id} [put]
func (h *NoticiasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.NoticiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar noticia
// @Tags         noticias
// @Security     BearerAuth
// @Param        id path string true "UUID de la noticia"
// @Success      204
// @Router       /v1/noticias/{id} [delete]
func (h *NoticiasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// EnviarNotificacion godoc
// @Summary      Enviar notificación por audiencia
// @Description  Crea una notificación por cada usuario activo de la audiencia con email y la encola para envío asíncrono. Los fallos de encolado quedan para el retry cron.
// @Tags         noticias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.EnviarNotificacionRequest true "Audiencia y mensaje"
// @Success      202 {object} dto.EnvioNotificacionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/notificaciones [post]
func (h *NoticiasHandler) EnviarNotificacion(c *gin.Context) {
	var req dto.EnviarNotificacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	autorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.EnviarNotificacion(c.Request.Context(), autorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
