package handler

import (
	"errors"
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/middleware"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActividadesHandler struct{ svc service.ActividadService }

func NewActividadesHandler(svc service.ActividadService) *ActividadesHandler {
	return &ActividadesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear actividad
// @Description  Registra una actividad en una clase. Solo el maestro titular de la clase puede crearla.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearActividadRequest true "Datos de la actividad"
// @Success      201 {object} dto.ActividadResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/actividades [post]
func (h *ActividadesHandler) Crear(c *gin.Context) {
	var req dto.CrearActividadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		if errors.Is(err, service.ErrNoAutorizado) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Entregar godoc
// @Summary      Entregar actividad
// @Description  Registra la entrega del estudiante autenticado. Una segunda entrega reemplaza la anterior y borra la calificación previa.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la actividad"
// @Param        body body dto.EntregarRequest true "Comentarios opcionales"
// @Success      200 {object} dto.EntregaResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/actividades/{id}/entregar [post]
func (h *ActividadesHandler) Entregar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.EntregarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Entregar(c.Request.Context(), usuarioID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNoAutorizado) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Calificar godoc
// @Summary      Calificar entrega
// @Description  Asigna calificación (0–100) y comentarios a una entrega. Solo el maestro titular de la clase puede calificar.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la entrega"
// @Param        body body dto.CalificarRequest true "Calificación"
// @Success      200 {object} dto.EntregaResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/entregas/{id}/calificar [patch]
func (h *ActividadesHandler) Calificar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CalificarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Calificar(c.Request.Context(), usuarioID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNoAutorizado) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarEntregas godoc
// @Summary      Listar entregas de una actividad
// @Tags         actividades
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la actividad"
// @Success      200 {array} dto.EntregaResponse
// @Failure      403 {object} apierror.APIError
// @Router       /v1/actividades/{id}/entregas [get]
func (h *ActividadesHandler) ListarEntregas(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.ListarEntregas(c.Request.Context(), usuarioID, id)
	if err != nil {
		if errors.Is(err, service.ErrNoAutorizado) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
