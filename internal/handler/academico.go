package handler

import (
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ─── Periodos ────────────────────────────────────────────────────────────────

type PeriodosHandler struct{ svc service.PeriodoService }

func NewPeriodosHandler(svc service.PeriodoService) *PeriodosHandler {
	return &PeriodosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear periodo académico
// @Tags         periodos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.PeriodoRequest true "Datos del periodo"
// @Success      201 {object} dto.PeriodoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/periodos [post]
func (h *PeriodosHandler) Crear(c *gin.Context) {
	var req dto.PeriodoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar periodos académicos
// @Tags         periodos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PeriodoResponse
// @Router       /v1/periodos [get]
func (h *PeriodosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar periodos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar periodo académico
// @Tags         periodos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del periodo"
// @Param        body body dto.PeriodoRequest true "Datos del periodo"
// @Success      200 {object} dto.PeriodoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/periodos/{id} [put]
func (h *PeriodosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.PeriodoRequest
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
// @Summary      Eliminar periodo académico
// @Tags         periodos
// @Security     BearerAuth
// @Param        id path string true "UUID del periodo"
// @Success      204
// @Router       /v1/periodos/{id} [delete]
func (h *PeriodosHandler) Eliminar(c *gin.Context) {
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

// ─── Cursos ──────────────────────────────────────────────────────────────────

type CursosHandler struct{ svc service.CursoService }

func NewCursosHandler(svc service.CursoService) *CursosHandler { return &CursosHandler{svc: svc} }

// Crear godoc
// @Summary      Crear curso
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CursoRequest true "Datos del curso"
// @Success      201 {object} dto.CursoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/cursos [post]
func (h *CursosHandler) Crear(c *gin.Context) {
	var req dto.CursoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar cursos
// @Tags         cursos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CursoResponse
// @Router       /v1/cursos [get]
func (h *CursosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cursos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar curso
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del curso"
// @Param        body body dto.CursoRequest true "Datos del curso"
// @Success      200 {object} dto.CursoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/cursos/{id} [put]
func (h *CursosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CursoRequest
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
// @Summary      Eliminar curso
// @Tags         cursos
// @Security     BearerAuth
// @Param        id path string true "UUID del curso"
// @Success      204
// @Router       /v1/cursos/{id} [delete]
func (h *CursosHandler) Eliminar(c *gin.Context) {
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

// ─── Grados ──────────────────────────────────────────────────────────────────

type GradosHandler struct{ svc service.GradoService }

func NewGradosHandler(svc service.GradoService) *GradosHandler { return &GradosHandler{svc: svc} }

// Crear godoc
// @Summary      Crear grado
// @Description  Crea una plantilla de grado: clases y montos (inscripción, útiles, colegiatura mensual). Un monto en cero desactiva el cargo correspondiente.
// @Tags         grados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GradoRequest true "Datos del grado"
// @Success      201 {object} dto.GradoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/grados [post]
func (h *GradosHandler) Crear(c *gin.Context) {
	var req dto.GradoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener grado
// @Tags         grados
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del grado"
// @Success      200 {object} dto.GradoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/grados/{id} [get]
func (h *GradosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar grados
// @Tags         grados
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.GradoResponse
// @Router       /v1/grados [get]
func (h *GradosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar grados"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar grado
// @Tags         grados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del grado"
// @Param        body body dto.GradoRequest true "Datos del grado"
// @Success      200 {object} dto.GradoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/grados/{id} [put]
func (h *GradosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.GradoRequest
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
// @Summary      Eliminar grado
// @Tags         grados
// @Security     BearerAuth
// @Param        id path string true "UUID del grado"
// @Success      204
// @Router       /v1/grados/{id} [delete]
func (h *GradosHandler) Eliminar(c *gin.Context) {
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

// AsignarClases godoc
// @Summary      Asignar clases a un grado
// @Description  Reemplaza la plantilla de clases del grado. Todas las clases deben pertenecer al mismo periodo del grado.
// @Tags         grados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del grado"
// @Param        body body dto.AsignarClasesRequest true "IDs de clases"
// @Success      200 {object} dto.GradoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/grados/{id}/clases [put]
func (h *GradosHandler) AsignarClases(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AsignarClasesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AsignarClases(c.Request.Context(), id, req.ClaseIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
