package handler

import (
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClasesHandler struct {
	svc        service.ClaseService
	horarioSvc service.HorarioService
}

func NewClasesHandler(svc service.ClaseService, horarioSvc service.HorarioService) *ClasesHandler {
	return &ClasesHandler{svc: svc, horarioSvc: horarioSvc}
}

// Crear godoc
// @Summary      Crear clase
// @Description  Programa una reunión semanal recurrente de un curso. El slot (periodo, curso, maestro, día, hora de inicio) es único.
// @Tags         clases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ClaseRequest true "Datos de la clase"
// @Success      201 {object} dto.ClaseResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/clases [post]
func (h *ClasesHandler) Crear(c *gin.Context) {
	var req dto.ClaseRequest
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
// @Summary      Obtener clase
// @Tags         clases
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la clase"
// @Success      200 {object} dto.ClaseResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clases/{id} [get]
func (h *ClasesHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("clase no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorPeriodo godoc
// @Summary      Listar clases de un periodo
// @Tags         clases
// @Produce      json
// @Security     BearerAuth
// @Param        periodo_id query string true "UUID del periodo"
// @Success      200 {array} dto.ClaseResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/clases [get]
func (h *ClasesHandler) ListarPorPeriodo(c *gin.Context) {
	periodoID, err := uuid.Parse(c.Query("periodo_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("periodo_id invalido"))
		return
	}
	resp, err := h.svc.ListarPorPeriodo(c.Request.Context(), periodoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clases"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar clase
// @Tags         clases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la clase"
// @Param        body body dto.ClaseRequest true "Datos de la clase"
// @Success      200 {object} dto.ClaseResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/clases/{id} [put]
func (h *ClasesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ClaseRequest
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
// @Summary      Eliminar clase
// @Tags         clases
// @Security     BearerAuth
// @Param        id path string true "UUID de la clase"
// @Success      204
// @Router       /v1/clases/{id} [delete]
func (h *ClasesHandler) Eliminar(c *gin.Context) {
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

// InscribirEstudiantes godoc
// @Summary      Inscribir estudiantes en una clase
// @Description  Reemplaza el roster de la clase con exactamente los estudiantes dados.
// @Tags         clases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la clase"
// @Param        body body dto.InscribirEstudiantesRequest true "IDs de estudiantes"
// @Success      200 {object} dto.ClaseResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/clases/{id}/estudiantes [put]
func (h *ClasesHandler) InscribirEstudiantes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.InscribirEstudiantesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.InscribirEstudiantes(c.Request.Context(), id, req.EstudianteIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Horario godoc
// @Summary      Horario semanal
// @Description  Proyecta las clases del periodo sobre la grilla hora (07–17) × día (LUN–SAB). Celdas vacías presentes como listas vacías; clases fuera del rango visible se omiten.
// @Tags         horario
// @Produce      json
// @Security     BearerAuth
// @Param        periodo_id query string false "UUID del periodo (default: el más reciente)"
// @Success      200 {object} dto.HorarioResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/horario [get]
func (h *ClasesHandler) Horario(c *gin.Context) {
	var periodoID *uuid.UUID
	if raw := c.Query("periodo_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("periodo_id invalido"))
			return
		}
		periodoID = &pid
	}
	resp, err := h.horarioSvc.ObtenerHorario(c.Request.Context(), periodoID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
