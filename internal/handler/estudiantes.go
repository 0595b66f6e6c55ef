package handler

import (
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EstudiantesHandler struct {
	svc            service.EstudianteService
	inscripcionSvc service.InscripcionService
}

func NewEstudiantesHandler(svc service.EstudianteService, inscripcionSvc service.InscripcionService) *EstudiantesHandler {
	return &EstudiantesHandler{svc: svc, inscripcionSvc: inscripcionSvc}
}

// Crear godoc
// @Summary      Crear estudiante
// @Description  Crea la cuenta de usuario (username = matrícula, contraseña temporal) y el perfil académico en una transacción. Si se envía grado_id también inscribe y genera los cargos.
// @Tags         estudiantes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearEstudianteRequest true "Datos del estudiante"
// @Success      201 {object} dto.EstudianteResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/estudiantes [post]
func (h *EstudiantesHandler) Crear(c *gin.Context) {
	var req dto.CrearEstudianteRequest
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
// @Summary      Obtener estudiante
// @Tags         estudiantes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del estudiante"
// @Success      200 {object} dto.EstudianteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/estudiantes/{id} [get]
func (h *EstudiantesHandler) ObtenerPorID(c *gin.Context) {
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
// @Summary      Listar estudiantes
// @Tags         estudiantes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.EstudianteResponse
// @Router       /v1/estudiantes [get]
func (h *EstudiantesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar estudiantes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar estudiante
// @Tags         estudiantes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del estudiante"
// @Param        body body dto.ActualizarEstudianteRequest true "Campos a actualizar"
// @Success      200 {object} dto.EstudianteResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/estudiantes/{id} [put]
func (h *EstudiantesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarEstudianteRequest
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
// @Summary      Eliminar estudiante
// @Tags         estudiantes
// @Security     BearerAuth
// @Param        id path string true "UUID del estudiante"
// @Success      204
// @Router       /v1/estudiantes/{id} [delete]
func (h *EstudiantesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Inscribir godoc
// @Summary      Inscribir estudiante en un grado
// @Description  Reemplaza el roster de clases con la plantilla del grado y materializa los cargos (inscripción, útiles, 12 colegiaturas). Idempotente por concepto: reintentar nunca duplica cargos.
// @Tags         estudiantes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del estudiante"
// @Param        body body dto.InscribirRequest true "Grado destino"
// @Success      200 {object} dto.InscripcionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/estudiantes/{id}/inscribir [post]
func (h *EstudiantesHandler) Inscribir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.InscribirRequest
	if !bindAndValidate(c, &req) {
		return
	}
	gradoID, err := uuid.Parse(req.GradoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("grado_id invalido"))
		return
	}
	resp, err := h.inscripcionSvc.Inscribir(c.Request.Context(), id, gradoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
