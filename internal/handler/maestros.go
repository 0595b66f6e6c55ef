package handler

import (
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaestrosHandler struct{ svc service.MaestroService }

func NewMaestrosHandler(svc service.MaestroService) *MaestrosHandler {
	return &MaestrosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear maestro
// @Description  Crea la cuenta de usuario (username = número de empleado, contraseña temporal) y el perfil profesional en una transacción.
// @Tags         maestros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearMaestroRequest true "Datos del maestro"
// @Success      201 {object} dto.MaestroResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/maestros [post]
func (h *MaestrosHandler) Crear(c *gin.Context) {
	var req dto.CrearMaestroRequest
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
// @Summary      Obtener maestro
// @Tags         maestros
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del maestro"
// @Success      200 {object} dto.MaestroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/maestros/{id} [get]
func (h *MaestrosHandler) ObtenerPorID(c *gin.Context) {
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
// @Summary      Listar maestros
// @Tags         maestros
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MaestroResponse
// @Router       /v1/maestros [get]
func (h *MaestrosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar maestros"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar maestro
// @Tags         maestros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del maestro"
// @Param        body body dto.ActualizarMaestroRequest true "Campos a actualizar"
// @Success      200 {object} dto.MaestroResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/maestros/{id} [put]
func (h *MaestrosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarMaestroRequest
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
// @Summary      Eliminar maestro
// @Tags         maestros
// @Security     BearerAuth
// @Param        id path string true "UUID del maestro"
// @Success      204
// @Router       /v1/maestros/{id} [delete]
func (h *MaestrosHandler) Eliminar(c *gin.Context) {
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

// AsignarCursos godoc
// @Summary      Asignar cursos a un maestro
// @Description  Reemplaza el conjunto de cursos que el maestro puede impartir.
// @Tags         maestros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del maestro"
// @Param        body body dto.AsignarCursosRequest true "IDs de cursos"
// @Success      200 {object} dto.MaestroResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/maestros/{id}/cursos [put]
func (h *MaestrosHandler) AsignarCursos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AsignarCursosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AsignarCursos(c.Request.Context(), id, req.CursoIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
