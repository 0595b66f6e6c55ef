package handler

import (
	"errors"
	"net/http"

	"github.com/WilliamCuc/PG2-Edutech/internal/apierror"
	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CargosHandler struct {
	svc     service.CargoService
	pagoSvc service.PagoService
}

func NewCargosHandler(svc service.CargoService, pagoSvc service.PagoService) *CargosHandler {
	return &CargosHandler{svc: svc, pagoSvc: pagoSvc}
}

// Crear godoc
// @Summary      Crear cargo manual
// @Description  Registra un cargo arbitrario (multa, examen extraordinario, etc.) sobre un estudiante.
// @Tags         cargos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCargoRequest true "Detalle del cargo"
// @Success      201 {object} dto.CargoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/cargos [post]
func (h *CargosHandler) Crear(c *gin.Context) {
	var req dto.CrearCargoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCargo(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID godoc
// @Summary      Obtener cargo
// @Tags         cargos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del cargo"
// @Success      200 {object} dto.CargoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/cargos/{id} [get]
func (h *CargosHandler) ObtenerPorID(c *gin.Context) {
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

// ListarPorEstudiante godoc
// @Summary      Listar cargos de un estudiante
// @Tags         cargos
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string true  "UUID del estudiante"
// @Param        estado query string false "pendiente | pagado | vencido | cancelado"
// @Success      200 {array} dto.CargoResponse
// @Router       /v1/estudiantes/{id}/cargos [get]
func (h *CargosHandler) ListarPorEstudiante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ListarPorEstudiante(c.Request.Context(), id, c.Query("estado"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cargos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar godoc
// @Summary      Cancelar cargo
// @Description  Marca el cargo como cancelado. El estado cancelado es terminal: ningún recálculo posterior lo modifica.
// @Tags         cargos
// @Security     BearerAuth
// @Param        id path string true "UUID del cargo"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/cargos/{id}/cancelar [patch]
func (h *CargosHandler) Cancelar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.CancelarCargo(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Eliminar godoc
// @Summary      Eliminar cargo
// @Description  Borra un cargo sin pagos. Un cargo con pagos registrados no puede eliminarse (409).
// @Tags         cargos
// @Security     BearerAuth
// @Param        id path string true "UUID del cargo"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/cargos/{id} [delete]
func (h *CargosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.EliminarCargo(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCargoConPagos) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarPagos godoc
// @Summary      Listar pagos de un cargo
// @Tags         pagos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del cargo"
// @Success      200 {array} dto.PagoResponse
// @Router       /v1/cargos/{id}/pagos [get]
func (h *CargosHandler) ListarPagos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.pagoSvc.ListarPorCargo(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pagos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ─── Pagos ───────────────────────────────────────────────────────────────────

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// Registrar godoc
// @Summary      Registrar pago
// @Description  Abona al cargo y recalcula su estado en la misma transacción. La respuesta incluye el estado y saldo resultantes.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarPagoRequest true "Detalle del pago"
// @Success      201 {object} dto.PagoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/pagos [post]
func (h *PagosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Eliminar godoc
// @Summary      Eliminar pago
// @Description  Revierte un pago y recalcula el estado del cargo padre en la misma transacción.
// @Tags         pagos
// @Security     BearerAuth
// @Param        id path string true "UUID del pago"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pagos/{id} [delete]
func (h *PagosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.EliminarPago(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
