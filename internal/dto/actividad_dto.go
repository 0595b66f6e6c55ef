package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearActividadRequest struct {
	ClaseID      string  `json:"clase_id"      validate:"required,uuid"`
	Titulo       string  `json:"titulo"        validate:"required,min=2,max=200"`
	Descripcion  *string `json:"descripcion"`
	FechaEntrega string  `json:"fecha_entrega" validate:"required"` // YYYY-MM-DD
}

type EntregarRequest struct {
	Comentarios *string `json:"comentarios" validate:"omitempty,max=1000"`
}

type CalificarRequest struct {
	Calificacion decimal.Decimal `json:"calificacion" validate:"required"`
	Comentarios  *string         `json:"comentarios"  validate:"omitempty,max=1000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ActividadResponse struct {
	ID           string  `json:"id"`
	ClaseID      string  `json:"clase_id"`
	Curso        string  `json:"curso,omitempty"`
	Titulo       string  `json:"titulo"`
	Descripcion  *string `json:"descripcion"`
	FechaEntrega string  `json:"fecha_entrega"`
}

type EntregaResponse struct {
	ID                 string           `json:"id"`
	ActividadID        string           `json:"actividad_id"`
	EstudianteID       string           `json:"estudiante_id"`
	Matricula          string           `json:"matricula,omitempty"`
	Estudiante         *string          `json:"estudiante,omitempty"`
	FechaEntrega       string           `json:"fecha_entrega"`
	Comentarios        *string          `json:"comentarios"`
	Calificacion       *decimal.Decimal `json:"calificacion"`
	ComentariosMaestro *string          `json:"comentarios_maestro"`
}
