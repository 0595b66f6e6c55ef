package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCargoRequest struct {
	EstudianteID     string          `json:"estudiante_id"     validate:"required,uuid"`
	PeriodoID        *string         `json:"periodo_id"        validate:"omitempty,uuid"`
	Concepto         string          `json:"concepto"          validate:"required,min=2,max=200"`
	Monto            decimal.Decimal `json:"monto"             validate:"required"`
	FechaVencimiento string          `json:"fecha_vencimiento" validate:"required"` // YYYY-MM-DD
}

type RegistrarPagoRequest struct {
	CargoID    string          `json:"cargo_id"   validate:"required,uuid"`
	Monto      decimal.Decimal `json:"monto"      validate:"required"`
	Metodo     string          `json:"metodo"     validate:"required,oneof=efectivo tarjeta transferencia"`
	Referencia *string         `json:"referencia" validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CargoResponse struct {
	ID               string          `json:"id"`
	EstudianteID     string          `json:"estudiante_id"`
	PeriodoID        *string         `json:"periodo_id"`
	Concepto         string          `json:"concepto"`
	Monto            decimal.Decimal `json:"monto"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	FechaEmision     string          `json:"fecha_emision"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	Estado           string          `json:"estado"`
}

type PagoResponse struct {
	ID           string          `json:"id"`
	CargoID      string          `json:"cargo_id"`
	EstudianteID string          `json:"estudiante_id"`
	Monto        decimal.Decimal `json:"monto"`
	FechaPago    string          `json:"fecha_pago"`
	Metodo       string          `json:"metodo"`
	Referencia   *string         `json:"referencia"`
	// CargoEstado and SaldoPendiente reflect the parent cargo AFTER this
	// payment was applied, so the caller needs no second round-trip.
	CargoEstado    string          `json:"cargo_estado,omitempty"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
}
