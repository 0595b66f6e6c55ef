package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metodos de pago.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
)

// Pago is a monetary transaction applied to exactly one Cargo.
// FechaPago is set once at creation and never changes.
type Pago struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CargoID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	EstudianteID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaPago    time.Time       `gorm:"type:date;not null"`
	Metodo       string          `gorm:"type:varchar(20);not null"`
	Referencia   *string
	CreatedAt    time.Time

	Cargo *Cargo `gorm:"foreignKey:CargoID"`
}
