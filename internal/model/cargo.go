package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cargo estados. Estado is always derived from the payment sum and the due date,
// except "cancelado", which is terminal and only set by an explicit admin action.
const (
	CargoPendiente = "pendiente"
	CargoPagado    = "pagado"
	CargoVencido   = "vencido"
	CargoCancelado = "cancelado"
)

// Cargo is a billable obligation issued to a student.
// Concepto is free text and doubles as the natural dedup key for charges
// materialized by enrollment ("Inscripción", "Colegiatura 2025-03", …).
type Cargo struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EstudianteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodoID        *uuid.UUID      `gorm:"type:uuid;index"`
	Concepto         string          `gorm:"not null;index"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaEmision     time.Time       `gorm:"type:date;not null"`
	FechaVencimiento time.Time       `gorm:"type:date;not null"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Estudiante *Estudiante       `gorm:"foreignKey:EstudianteID"`
	Periodo    *PeriodoAcademico `gorm:"foreignKey:PeriodoID"`
	// RESTRICT: a cargo with pagos can never be deleted, only cancelled
	Pagos []Pago `gorm:"foreignKey:CargoID;constraint:OnDelete:RESTRICT"`
}

// Saldo returns monto minus the sum of the loaded pagos.
// May go negative on overpayment; status computation floors it at pagado.
func (c *Cargo) Saldo() decimal.Decimal {
	pagado := decimal.Zero
	for _, p := range c.Pagos {
		pagado = pagado.Add(p.Monto)
	}
	return c.Monto.Sub(pagado)
}
