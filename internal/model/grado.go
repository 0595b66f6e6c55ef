package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Grado is a grade template: the bundle of clases a student is enrolled into,
// plus the three fee amounts materialized as cargos at enrollment time.
// A zero amount disables the corresponding charge.
type Grado struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre                  string          `gorm:"not null"`
	PeriodoID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	MontoInscripcion        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MontoUtiles             decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MontoColegiaturaMensual decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt               time.Time
	UpdatedAt               time.Time

	Periodo *PeriodoAcademico `gorm:"foreignKey:PeriodoID"`
	Clases  []Clase           `gorm:"many2many:grado_clases"`
}
