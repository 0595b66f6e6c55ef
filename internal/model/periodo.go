package model

import (
	"time"

	"github.com/google/uuid"
)

// PeriodoAcademico is a school cycle, e.g. "Semestre 2025-1" or "Año Escolar 2025".
type PeriodoAcademico struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	FechaInicio time.Time `gorm:"type:date;not null"`
	FechaFin    time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
