package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actividad is a task or project assigned by a maestro to one of their clases.
type Actividad struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClaseID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Titulo       string    `gorm:"not null"`
	Descripcion  *string
	FechaEntrega time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Clase *Clase `gorm:"foreignKey:ClaseID"`
}

// Entrega is a student's submission for an actividad. One per (actividad, estudiante);
// re-submitting replaces the previous one. Calificacion stays nil until graded.
type Entrega struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActividadID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entrega_unica"`
	EstudianteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entrega_unica"`
	FechaEntrega time.Time
	Comentarios  *string
	Calificacion       *decimal.Decimal `gorm:"type:decimal(5,2)"`
	ComentariosMaestro *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Actividad  *Actividad  `gorm:"foreignKey:ActividadID"`
	Estudiante *Estudiante `gorm:"foreignKey:EstudianteID"`
}
