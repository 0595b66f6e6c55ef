package model

import (
	"time"

	"github.com/google/uuid"
)

// Curso represents a subject taught at the school.
type Curso struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Codigo      string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Descripcion *string
	Creditos    int `gorm:"not null;default:5"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
