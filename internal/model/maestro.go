package model

import (
	"time"

	"github.com/google/uuid"
)

// Maestro is the professional profile of a usuario with rol "maestro".
type Maestro struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	NumeroEmpleado    string    `gorm:"uniqueIndex;not null"`
	Especialidad      string    `gorm:"not null"`
	FechaContratacion time.Time `gorm:"type:date;not null"`
	TelefonoContacto  *string   `gorm:"type:varchar(15)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
	// Cursos the teacher is qualified to teach (assigned by an administrator)
	Cursos []Curso `gorm:"many2many:maestro_cursos"`
}
