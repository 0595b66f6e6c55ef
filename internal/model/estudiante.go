package model

import (
	"time"

	"github.com/google/uuid"
)

// Estudiante is the academic profile of a usuario with rol "estudiante".
// Matricula doubles as the login username.
type Estudiante struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Matricula       string    `gorm:"uniqueIndex;not null"`
	FechaNacimiento time.Time `gorm:"type:date;not null"`
	// GradoID is set when the student is enrolled into a grade template
	GradoID *uuid.UUID `gorm:"type:uuid;index"`
	// TutorID links the student to the usuario (rol "padre") responsible for them
	TutorID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
	Grado   *Grado   `gorm:"foreignKey:GradoID"`
	// Clases is the student's enrolled class roster (replaced wholesale on enrollment)
	Clases []Clase `gorm:"many2many:clase_estudiantes"`
}
