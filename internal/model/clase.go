package model

import (
	"time"

	"github.com/google/uuid"
)

// Weekday codes used by Clase. SAB is the last school day; there are no Sunday classes.
const (
	DiaLunes     = "LUN"
	DiaMartes    = "MAR"
	DiaMiercoles = "MIE"
	DiaJueves    = "JUE"
	DiaViernes   = "VIE"
	DiaSabado    = "SAB"
)

// DiasSemana lists the weekdays in display order.
var DiasSemana = []string{DiaLunes, DiaMartes, DiaMiercoles, DiaJueves, DiaViernes, DiaSabado}

// Clase is one weekly recurring scheduled meeting of a curso within a periodo.
// HoraInicio / HoraFin are stored as "HH:MM" wall-clock strings.
// The same (periodo, curso, maestro, dia, hora_inicio) combination may exist only once.
type Clase struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodoID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_clase_slot"`
	CursoID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_clase_slot"`
	MaestroID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_clase_slot"`
	DiaSemana string     `gorm:"type:varchar(3);not null;uniqueIndex:idx_clase_slot"`
	HoraInicio string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_clase_slot"`
	HoraFin    string    `gorm:"type:varchar(5);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Periodo *PeriodoAcademico `gorm:"foreignKey:PeriodoID"`
	Curso   *Curso            `gorm:"foreignKey:CursoID"`
	Maestro *Maestro          `gorm:"foreignKey:MaestroID"`
	// Estudiantes enrolled in this class (replaced wholesale, never merged)
	Estudiantes []Estudiante `gorm:"many2many:clase_estudiantes"`
}

// HoraBucket returns the hour-of-day the class starts at, truncating minutes
// ("08:30" buckets under 8). ok is false for malformed values.
func (c *Clase) HoraBucket() (int, bool) {
	t, err := time.Parse("15:04", c.HoraInicio)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}
