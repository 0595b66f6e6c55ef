package model

import (
	"time"

	"github.com/google/uuid"
)

// Noticia is a bulletin published by an administrator.
type Noticia struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Titulo           string     `gorm:"not null"`
	Contenido        string     `gorm:"not null"`
	AutorID          *uuid.UUID `gorm:"type:uuid"`
	Publicado        bool       `gorm:"not null;default:true"`
	FechaPublicacion time.Time
	UpdatedAt        time.Time

	Autor *Usuario `gorm:"foreignKey:AutorID"`
}

// Notification audiences.
const (
	AudienciaTodos       = "TODOS"
	AudienciaEstudiantes = "ESTUDIANTES"
	AudienciaMaestros    = "MAESTROS"
	AudienciaPadres      = "PADRES"
)

// Notificacion delivery states.
const (
	NotificacionPendiente = "pendiente"
	NotificacionEnviada   = "enviada"
	NotificacionError     = "error"
)

// Notificacion is one email delivery to one recipient, fanned out from an
// admin broadcast. Retry fields drive the retry cron for failed SMTP deliveries.
type Notificacion struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AutorID      *uuid.UUID `gorm:"type:uuid"`
	Audiencia    string     `gorm:"type:varchar(20);not null;default:'TODOS'"`
	Destinatario string     `gorm:"not null"`
	Mensaje      string     `gorm:"not null"`
	Estado       string     `gorm:"type:varchar(20);not null;default:'pendiente'"`
	RetryCount   int        `gorm:"not null;default:0"`
	NextRetryAt  *time.Time `gorm:"column:next_retry_at"`
	LastError    *string
	FechaEnvio   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
