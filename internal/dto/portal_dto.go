package dto

import "github.com/shopspring/decimal"

// ─── Noticias / Notificaciones ───────────────────────────────────────────────

type NoticiaRequest struct {
	Titulo    string `json:"titulo"    validate:"required,min=2,max=200"`
	Contenido string `json:"contenido" validate:"required,min=2"`
	Publicado *bool  `json:"publicado"`
}

type NoticiaResponse struct {
	ID               string  `json:"id"`
	Titulo           string  `json:"titulo"`
	Contenido        string  `json:"contenido"`
	Autor            *string `json:"autor"`
	Publicado        bool    `json:"publicado"`
	FechaPublicacion string  `json:"fecha_publicacion"`
}

type EnviarNotificacionRequest struct {
	Audiencia string `json:"audiencia" validate:"required,oneof=TODOS ESTUDIANTES MAESTROS PADRES"`
	Mensaje   string `json:"mensaje"   validate:"required,min=2"`
}

// EnvioNotificacionResponse summarizes the fan-out: Descartadas counts
// recipients skipped for lacking an email address.
type EnvioNotificacionResponse struct {
	Audiencia   string `json:"audiencia"`
	Creadas     int    `json:"creadas"`
	Encoladas   int    `json:"encoladas"`
	Descartadas int    `json:"descartadas"`
}

// ─── Portal dashboards ───────────────────────────────────────────────────────

// ActividadEstudianteResponse annotates an actividad with the viewing
// student's own submission state.
type ActividadEstudianteResponse struct {
	ActividadResponse
	FueEntregada bool             `json:"fue_entregada"`
	Calificacion *decimal.Decimal `json:"calificacion"`
}

type PortalEstudianteResponse struct {
	Estudiante       EstudianteResponse            `json:"estudiante"`
	Periodo          PeriodoResponse               `json:"periodo"`
	Clases           []ClaseResponse               `json:"clases"`
	Actividades      []ActividadEstudianteResponse `json:"actividades"`
	CargosPendientes []CargoResponse               `json:"cargos_pendientes"`
}

type ClaseMaestroResponse struct {
	ClaseResponse
	Inscritos int `json:"inscritos"`
}

type PortalMaestroResponse struct {
	MaestroID   string                 `json:"maestro_id"`
	Periodo     PeriodoResponse        `json:"periodo"`
	Clases      []ClaseMaestroResponse `json:"clases"`
	Actividades []ActividadResponse    `json:"actividades"`
}
