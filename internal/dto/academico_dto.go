package dto

import "github.com/shopspring/decimal"

// ─── Periodo ─────────────────────────────────────────────────────────────────

type PeriodoRequest struct {
	Nombre      string `json:"nombre"       validate:"required,min=2,max=100"`
	FechaInicio string `json:"fecha_inicio" validate:"required"` // YYYY-MM-DD
	FechaFin    string `json:"fecha_fin"    validate:"required"` // YYYY-MM-DD
}

type PeriodoResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}

// ─── Curso ───────────────────────────────────────────────────────────────────

type CursoRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Codigo      string  `json:"codigo"      validate:"required,min=2,max=10"`
	Descripcion *string `json:"descripcion"`
	Creditos    int     `json:"creditos"    validate:"omitempty,min=1,max=20"`
}

type CursoResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Codigo      string  `json:"codigo,omitempty"`
	Descripcion *string `json:"descripcion"`
	Creditos    int     `json:"creditos,omitempty"`
}

// ─── Clase ───────────────────────────────────────────────────────────────────

type ClaseRequest struct {
	PeriodoID  string  `json:"periodo_id"  validate:"required,uuid"`
	CursoID    string  `json:"curso_id"    validate:"required,uuid"`
	MaestroID  *string `json:"maestro_id"  validate:"omitempty,uuid"`
	DiaSemana  string  `json:"dia_semana"  validate:"required,oneof=LUN MAR MIE JUE VIE SAB"`
	HoraInicio string  `json:"hora_inicio" validate:"required"` // HH:MM
	HoraFin    string  `json:"hora_fin"    validate:"required"` // HH:MM
}

type ClaseResponse struct {
	ID         string  `json:"id"`
	PeriodoID  string  `json:"periodo_id"`
	CursoID    string  `json:"curso_id"`
	Curso      string  `json:"curso"`
	MaestroID  *string `json:"maestro_id"`
	Maestro    *string `json:"maestro"`
	DiaSemana  string  `json:"dia_semana"`
	HoraInicio string  `json:"hora_inicio"`
	HoraFin    string  `json:"hora_fin"`
}

type InscribirEstudiantesRequest struct {
	EstudianteIDs []string `json:"estudiante_ids" validate:"required,dive,uuid"`
}

// ─── Grado ───────────────────────────────────────────────────────────────────

type GradoRequest struct {
	Nombre                  string          `json:"nombre"                    validate:"required,min=2,max=100"`
	PeriodoID               string          `json:"periodo_id"                validate:"required,uuid"`
	MontoInscripcion        decimal.Decimal `json:"monto_inscripcion"`
	MontoUtiles             decimal.Decimal `json:"monto_utiles"`
	MontoColegiaturaMensual decimal.Decimal `json:"monto_colegiatura_mensual"`
}

type GradoResponse struct {
	ID                      string          `json:"id"`
	Nombre                  string          `json:"nombre"`
	PeriodoID               string          `json:"periodo_id"`
	Periodo                 string          `json:"periodo,omitempty"`
	MontoInscripcion        decimal.Decimal `json:"monto_inscripcion"`
	MontoUtiles             decimal.Decimal `json:"monto_utiles"`
	MontoColegiaturaMensual decimal.Decimal `json:"monto_colegiatura_mensual"`
	Clases                  []ClaseResponse `json:"clases,omitempty"`
}

type AsignarClasesRequest struct {
	ClaseIDs []string `json:"clase_ids" validate:"required,dive,uuid"`
}

// ─── Horario ─────────────────────────────────────────────────────────────────

// HorarioResponse is the weekly grid: Horario[hora][dia] lists the clases
// starting within that hour on that weekday. Every cell is present, empty
// cells hold an empty list.
type HorarioResponse struct {
	PeriodoActual PeriodoResponse                    `json:"periodo_actual"`
	Periodos      []PeriodoResponse                  `json:"periodos"`
	Dias          []string                           `json:"dias"`
	Horas         []int                              `json:"horas"`
	Horario       map[int]map[string][]ClaseResponse `json:"horario"`
}
