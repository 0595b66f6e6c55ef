package dto

// ─── Estudiante ──────────────────────────────────────────────────────────────

type CrearEstudianteRequest struct {
	Matricula       string  `json:"matricula"        validate:"required,min=3,max=30"`
	Nombre          string  `json:"nombre"           validate:"required,min=2,max=100"`
	Apellido        string  `json:"apellido"         validate:"required,min=2,max=100"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	FechaNacimiento string  `json:"fecha_nacimiento" validate:"required"` // YYYY-MM-DD
	TutorID         *string `json:"tutor_id"         validate:"omitempty,uuid"`
	// GradoID: when present, the student is enrolled into the grado (roster
	// plus charges) in the same transaction that creates the account.
	GradoID *string `json:"grado_id" validate:"omitempty,uuid"`
}

type ActualizarEstudianteRequest struct {
	FechaNacimiento string  `json:"fecha_nacimiento" validate:"omitempty"`
	TutorID         *string `json:"tutor_id"         validate:"omitempty,uuid"`
}

type EstudianteResponse struct {
	ID              string  `json:"id"`
	UsuarioID       string  `json:"usuario_id"`
	Matricula       string  `json:"matricula"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	Email           *string `json:"email"`
	FechaNacimiento string  `json:"fecha_nacimiento"`
	GradoID         *string `json:"grado_id"`
	Grado           *string `json:"grado"`
	TutorID         *string `json:"tutor_id"`
}

// ─── Inscripción ─────────────────────────────────────────────────────────────

type InscribirRequest struct {
	GradoID string `json:"grado_id" validate:"required,uuid"`
}

type InscripcionResponse struct {
	EstudianteID    string `json:"estudiante_id"`
	GradoID         string `json:"grado_id"`
	ClasesInscritas int    `json:"clases_inscritas"`
	CargosCreados   int    `json:"cargos_creados"`
}

// ─── Maestro ─────────────────────────────────────────────────────────────────

type CrearMaestroRequest struct {
	NumeroEmpleado    string  `json:"numero_empleado"    validate:"required,min=3,max=30"`
	Nombre            string  `json:"nombre"             validate:"required,min=2,max=100"`
	Apellido          string  `json:"apellido"           validate:"required,min=2,max=100"`
	Email             *string `json:"email"              validate:"omitempty,email"`
	Especialidad      string  `json:"especialidad"       validate:"required,min=2,max=100"`
	FechaContratacion string  `json:"fecha_contratacion" validate:"required"` // YYYY-MM-DD
	TelefonoContacto  *string `json:"telefono_contacto"  validate:"omitempty,max=15"`
}

type ActualizarMaestroRequest struct {
	Especialidad     string  `json:"especialidad"      validate:"omitempty,min=2,max=100"`
	TelefonoContacto *string `json:"telefono_contacto" validate:"omitempty,max=15"`
}

type AsignarCursosRequest struct {
	CursoIDs []string `json:"curso_ids" validate:"required,dive,uuid"`
}

type MaestroResponse struct {
	ID                string          `json:"id"`
	UsuarioID         string          `json:"usuario_id"`
	NumeroEmpleado    string          `json:"numero_empleado"`
	Nombre            string          `json:"nombre"`
	Apellido          string          `json:"apellido"`
	Email             *string         `json:"email"`
	Especialidad      string          `json:"especialidad"`
	FechaContratacion string          `json:"fecha_contratacion"`
	TelefonoContacto  *string         `json:"telefono_contacto"`
	Cursos            []CursoResponse `json:"cursos,omitempty"`
}
