package service

import (
	"context"
	"errors"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoAutorizado marks ownership violations: a maestro acting on someone
// else's clase, or a student submitting to a class they are not enrolled in.
var ErrNoAutorizado = errors.New("no autorizado para esta operación")

type ActividadService interface {
	// Crear registers an actividad on a clase owned by the acting maestro.
	Crear(ctx context.Context, maestroUsuarioID uuid.UUID, req dto.CrearActividadRequest) (*dto.ActividadResponse, error)
	// Entregar records (or replaces) the student's submission.
	Entregar(ctx context.Context, estudianteUsuarioID uuid.UUID, actividadID uuid.UUID, req dto.EntregarRequest) (*dto.EntregaResponse, error)
	// Calificar sets the grade on an entrega; only the clase's maestro may grade.
	Calificar(ctx context.Context, maestroUsuarioID uuid.UUID, entregaID uuid.UUID, req dto.CalificarRequest) (*dto.EntregaResponse, error)
	ListarEntregas(ctx context.Context, maestroUsuarioID uuid.UUID, actividadID uuid.UUID) ([]dto.EntregaResponse, error)
}

type actividadService struct {
	repo           repository.ActividadRepository
	claseRepo      repository.ClaseRepository
	maestroRepo    repository.MaestroRepository
	estudianteRepo repository.EstudianteRepository
}

func NewActividadService(
	repo repository.ActividadRepository,
	claseRepo repository.ClaseRepository,
	maestroRepo repository.MaestroRepository,
	estudianteRepo repository.EstudianteRepository,
) ActividadService {
	return &actividadService{
		repo:           repo,
		claseRepo:      claseRepo,
		maestroRepo:    maestroRepo,
		estudianteRepo: estudianteRepo,
	}
}

func (s *actividadService) Crear(ctx context.Context, maestroUsuarioID uuid.UUID, req dto.CrearActividadRequest) (*dto.ActividadResponse, error) {
	claseID, err := uuid.Parse(req.ClaseID)
	if err != nil {
		return nil, errors.New("clase_id inválido")
	}
	clase, err := s.claseRepo.FindByID(ctx, claseID)
	if err != nil {
		return nil, errors.New("clase no encontrada")
	}
	if err := s.verificarMaestro(ctx, maestroUsuarioID, clase); err != nil {
		return nil, err
	}

	fechaEntrega, err := time.Parse("2006-01-02", req.FechaEntrega)
	if err != nil {
		return nil, errors.New("fecha_entrega inválida, use YYYY-MM-DD")
	}

	a := &model.Actividad{
		ClaseID:      claseID,
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		FechaEntrega: fechaEntrega,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	a.Clase = clase
	return actividadToResponse(a), nil
}

func (s *actividadService) Entregar(ctx context.Context, estudianteUsuarioID uuid.UUID, actividadID uuid.UUID, req dto.EntregarRequest) (*dto.EntregaResponse, error) {
	actividad, err := s.repo.FindByID(ctx, actividadID)
	if err != nil {
		return nil, errors.New("actividad no encontrada")
	}
	estudiante, err := s.estudianteRepo.FindByUsuarioID(ctx, estudianteUsuarioID)
	if err != nil {
		return nil, errors.New("perfil de estudiante no encontrado")
	}

	clase, err := s.claseRepo.FindByID(ctx, actividad.ClaseID)
	if err != nil {
		return nil, err
	}
	inscrito := false
	for i := range clase.Estudiantes {
		if clase.Estudiantes[i].ID == estudiante.ID {
			inscrito = true
			break
		}
	}
	if !inscrito {
		return nil, ErrNoAutorizado
	}

	// Upsert on the (actividad, estudiante) pair: a second submission
	// replaces the first and clears any previous grade.
	entrega, err := s.repo.FindEntrega(ctx, actividad.ID, estudiante.ID)
	if err != nil {
		entrega = &model.Entrega{
			ActividadID:  actividad.ID,
			EstudianteID: estudiante.ID,
		}
	}
	entrega.FechaEntrega = time.Now()
	entrega.Comentarios = req.Comentarios
	entrega.Calificacion = nil
	entrega.ComentariosMaestro = nil

	if err := s.repo.SaveEntrega(ctx, entrega); err != nil {
		return nil, err
	}
	return entregaToResponse(entrega), nil
}

func (s *actividadService) Calificar(ctx context.Context, maestroUsuarioID uuid.UUID, entregaID uuid.UUID, req dto.CalificarRequest) (*dto.EntregaResponse, error) {
	entrega, err := s.repo.FindEntregaByID(ctx, entregaID)
	if err != nil {
		return nil, errors.New("entrega no encontrada")
	}
	if entrega.Actividad == nil || entrega.Actividad.Clase == nil {
		return nil, errors.New("entrega sin actividad asociada")
	}
	if err := s.verificarMaestro(ctx, maestroUsuarioID, entrega.Actividad.Clase); err != nil {
		return nil, err
	}

	if req.Calificacion.LessThan(decimal.Zero) || req.Calificacion.GreaterThan(decimal.NewFromInt(100)) {
		return nil, errors.New("la calificación debe estar entre 0 y 100")
	}

	entrega.Calificacion = &req.Calificacion
	entrega.ComentariosMaestro = req.Comentarios
	if err := s.repo.SaveEntrega(ctx, entrega); err != nil {
		return nil, err
	}
	return entregaToResponse(entrega), nil
}

func (s *actividadService) ListarEntregas(ctx context.Context, maestroUsuarioID uuid.UUID, actividadID uuid.UUID) ([]dto.EntregaResponse, error) {
	actividad, err := s.repo.FindByID(ctx, actividadID)
	if err != nil {
		return nil, errors.New("actividad no encontrada")
	}
	if actividad.Clase != nil {
		if err := s.verificarMaestro(ctx, maestroUsuarioID, actividad.Clase); err != nil {
			return nil, err
		}
	}

	entregas, err := s.repo.ListEntregasByActividad(ctx, actividadID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EntregaResponse, len(entregas))
	for i := range entregas {
		resp[i] = *entregaToResponse(&entregas[i])
	}
	return resp, nil
}

func (s *actividadService) verificarMaestro(ctx context.Context, maestroUsuarioID uuid.UUID, clase *model.Clase) error {
	maestro, err := s.maestroRepo.FindByUsuarioID(ctx, maestroUsuarioID)
	if err != nil {
		return errors.New("perfil de maestro no encontrado")
	}
	if clase.MaestroID == nil || *clase.MaestroID != maestro.ID {
		return ErrNoAutorizado
	}
	return nil
}

func actividadToResponse(a *model.Actividad) *dto.ActividadResponse {
	resp := &dto.ActividadResponse{
		ID:           a.ID.String(),
		ClaseID:      a.ClaseID.String(),
		Titulo:       a.Titulo,
		Descripcion:  a.Descripcion,
		FechaEntrega: a.FechaEntrega.Format("2006-01-02"),
	}
	if a.Clase != nil && a.Clase.Curso != nil {
		resp.Curso = a.Clase.Curso.Nombre
	}
	return resp
}

func entregaToResponse(e *model.Entrega) *dto.EntregaResponse {
	resp := &dto.EntregaResponse{
		ID:                 e.ID.String(),
		ActividadID:        e.ActividadID.String(),
		EstudianteID:       e.EstudianteID.String(),
		FechaEntrega:       e.FechaEntrega.Format(time.RFC3339),
		Comentarios:        e.Comentarios,
		Calificacion:       e.Calificacion,
		ComentariosMaestro: e.ComentariosMaestro,
	}
	if e.Estudiante != nil {
		resp.Matricula = e.Estudiante.Matricula
		if e.Estudiante.Usuario != nil {
			nombre := e.Estudiante.Usuario.Nombre + " " + e.Estudiante.Usuario.Apellido
			resp.Estudiante = &nombre
		}
	}
	return resp
}
