package service

import (
	"context"
	"errors"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
)

type ClaseService interface {
	Crear(ctx context.Context, req dto.ClaseRequest) (*dto.ClaseResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClaseResponse, error)
	ListarPorPeriodo(ctx context.Context, periodoID uuid.UUID) ([]dto.ClaseResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ClaseRequest) (*dto.ClaseResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// InscribirEstudiantes replaces the class roster with exactly the given students.
	InscribirEstudiantes(ctx context.Context, id uuid.UUID, estudianteIDs []string) (*dto.ClaseResponse, error)
}

type claseService struct {
	repo           repository.ClaseRepository
	cursoRepo      repository.CursoRepository
	maestroRepo    repository.MaestroRepository
	periodoRepo    repository.PeriodoRepository
	estudianteRepo repository.EstudianteRepository
}

func NewClaseService(
	repo repository.ClaseRepository,
	cursoRepo repository.CursoRepository,
	maestroRepo repository.MaestroRepository,
	periodoRepo repository.PeriodoRepository,
	estudianteRepo repository.EstudianteRepository,
) ClaseService {
	return &claseService{
		repo:           repo,
		cursoRepo:      cursoRepo,
		maestroRepo:    maestroRepo,
		periodoRepo:    periodoRepo,
		estudianteRepo: estudianteRepo,
	}
}

func (s *claseService) Crear(ctx context.Context, req dto.ClaseRequest) (*dto.ClaseResponse, error) {
	clase, err := s.buildClase(ctx, req, &model.Clase{})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, clase); err != nil {
		return nil, err
	}
	return s.reload(ctx, clase.ID)
}

func (s *claseService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClaseResponse, error) {
	return s.reload(ctx, id)
}

func (s *claseService) ListarPorPeriodo(ctx context.Context, periodoID uuid.UUID) ([]dto.ClaseResponse, error) {
	clases, err := s.repo.ListByPeriodo(ctx, periodoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClaseResponse, len(clases))
	for i := range clases {
		resp[i] = *claseToResponse(&clases[i])
	}
	return resp, nil
}

func (s *claseService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ClaseRequest) (*dto.ClaseResponse, error) {
	existente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("clase no encontrada")
	}
	clase, err := s.buildClase(ctx, req, existente)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, clase); err != nil {
		return nil, err
	}
	return s.reload(ctx, clase.ID)
}

func (s *claseService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *claseService) InscribirEstudiantes(ctx context.Context, id uuid.UUID, estudianteIDs []string) (*dto.ClaseResponse, error) {
	clase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("clase no encontrada")
	}

	estudiantes := make([]model.Estudiante, 0, len(estudianteIDs))
	for _, raw := range estudianteIDs {
		eid, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("estudiante_id inválido: " + raw)
		}
		est, err := s.estudianteRepo.FindByID(ctx, eid)
		if err != nil {
			return nil, errors.New("estudiante no encontrado: " + raw)
		}
		estudiantes = append(estudiantes, *est)
	}

	if err := s.repo.ReplaceEstudiantes(ctx, clase, estudiantes); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

// buildClase validates the request and maps it onto dst, which is either a
// zero Clase (create) or the stored one (update).
func (s *claseService) buildClase(ctx context.Context, req dto.ClaseRequest, dst *model.Clase) (*model.Clase, error) {
	periodoID, err := uuid.Parse(req.PeriodoID)
	if err != nil {
		return nil, errors.New("periodo_id inválido")
	}
	if _, err := s.periodoRepo.FindByID(ctx, periodoID); err != nil {
		return nil, errors.New("periodo no encontrado")
	}

	cursoID, err := uuid.Parse(req.CursoID)
	if err != nil {
		return nil, errors.New("curso_id inválido")
	}
	if _, err := s.cursoRepo.FindByID(ctx, cursoID); err != nil {
		return nil, errors.New("curso no encontrado")
	}

	var maestroID *uuid.UUID
	if req.MaestroID != nil {
		mid, err := uuid.Parse(*req.MaestroID)
		if err != nil {
			return nil, errors.New("maestro_id inválido")
		}
		if _, err := s.maestroRepo.FindByID(ctx, mid); err != nil {
			return nil, errors.New("maestro no encontrado")
		}
		maestroID = &mid
	}

	if !diaValido(req.DiaSemana) {
		return nil, errors.New("dia_semana inválido, use LUN..SAB")
	}
	inicio, err := time.Parse("15:04", req.HoraInicio)
	if err != nil {
		return nil, errors.New("hora_inicio inválida, use HH:MM")
	}
	fin, err := time.Parse("15:04", req.HoraFin)
	if err != nil {
		return nil, errors.New("hora_fin inválida, use HH:MM")
	}
	if !fin.After(inicio) {
		return nil, errors.New("hora_fin debe ser posterior a hora_inicio")
	}

	dst.PeriodoID = periodoID
	dst.CursoID = cursoID
	dst.MaestroID = maestroID
	dst.DiaSemana = req.DiaSemana
	dst.HoraInicio = req.HoraInicio
	dst.HoraFin = req.HoraFin
	return dst, nil
}

func (s *claseService) reload(ctx context.Context, id uuid.UUID) (*dto.ClaseResponse, error) {
	clase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return claseToResponse(clase), nil
}

func diaValido(dia string) bool {
	for _, d := range model.DiasSemana {
		if d == dia {
			return true
		}
	}
	return false
}
