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

type PeriodoService interface {
	Crear(ctx context.Context, req dto.PeriodoRequest) (*dto.PeriodoResponse, error)
	Listar(ctx context.Context) ([]dto.PeriodoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.PeriodoRequest) (*dto.PeriodoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// ResolverPeriodoActual resolves the "current period" for a user once per
	// request, replacing the ambient per-session period of the old system:
	// student → their grado's period; parent → first tutored child's grado
	// period; anyone else (or no grado) → most recently started period.
	ResolverPeriodoActual(ctx context.Context, usuarioID uuid.UUID, rol string) (*model.PeriodoAcademico, error)
}

type periodoService struct {
	repo           repository.PeriodoRepository
	estudianteRepo repository.EstudianteRepository
}

func NewPeriodoService(repo repository.PeriodoRepository, estudianteRepo repository.EstudianteRepository) PeriodoService {
	return &periodoService{repo: repo, estudianteRepo: estudianteRepo}
}

func (s *periodoService) Crear(ctx context.Context, req dto.PeriodoRequest) (*dto.PeriodoResponse, error) {
	inicio, fin, err := parseRangoFechas(req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, err
	}
	p := &model.PeriodoAcademico{Nombre: req.Nombre, FechaInicio: inicio, FechaFin: fin}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return periodoToResponse(p), nil
}

func (s *periodoService) Listar(ctx context.Context) ([]dto.PeriodoResponse, error) {
	periodos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PeriodoResponse, len(periodos))
	for i := range periodos {
		resp[i] = *periodoToResponse(&periodos[i])
	}
	return resp, nil
}

func (s *periodoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.PeriodoRequest) (*dto.PeriodoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("periodo no encontrado")
	}
	inicio, fin, err := parseRangoFechas(req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, err
	}
	p.Nombre = req.Nombre
	p.FechaInicio = inicio
	p.FechaFin = fin
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return periodoToResponse(p), nil
}

func (s *periodoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *periodoService) ResolverPeriodoActual(ctx context.Context, usuarioID uuid.UUID, rol string) (*model.PeriodoAcademico, error) {
	switch rol {
	case model.RolEstudiante:
		if est, err := s.estudianteRepo.FindByUsuarioID(ctx, usuarioID); err == nil && est.Grado != nil {
			return s.repo.FindByID(ctx, est.Grado.PeriodoID)
		}
	case model.RolPadre:
		if hijo, err := s.estudianteRepo.FindFirstByTutor(ctx, usuarioID); err == nil && hijo.Grado != nil {
			return s.repo.FindByID(ctx, hijo.Grado.PeriodoID)
		}
	}
	return s.repo.FindMasReciente(ctx)
}

func parseRangoFechas(inicio, fin string) (time.Time, time.Time, error) {
	fi, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("fecha_inicio inválida, use YYYY-MM-DD")
	}
	ff, err := time.Parse("2006-01-02", fin)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("fecha_fin inválida, use YYYY-MM-DD")
	}
	if ff.Before(fi) {
		return time.Time{}, time.Time{}, errors.New("fecha_fin no puede ser anterior a fecha_inicio")
	}
	return fi, ff, nil
}
