package service

import (
	"context"
	"errors"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
)

// Visible hour range of the schedule grid: 07:00 through 17:00 inclusive.
const (
	horaGrillaInicio = 7
	horaGrillaFin    = 17
)

type HorarioService interface {
	// ObtenerHorario projects a period's clases onto an hour × weekday grid.
	// A nil periodoID selects the most recently started period.
	ObtenerHorario(ctx context.Context, periodoID *uuid.UUID) (*dto.HorarioResponse, error)
}

type horarioService struct {
	periodoRepo repository.PeriodoRepository
	claseRepo   repository.ClaseRepository
}

func NewHorarioService(periodoRepo repository.PeriodoRepository, claseRepo repository.ClaseRepository) HorarioService {
	return &horarioService{periodoRepo: periodoRepo, claseRepo: claseRepo}
}

func (s *horarioService) ObtenerHorario(ctx context.Context, periodoID *uuid.UUID) (*dto.HorarioResponse, error) {
	var periodo *model.PeriodoAcademico
	var err error
	if periodoID != nil {
		periodo, err = s.periodoRepo.FindByID(ctx, *periodoID)
		if err != nil {
			return nil, errors.New("periodo no encontrado")
		}
	} else {
		periodo, err = s.periodoRepo.FindMasReciente(ctx)
		if err != nil {
			return nil, errors.New("no hay periodos académicos registrados")
		}
	}

	clases, err := s.claseRepo.ListByPeriodo(ctx, periodo.ID)
	if err != nil {
		return nil, err
	}

	horas := make([]int, 0, horaGrillaFin-horaGrillaInicio+1)
	grilla := make(map[int]map[string][]dto.ClaseResponse)
	for h := horaGrillaInicio; h <= horaGrillaFin; h++ {
		horas = append(horas, h)
		grilla[h] = make(map[string][]dto.ClaseResponse)
		for _, dia := range model.DiasSemana {
			grilla[h][dia] = []dto.ClaseResponse{}
		}
	}

	// Cells hold lists: overlapping clases in one slot are a valid,
	// displayable state, not a conflict. Clases outside the visible hour
	// range are silently omitted.
	for i := range clases {
		hora, ok := clases[i].HoraBucket()
		if !ok || hora < horaGrillaInicio || hora > horaGrillaFin {
			continue
		}
		grilla[hora][clases[i].DiaSemana] = append(grilla[hora][clases[i].DiaSemana], *claseToResponse(&clases[i]))
	}

	periodos, err := s.periodoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	listaPeriodos := make([]dto.PeriodoResponse, len(periodos))
	for i := range periodos {
		listaPeriodos[i] = *periodoToResponse(&periodos[i])
	}

	return &dto.HorarioResponse{
		PeriodoActual: *periodoToResponse(periodo),
		Periodos:      listaPeriodos,
		Dias:          model.DiasSemana,
		Horas:         horas,
		Horario:       grilla,
	}, nil
}

func claseToResponse(c *model.Clase) *dto.ClaseResponse {
	resp := &dto.ClaseResponse{
		ID:         c.ID.String(),
		PeriodoID:  c.PeriodoID.String(),
		CursoID:    c.CursoID.String(),
		DiaSemana:  c.DiaSemana,
		HoraInicio: c.HoraInicio,
		HoraFin:    c.HoraFin,
	}
	if c.Curso != nil {
		resp.Curso = c.Curso.Nombre
	}
	if c.MaestroID != nil {
		id := c.MaestroID.String()
		resp.MaestroID = &id
	}
	if c.Maestro != nil && c.Maestro.Usuario != nil {
		nombre := c.Maestro.Usuario.Nombre + " " + c.Maestro.Usuario.Apellido
		resp.Maestro = &nombre
	}
	return resp
}

func periodoToResponse(p *model.PeriodoAcademico) *dto.PeriodoResponse {
	return &dto.PeriodoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		FechaInicio: p.FechaInicio.Format("2006-01-02"),
		FechaFin:    p.FechaFin.Format("2006-01-02"),
	}
}
