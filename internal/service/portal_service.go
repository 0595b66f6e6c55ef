package service

import (
	"context"
	"errors"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
)

type PortalService interface {
	// PortalEstudiante aggregates the student dashboard: their roster for the
	// resolved period, pending actividades annotated with submission state,
	// and outstanding cargos.
	PortalEstudiante(ctx context.Context, usuarioID uuid.UUID, periodoID *uuid.UUID) (*dto.PortalEstudianteResponse, error)
	// PortalMaestro aggregates the teacher dashboard: the clases they teach
	// in the resolved period and the actividades assigned on them.
	PortalMaestro(ctx context.Context, usuarioID uuid.UUID, periodoID *uuid.UUID) (*dto.PortalMaestroResponse, error)
}

type portalService struct {
	estudianteRepo repository.EstudianteRepository
	maestroRepo    repository.MaestroRepository
	claseRepo      repository.ClaseRepository
	actividadRepo  repository.ActividadRepository
	cargoRepo      repository.CargoRepository
	periodoRepo    repository.PeriodoRepository
	periodos       PeriodoService
}

func NewPortalService(
	estudianteRepo repository.EstudianteRepository,
	maestroRepo repository.MaestroRepository,
	claseRepo repository.ClaseRepository,
	actividadRepo repository.ActividadRepository,
	cargoRepo repository.CargoRepository,
	periodoRepo repository.PeriodoRepository,
	periodos PeriodoService,
) PortalService {
	return &portalService{
		estudianteRepo: estudianteRepo,
		maestroRepo:    maestroRepo,
		claseRepo:      claseRepo,
		actividadRepo:  actividadRepo,
		cargoRepo:      cargoRepo,
		periodoRepo:    periodoRepo,
		periodos:       periodos,
	}
}

func (s *portalService) PortalEstudiante(ctx context.Context, usuarioID uuid.UUID, periodoID *uuid.UUID) (*dto.PortalEstudianteResponse, error) {
	estudiante, err := s.estudianteRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, errors.New("perfil de estudiante no encontrado")
	}

	periodo, err := s.resolverPeriodo(ctx, usuarioID, model.RolEstudiante, periodoID)
	if err != nil {
		return nil, err
	}

	clases, err := s.claseRepo.ListByEstudianteYPeriodo(ctx, estudiante.ID, periodo.ID)
	if err != nil {
		return nil, err
	}
	claseIDs := make([]uuid.UUID, len(clases))
	clasesResp := make([]dto.ClaseResponse, len(clases))
	for i := range clases {
		claseIDs[i] = clases[i].ID
		clasesResp[i] = *claseToResponse(&clases[i])
	}

	actividades, err := s.actividadRepo.ListByClases(ctx, claseIDs)
	if err != nil {
		return nil, err
	}
	actividadIDs := make([]uuid.UUID, len(actividades))
	for i := range actividades {
		actividadIDs[i] = actividades[i].ID
	}
	entregas, err := s.actividadRepo.ListEntregasByEstudiante(ctx, estudiante.ID, actividadIDs)
	if err != nil {
		return nil, err
	}
	entregaPorActividad := make(map[uuid.UUID]*model.Entrega, len(entregas))
	for i := range entregas {
		entregaPorActividad[entregas[i].ActividadID] = &entregas[i]
	}

	actividadesResp := make([]dto.ActividadEstudianteResponse, len(actividades))
	for i := range actividades {
		item := dto.ActividadEstudianteResponse{
			ActividadResponse: *actividadToResponse(&actividades[i]),
		}
		if entrega, ok := entregaPorActividad[actividades[i].ID]; ok {
			item.FueEntregada = true
			item.Calificacion = entrega.Calificacion
		}
		actividadesResp[i] = item
	}

	cargos, err := s.cargoRepo.ListByEstudiante(ctx, estudiante.ID, "")
	if err != nil {
		return nil, err
	}
	cargosResp := make([]dto.CargoResponse, 0, len(cargos))
	for i := range cargos {
		if cargos[i].Estado == model.CargoPagado || cargos[i].Estado == model.CargoCancelado {
			continue
		}
		cargosResp = append(cargosResp, *cargoToResponse(&cargos[i]))
	}

	return &dto.PortalEstudianteResponse{
		Estudiante:       *estudianteToResponse(estudiante),
		Periodo:          *periodoToResponse(periodo),
		Clases:           clasesResp,
		Actividades:      actividadesResp,
		CargosPendientes: cargosResp,
	}, nil
}

func (s *portalService) PortalMaestro(ctx context.Context, usuarioID uuid.UUID, periodoID *uuid.UUID) (*dto.PortalMaestroResponse, error) {
	maestro, err := s.maestroRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, errors.New("perfil de maestro no encontrado")
	}

	periodo, err := s.resolverPeriodo(ctx, usuarioID, model.RolMaestro, periodoID)
	if err != nil {
		return nil, err
	}

	clases, err := s.claseRepo.ListByMaestroYPeriodo(ctx, maestro.ID, periodo.ID)
	if err != nil {
		return nil, err
	}
	claseIDs := make([]uuid.UUID, len(clases))
	clasesResp := make([]dto.ClaseMaestroResponse, len(clases))
	for i := range clases {
		claseIDs[i] = clases[i].ID
		clasesResp[i] = dto.ClaseMaestroResponse{
			ClaseResponse: *claseToResponse(&clases[i]),
			Inscritos:     len(clases[i].Estudiantes),
		}
	}

	actividades, err := s.actividadRepo.ListByClases(ctx, claseIDs)
	if err != nil {
		return nil, err
	}
	actividadesResp := make([]dto.ActividadResponse, len(actividades))
	for i := range actividades {
		actividadesResp[i] = *actividadToResponse(&actividades[i])
	}

	return &dto.PortalMaestroResponse{
		MaestroID:   maestro.ID.String(),
		Periodo:     *periodoToResponse(periodo),
		Clases:      clasesResp,
		Actividades: actividadesResp,
	}, nil
}

// resolverPeriodo honors an explicit period selection, else falls back to the
// per-role resolution chain.
func (s *portalService) resolverPeriodo(ctx context.Context, usuarioID uuid.UUID, rol string, periodoID *uuid.UUID) (*model.PeriodoAcademico, error) {
	if periodoID != nil {
		p, err := s.periodoRepo.FindByID(ctx, *periodoID)
		if err != nil {
			return nil, errors.New("periodo no encontrado")
		}
		return p, nil
	}
	p, err := s.periodos.ResolverPeriodoActual(ctx, usuarioID, rol)
	if err != nil {
		return nil, errors.New("no hay periodos académicos registrados")
	}
	return p, nil
}
