package service

import (
	"context"
	"errors"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
)

type GradoService interface {
	Crear(ctx context.Context, req dto.GradoRequest) (*dto.GradoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.GradoResponse, error)
	Listar(ctx context.Context) ([]dto.GradoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GradoRequest) (*dto.GradoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// AsignarClases replaces the grado's clase template. Students already
	// enrolled keep their current roster until re-enrolled.
	AsignarClases(ctx context.Context, id uuid.UUID, claseIDs []string) (*dto.GradoResponse, error)
}

type gradoService struct {
	repo      repository.GradoRepository
	claseRepo repository.ClaseRepository
}

func NewGradoService(repo repository.GradoRepository, claseRepo repository.ClaseRepository) GradoService {
	return &gradoService{repo: repo, claseRepo: claseRepo}
}

func (s *gradoService) Crear(ctx context.Context, req dto.GradoRequest) (*dto.GradoResponse, error) {
	periodoID, err := uuid.Parse(req.PeriodoID)
	if err != nil {
		return nil, errors.New("periodo_id inválido")
	}
	g := &model.Grado{
		Nombre:                  req.Nombre,
		PeriodoID:               periodoID,
		MontoInscripcion:        req.MontoInscripcion,
		MontoUtiles:             req.MontoUtiles,
		MontoColegiaturaMensual: req.MontoColegiaturaMensual,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return gradoToResponse(g), nil
}

func (s *gradoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.GradoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("grado no encontrado")
	}
	return gradoToResponse(g), nil
}

func (s *gradoService) Listar(ctx context.Context) ([]dto.GradoResponse, error) {
	grados, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GradoResponse, len(grados))
	for i := range grados {
		resp[i] = *gradoToResponse(&grados[i])
	}
	return resp, nil
}

func (s *gradoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GradoRequest) (*dto.GradoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("grado no encontrado")
	}
	periodoID, err := uuid.Parse(req.PeriodoID)
	if err != nil {
		return nil, errors.New("periodo_id inválido")
	}
	g.Nombre = req.Nombre
	g.PeriodoID = periodoID
	g.MontoInscripcion = req.MontoInscripcion
	g.MontoUtiles = req.MontoUtiles
	g.MontoColegiaturaMensual = req.MontoColegiaturaMensual
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return gradoToResponse(g), nil
}

func (s *gradoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *gradoService) AsignarClases(ctx context.Context, id uuid.UUID, claseIDs []string) (*dto.GradoResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("grado no encontrado")
	}

	clases := make([]model.Clase, 0, len(claseIDs))
	for _, raw := range claseIDs {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("clase_id inválido: " + raw)
		}
		clase, err := s.claseRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, errors.New("clase no encontrada: " + raw)
		}
		if clase.PeriodoID != g.PeriodoID {
			return nil, errors.New("la clase " + raw + " pertenece a otro periodo")
		}
		clases = append(clases, *clase)
	}

	if err := s.repo.ReplaceClases(ctx, g, clases); err != nil {
		return nil, err
	}
	g.Clases = clases
	return gradoToResponse(g), nil
}

func gradoToResponse(g *model.Grado) *dto.GradoResponse {
	resp := &dto.GradoResponse{
		ID:                      g.ID.String(),
		Nombre:                  g.Nombre,
		PeriodoID:               g.PeriodoID.String(),
		MontoInscripcion:        g.MontoInscripcion,
		MontoUtiles:             g.MontoUtiles,
		MontoColegiaturaMensual: g.MontoColegiaturaMensual,
	}
	if g.Periodo != nil {
		resp.Periodo = g.Periodo.Nombre
	}
	for i := range g.Clases {
		resp.Clases = append(resp.Clases, *claseToResponse(&g.Clases[i]))
	}
	return resp
}
