package service

import (
	"context"
	"errors"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
)

type CursoService interface {
	Crear(ctx context.Context, req dto.CursoRequest) (*dto.CursoResponse, error)
	Listar(ctx context.Context) ([]dto.CursoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CursoRequest) (*dto.CursoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type cursoService struct {
	repo repository.CursoRepository
}

func NewCursoService(repo repository.CursoRepository) CursoService {
	return &cursoService{repo: repo}
}

func (s *cursoService) Crear(ctx context.Context, req dto.CursoRequest) (*dto.CursoResponse, error) {
	c := &model.Curso{
		Nombre:      req.Nombre,
		Codigo:      req.Codigo,
		Descripcion: req.Descripcion,
	}
	if req.Creditos > 0 {
		c.Creditos = req.Creditos
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return cursoToResponse(c), nil
}

func (s *cursoService) Listar(ctx context.Context) ([]dto.CursoResponse, error) {
	cursos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CursoResponse, len(cursos))
	for i := range cursos {
		resp[i] = *cursoToResponse(&cursos[i])
	}
	return resp, nil
}

func (s *cursoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.CursoRequest) (*dto.CursoResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("curso no encontrado")
	}
	c.Nombre = req.Nombre
	c.Codigo = req.Codigo
	c.Descripcion = req.Descripcion
	if req.Creditos > 0 {
		c.Creditos = req.Creditos
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return cursoToResponse(c), nil
}

func (s *cursoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func cursoToResponse(c *model.Curso) *dto.CursoResponse {
	return &dto.CursoResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Codigo:      c.Codigo,
		Descripcion: c.Descripcion,
		Creditos:    c.Creditos,
	}
}
