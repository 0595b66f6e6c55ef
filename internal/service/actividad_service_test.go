package service

import (
	"context"
	"testing"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubActividadRepo struct {
	actividades map[uuid.UUID]*model.Actividad
	entregas    map[uuid.UUID]*model.Entrega
}

func newStubActividadRepo() *stubActividadRepo {
	return &stubActividadRepo{
		actividades: make(map[uuid.UUID]*model.Actividad),
		entregas:    make(map[uuid.UUID]*model.Entrega),
	}
}

func (r *stubActividadRepo) Create(_ context.Context, a *model.Actividad) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.actividades[a.ID] = a
	return nil
}

func (r *stubActividadRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Actividad, error) {
	a, ok := r.actividades[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *stubActividadRepo) ListByClases(_ context.Context, claseIDs []uuid.UUID) ([]model.Actividad, error) {
	var out []model.Actividad
	for _, a := range r.actividades {
		for _, id := range claseIDs {
			if a.ClaseID == id {
				out = append(out, *a)
				break
			}
		}
	}
	return out, nil
}

func (r *stubActividadRepo) FindEntrega(_ context.Context, actividadID, estudianteID uuid.UUID) (*model.Entrega, error) {
	for _, e := range r.entregas {
		if e.ActividadID == actividadID && e.EstudianteID == estudianteID {
			return e, nil
		}
	}
	return nil, errNotFound
}

func (r *stubActividadRepo) FindEntregaByID(_ context.Context, id uuid.UUID) (*model.Entrega, error) {
	e, ok := r.entregas[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubActividadRepo) SaveEntrega(_ context.Context, e *model.Entrega) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entregas[e.ID] = e
	return nil
}

func (r *stubActividadRepo) ListEntregasByActividad(_ context.Context, actividadID uuid.UUID) ([]model.Entrega, error) {
	var out []model.Entrega
	for _, e := range r.entregas {
		if e.ActividadID == actividadID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubActividadRepo) ListEntregasByEstudiante(_ context.Context, estudianteID uuid.UUID, actividadIDs []uuid.UUID) ([]model.Entrega, error) {
	var out []model.Entrega
	for _, e := range r.entregas {
		if e.EstudianteID != estudianteID {
			continue
		}
		for _, id := range actividadIDs {
			if e.ActividadID == id {
				out = append(out, *e)
				break
			}
		}
	}
	return out, nil
}

var _ repository.ActividadRepository = (*stubActividadRepo)(nil)

type stubMaestroRepo struct {
	maestros map[uuid.UUID]*model.Maestro
}

func newStubMaestroRepo() *stubMaestroRepo {
	return &stubMaestroRepo{maestros: make(map[uuid.UUID]*model.Maestro)}
}

func (r *stubMaestroRepo) CreateTx(_ *gorm.DB, m *model.Maestro) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.maestros[m.ID] = m
	return nil
}

func (r *stubMaestroRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Maestro, error) {
	m, ok := r.maestros[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *stubMaestroRepo) FindByUsuarioID(_ context.Context, usuarioID uuid.UUID) (*model.Maestro, error) {
	for _, m := range r.maestros {
		if m.UsuarioID == usuarioID {
			return m, nil
		}
	}
	return nil, errNotFound
}

func (r *stubMaestroRepo) List(_ context.Context) ([]model.Maestro, error) {
	out := make([]model.Maestro, 0, len(r.maestros))
	for _, m := range r.maestros {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMaestroRepo) Update(_ context.Context, m *model.Maestro) error {
	r.maestros[m.ID] = m
	return nil
}

func (r *stubMaestroRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.maestros, id)
	return nil
}

func (r *stubMaestroRepo) ReplaceCursos(_ context.Context, m *model.Maestro, cursos []model.Curso) error {
	m.Cursos = cursos
	return nil
}

func (r *stubMaestroRepo) DB() *gorm.DB { return nil }

var _ repository.MaestroRepository = (*stubMaestroRepo)(nil)

type bancoActividades struct {
	repo       *stubActividadRepo
	svc        ActividadService
	maestro    *model.Maestro
	otro       *model.Maestro
	estudiante *model.Estudiante
	ajeno      *model.Estudiante
	clase      *model.Clase
	actividad  *model.Actividad
}

func armarActividades(t *testing.T) *bancoActividades {
	t.Helper()
	repo := newStubActividadRepo()
	claseRepo := newStubClaseRepo()
	maestroRepo := newStubMaestroRepo()
	estudianteRepo := newStubEstudianteRepo()

	maestro := &model.Maestro{UsuarioID: uuid.New(), NumeroEmpleado: "EMP-001"}
	otro := &model.Maestro{UsuarioID: uuid.New(), NumeroEmpleado: "EMP-002"}
	require.NoError(t, maestroRepo.CreateTx(nil, maestro))
	require.NoError(t, maestroRepo.CreateTx(nil, otro))

	estudiante := &model.Estudiante{UsuarioID: uuid.New(), Matricula: "EST-001"}
	ajeno := &model.Estudiante{UsuarioID: uuid.New(), Matricula: "EST-002"}
	require.NoError(t, estudianteRepo.CreateTx(nil, estudiante))
	require.NoError(t, estudianteRepo.CreateTx(nil, ajeno))

	clase := &model.Clase{
		PeriodoID:   uuid.New(),
		CursoID:     uuid.New(),
		MaestroID:   &maestro.ID,
		DiaSemana:   model.DiaLunes,
		HoraInicio:  "08:00",
		HoraFin:     "09:00",
		Estudiantes: []model.Estudiante{*estudiante},
	}
	require.NoError(t, claseRepo.Create(context.Background(), clase))

	actividad := &model.Actividad{ClaseID: clase.ID, Titulo: "Tarea 1", Clase: clase}
	require.NoError(t, repo.Create(context.Background(), actividad))

	return &bancoActividades{
		repo:       repo,
		svc:        NewActividadService(repo, claseRepo, maestroRepo, estudianteRepo),
		maestro:    maestro,
		otro:       otro,
		estudiante: estudiante,
		ajeno:      ajeno,
		clase:      clase,
		actividad:  actividad,
	}
}

func TestCrearActividadMaestroAjeno(t *testing.T) {
	b := armarActividades(t)

	_, err := b.svc.Crear(context.Background(), b.otro.UsuarioID, dto.CrearActividadRequest{
		ClaseID:      b.clase.ID.String(),
		Titulo:       "Tarea pirata",
		FechaEntrega: "2026-09-15",
	})
	assert.ErrorIs(t, err, ErrNoAutorizado)
}

func TestCrearActividadPropia(t *testing.T) {
	b := armarActividades(t)

	resp, err := b.svc.Crear(context.Background(), b.maestro.UsuarioID, dto.CrearActividadRequest{
		ClaseID:      b.clase.ID.String(),
		Titulo:       "Proyecto final",
		FechaEntrega: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Proyecto final", resp.Titulo)
	assert.Equal(t, "2026-09-15", resp.FechaEntrega)
}

func TestEntregarEstudianteNoInscrito(t *testing.T) {
	b := armarActividades(t)

	_, err := b.svc.Entregar(context.Background(), b.ajeno.UsuarioID, b.actividad.ID, dto.EntregarRequest{})
	assert.ErrorIs(t, err, ErrNoAutorizado)
}

// Re-submitting replaces the prior entrega and wipes its grade.
func TestEntregarReemplazaYLimpiaCalificacion(t *testing.T) {
	b := armarActividades(t)

	primera, err := b.svc.Entregar(context.Background(), b.estudiante.UsuarioID, b.actividad.ID, dto.EntregarRequest{})
	require.NoError(t, err)

	entregaID, err := uuid.Parse(primera.ID)
	require.NoError(t, err)
	// Wire the back-reference Calificar walks to check ownership
	b.repo.entregas[entregaID].Actividad = b.actividad

	calificada, err := b.svc.Calificar(context.Background(), b.maestro.UsuarioID, entregaID, dto.CalificarRequest{
		Calificacion: decimal.NewFromInt(85),
	})
	require.NoError(t, err)
	require.NotNil(t, calificada.Calificacion)

	segunda, err := b.svc.Entregar(context.Background(), b.estudiante.UsuarioID, b.actividad.ID, dto.EntregarRequest{})
	require.NoError(t, err)

	assert.Equal(t, primera.ID, segunda.ID, "la segunda entrega reemplaza, no duplica")
	assert.Nil(t, segunda.Calificacion)
	assert.Len(t, b.repo.entregas, 1)
}

func TestCalificarRango(t *testing.T) {
	b := armarActividades(t)

	entrega, err := b.svc.Entregar(context.Background(), b.estudiante.UsuarioID, b.actividad.ID, dto.EntregarRequest{})
	require.NoError(t, err)
	entregaID, err := uuid.Parse(entrega.ID)
	require.NoError(t, err)

	// Wire the back-references Calificar walks to check ownership
	e := b.repo.entregas[entregaID]
	e.Actividad = b.actividad

	_, err = b.svc.Calificar(context.Background(), b.maestro.UsuarioID, entregaID, dto.CalificarRequest{
		Calificacion: decimal.NewFromInt(101),
	})
	assert.EqualError(t, err, "la calificación debe estar entre 0 y 100")

	_, err = b.svc.Calificar(context.Background(), b.otro.UsuarioID, entregaID, dto.CalificarRequest{
		Calificacion: decimal.NewFromInt(90),
	})
	assert.ErrorIs(t, err, ErrNoAutorizado)
}
