package service

import (
	"context"
	"testing"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorarioGrillaCompleta(t *testing.T) {
	periodoRepo := newStubPeriodoRepo()
	claseRepo := newStubClaseRepo()
	svc := NewHorarioService(periodoRepo, claseRepo)

	periodo := &model.PeriodoAcademico{
		Nombre:      "Año Escolar 2026",
		FechaInicio: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, periodoRepo.Create(context.Background(), periodo))

	agregar := func(dia, inicio, fin string) {
		require.NoError(t, claseRepo.Create(context.Background(), &model.Clase{
			PeriodoID:  periodo.ID,
			CursoID:    uuid.New(),
			DiaSemana:  dia,
			HoraInicio: inicio,
			HoraFin:    fin,
		}))
	}

	agregar(model.DiaLunes, "08:30", "09:30")  // minutes truncate: buckets under 8
	agregar(model.DiaMartes, "06:45", "07:45") // before the visible range: omitted
	agregar(model.DiaMartes, "09:00", "10:00")
	agregar(model.DiaMartes, "09:15", "10:15") // same slot — both displayed

	resp, err := svc.ObtenerHorario(context.Background(), &periodo.ID)
	require.NoError(t, err)

	assert.Equal(t, periodo.Nombre, resp.PeriodoActual.Nombre)
	assert.Equal(t, model.DiasSemana, resp.Dias)
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}, resp.Horas)

	// Every cell exists, even the empty ones
	require.Len(t, resp.Horario, 11)
	for _, h := range resp.Horas {
		require.Len(t, resp.Horario[h], len(model.DiasSemana))
		for _, dia := range model.DiasSemana {
			assert.NotNil(t, resp.Horario[h][dia])
		}
	}

	assert.Len(t, resp.Horario[8][model.DiaLunes], 1)
	assert.Len(t, resp.Horario[9][model.DiaMartes], 2)

	// The 06:45 clase appears nowhere in the grid
	total := 0
	for _, fila := range resp.Horario {
		for _, celda := range fila {
			total += len(celda)
		}
	}
	assert.Equal(t, 3, total)
}

func TestHorarioSinPeriodoUsaElMasReciente(t *testing.T) {
	periodoRepo := newStubPeriodoRepo()
	claseRepo := newStubClaseRepo()
	svc := NewHorarioService(periodoRepo, claseRepo)

	viejo := &model.PeriodoAcademico{
		Nombre:      "Año Escolar 2025",
		FechaInicio: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC),
	}
	nuevo := &model.PeriodoAcademico{
		Nombre:      "Año Escolar 2026",
		FechaInicio: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, periodoRepo.Create(context.Background(), viejo))
	require.NoError(t, periodoRepo.Create(context.Background(), nuevo))

	resp, err := svc.ObtenerHorario(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Año Escolar 2026", resp.PeriodoActual.Nombre)
	assert.Len(t, resp.Periodos, 2)
}

func TestHorarioSinPeriodos(t *testing.T) {
	svc := NewHorarioService(newStubPeriodoRepo(), newStubClaseRepo())

	_, err := svc.ObtenerHorario(context.Background(), nil)
	assert.EqualError(t, err, "no hay periodos académicos registrados")
}
