package service

import (
	"context"
	"testing"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armarResolverPeriodo(t *testing.T) (*stubPeriodoRepo, *stubEstudianteRepo, PeriodoService, *model.PeriodoAcademico, *model.PeriodoAcademico) {
	t.Helper()
	periodoRepo := newStubPeriodoRepo()
	estudianteRepo := newStubEstudianteRepo()

	anterior := &model.PeriodoAcademico{
		Nombre:      "Año Escolar 2025",
		FechaInicio: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC),
	}
	vigente := &model.PeriodoAcademico{
		Nombre:      "Año Escolar 2026",
		FechaInicio: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		FechaFin:    time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, periodoRepo.Create(context.Background(), anterior))
	require.NoError(t, periodoRepo.Create(context.Background(), vigente))

	return periodoRepo, estudianteRepo, NewPeriodoService(periodoRepo, estudianteRepo), anterior, vigente
}

// A student resolves to their grado's period even when a newer period exists.
func TestResolverPeriodoEstudiante(t *testing.T) {
	_, estudianteRepo, svc, anterior, _ := armarResolverPeriodo(t)

	usuarioID := uuid.New()
	require.NoError(t, estudianteRepo.CreateTx(nil, &model.Estudiante{
		UsuarioID: usuarioID,
		Matricula: "EST-2025-007",
		Grado:     &model.Grado{PeriodoID: anterior.ID},
	}))

	p, err := svc.ResolverPeriodoActual(context.Background(), usuarioID, model.RolEstudiante)
	require.NoError(t, err)
	assert.Equal(t, anterior.ID, p.ID)
}

// A parent resolves through their first tutored child's grado.
func TestResolverPeriodoPadre(t *testing.T) {
	_, estudianteRepo, svc, anterior, _ := armarResolverPeriodo(t)

	tutorID := uuid.New()
	require.NoError(t, estudianteRepo.CreateTx(nil, &model.Estudiante{
		UsuarioID: uuid.New(),
		Matricula: "EST-2025-010",
		TutorID:   &tutorID,
		Grado:     &model.Grado{PeriodoID: anterior.ID},
	}))

	p, err := svc.ResolverPeriodoActual(context.Background(), tutorID, model.RolPadre)
	require.NoError(t, err)
	assert.Equal(t, anterior.ID, p.ID)
}

// Without an enrolled grado the chain falls back to the most recent period.
func TestResolverPeriodoEstudianteSinGrado(t *testing.T) {
	_, estudianteRepo, svc, _, vigente := armarResolverPeriodo(t)

	usuarioID := uuid.New()
	require.NoError(t, estudianteRepo.CreateTx(nil, &model.Estudiante{
		UsuarioID: usuarioID,
		Matricula: "EST-2026-020",
	}))

	p, err := svc.ResolverPeriodoActual(context.Background(), usuarioID, model.RolEstudiante)
	require.NoError(t, err)
	assert.Equal(t, vigente.ID, p.ID)
}

func TestResolverPeriodoOtrosRoles(t *testing.T) {
	_, _, svc, _, vigente := armarResolverPeriodo(t)

	for _, rol := range []string{model.RolAdministrador, model.RolCajero, model.RolMaestro} {
		p, err := svc.ResolverPeriodoActual(context.Background(), uuid.New(), rol)
		require.NoError(t, err)
		assert.Equal(t, vigente.ID, p.ID, "rol %s", rol)
	}
}

func TestPeriodoRangoFechasInvalido(t *testing.T) {
	_, _, svc, _, _ := armarResolverPeriodo(t)

	_, err := svc.Crear(context.Background(), dto.PeriodoRequest{
		Nombre:      "Semestre 2026-2",
		FechaInicio: "2026-07-01",
		FechaFin:    "2026-06-01",
	})
	assert.EqualError(t, err, "fecha_fin no puede ser anterior a fecha_inicio")
}
