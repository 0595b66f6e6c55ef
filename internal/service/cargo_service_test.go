package service

import (
	"context"
	"testing"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoCargo(repo *stubCargoRepo, monto int64, vencimiento time.Time, estado string) *model.Cargo {
	c := &model.Cargo{
		EstudianteID:     uuid.New(),
		Concepto:         "Colegiatura 2026-08",
		Monto:            decimal.NewFromInt(monto),
		FechaEmision:     fechaSolo(time.Now()),
		FechaVencimiento: vencimiento,
		Estado:           estado,
	}
	_ = repo.Create(context.Background(), c)
	return c
}

func TestActualizarEstadoPagado(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(repo, 100, manana, model.CargoPendiente)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(100)}}

	require.NoError(t, svc.ActualizarEstadoTx(nil, cargo.ID))
	assert.Equal(t, model.CargoPagado, cargo.Estado)
}

func TestActualizarEstadoVencido(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	ayer := fechaSolo(time.Now()).AddDate(0, 0, -1)
	cargo := nuevoCargo(repo, 100, ayer, model.CargoPendiente)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(30)}}

	require.NoError(t, svc.ActualizarEstadoTx(nil, cargo.ID))
	assert.Equal(t, model.CargoVencido, cargo.Estado)
}

func TestActualizarEstadoSigueVigente(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(repo, 100, manana, model.CargoPendiente)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(30)}}

	require.NoError(t, svc.ActualizarEstadoTx(nil, cargo.ID))
	assert.Equal(t, model.CargoPendiente, cargo.Estado)
}

// Overpayment floors at pagado — the saldo may go negative but the estado never
// goes past pagado.
func TestActualizarEstadoSobrepago(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	ayer := fechaSolo(time.Now()).AddDate(0, 0, -1)
	cargo := nuevoCargo(repo, 100, ayer, model.CargoVencido)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(150)}}

	require.NoError(t, svc.ActualizarEstadoTx(nil, cargo.ID))
	assert.Equal(t, model.CargoPagado, cargo.Estado)
	assert.True(t, cargo.Saldo().IsNegative())
}

func TestActualizarEstadoCanceladoEsTerminal(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	ayer := fechaSolo(time.Now()).AddDate(0, 0, -1)
	cargo := nuevoCargo(repo, 100, ayer, model.CargoCancelado)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(100)}}

	require.NoError(t, svc.ActualizarEstadoTx(nil, cargo.ID))
	assert.Equal(t, model.CargoCancelado, cargo.Estado)
}

// Re-running the recompute never changes the outcome: estado is a pure function
// of the payment set, not of the number of recomputes.
func TestActualizarEstadoEsIdempotente(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(repo, 100, manana, model.CargoPendiente)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(100)}}

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ActualizarEstadoTx(nil, cargo.ID))
	}
	assert.Equal(t, model.CargoPagado, cargo.Estado)
}

func TestEliminarCargoConPagos(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(repo, 100, manana, model.CargoPendiente)
	cargo.Pagos = []model.Pago{{Monto: decimal.NewFromInt(50)}}

	err := svc.EliminarCargo(context.Background(), cargo.ID)
	assert.ErrorIs(t, err, ErrCargoConPagos)
	_, encontrado := repo.cargos[cargo.ID]
	assert.True(t, encontrado, "el cargo no debe eliminarse")
}

func TestEliminarCargoSinPagos(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(repo, 100, manana, model.CargoPendiente)

	require.NoError(t, svc.EliminarCargo(context.Background(), cargo.ID))
	_, encontrado := repo.cargos[cargo.ID]
	assert.False(t, encontrado)
}

func TestCancelarCargo(t *testing.T) {
	repo := newStubCargoRepo()
	svc := NewCargoService(repo)

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(repo, 100, manana, model.CargoPendiente)

	require.NoError(t, svc.CancelarCargo(context.Background(), cargo.ID))
	assert.Equal(t, model.CargoCancelado, cargo.Estado)
}
