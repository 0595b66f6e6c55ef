package service

import (
	"context"
	"testing"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armarPagoService() (*stubCargoRepo, *stubPagoRepo, PagoService) {
	cargoRepo := newStubCargoRepo()
	pagoRepo := newStubPagoRepo(cargoRepo)
	cargoSvc := NewCargoService(cargoRepo)
	return cargoRepo, pagoRepo, NewPagoService(pagoRepo, cargoRepo, cargoSvc)
}

func TestRegistrarPagoSaldaCargo(t *testing.T) {
	cargoRepo, _, svc := armarPagoService()

	ayer := fechaSolo(time.Now()).AddDate(0, 0, -1)
	cargo := nuevoCargo(cargoRepo, 100, ayer, model.CargoVencido)

	resp, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		CargoID: cargo.ID.String(),
		Monto:   decimal.NewFromInt(100),
		Metodo:  "efectivo",
	})
	require.NoError(t, err)

	// The response reflects the parent cargo AFTER the payment
	assert.Equal(t, model.CargoPagado, resp.CargoEstado)
	assert.True(t, resp.SaldoPendiente.IsZero())
	assert.Equal(t, model.CargoPagado, cargo.Estado)
}

func TestRegistrarPagoParcial(t *testing.T) {
	cargoRepo, _, svc := armarPagoService()

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(cargoRepo, 100, manana, model.CargoPendiente)

	resp, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		CargoID: cargo.ID.String(),
		Monto:   decimal.NewFromInt(40),
		Metodo:  "tarjeta",
	})
	require.NoError(t, err)

	assert.Equal(t, model.CargoPendiente, resp.CargoEstado)
	assert.True(t, resp.SaldoPendiente.Equal(decimal.NewFromInt(60)))
}

// Overpayment is accepted as-is; no cap at the remaining balance.
func TestRegistrarPagoSobrepago(t *testing.T) {
	cargoRepo, _, svc := armarPagoService()

	manana := fechaSolo(time.Now()).AddDate(0, 0, 1)
	cargo := nuevoCargo(cargoRepo, 100, manana, model.CargoPendiente)

	resp, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		CargoID: cargo.ID.String(),
		Monto:   decimal.NewFromInt(150),
		Metodo:  "transferencia",
	})
	require.NoError(t, err)

	assert.Equal(t, model.CargoPagado, resp.CargoEstado)
	assert.True(t, resp.SaldoPendiente.Equal(decimal.NewFromInt(-50)))
}

func TestRegistrarPagoCargoInexistente(t *testing.T) {
	_, _, svc := armarPagoService()

	_, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		CargoID: "00000000-0000-0000-0000-000000000001",
		Monto:   decimal.NewFromInt(10),
		Metodo:  "efectivo",
	})
	assert.Error(t, err)
}

// Deleting the only payment on a paid-off, past-due cargo flips it back to
// vencido in the same transaction.
func TestEliminarPagoRevierteEstado(t *testing.T) {
	cargoRepo, _, svc := armarPagoService()

	ayer := fechaSolo(time.Now()).AddDate(0, 0, -1)
	cargo := nuevoCargo(cargoRepo, 100, ayer, model.CargoVencido)

	resp, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		CargoID: cargo.ID.String(),
		Monto:   decimal.NewFromInt(100),
		Metodo:  "efectivo",
	})
	require.NoError(t, err)
	require.Equal(t, model.CargoPagado, cargo.Estado)

	pagoID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	require.NoError(t, svc.EliminarPago(context.Background(), pagoID))

	assert.Equal(t, model.CargoVencido, cargo.Estado)
	assert.Empty(t, cargo.Pagos)
}
