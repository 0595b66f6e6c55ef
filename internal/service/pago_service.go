package service

import (
	"context"
	"errors"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagoService interface {
	RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error)
	EliminarPago(ctx context.Context, id uuid.UUID) error
	ListarPorCargo(ctx context.Context, cargoID uuid.UUID) ([]dto.PagoResponse, error)
}

type pagoService struct {
	repo      repository.PagoRepository
	cargoRepo repository.CargoRepository
	cargos    CargoService
}

func NewPagoService(repo repository.PagoRepository, cargoRepo repository.CargoRepository, cargos CargoService) PagoService {
	return &pagoService{repo: repo, cargoRepo: cargoRepo, cargos: cargos}
}

// RegistrarPago creates the pago and recomputes the parent cargo's estado in
// one transaction, so the very next read of the cargo sees the new saldo.
// The payment amount is NOT capped at the remaining balance: overpayment is
// accepted and the estado computation floors the saldo at pagado.
func (s *pagoService) RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	cargoID, err := uuid.Parse(req.CargoID)
	if err != nil {
		return nil, errors.New("cargo_id inválido")
	}
	cargo, err := s.cargoRepo.FindByID(ctx, cargoID)
	if err != nil {
		return nil, errors.New("cargo no encontrado")
	}

	pago := &model.Pago{
		CargoID:      cargo.ID,
		EstudianteID: cargo.EstudianteID,
		Monto:        req.Monto,
		FechaPago:    fechaSolo(time.Now()),
		Metodo:       req.Metodo,
		Referencia:   req.Referencia,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, pago); err != nil {
			return err
		}
		return s.cargos.ActualizarEstadoTx(tx, cargo.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	actualizado, err := s.cargoRepo.FindByID(ctx, cargo.ID)
	if err != nil {
		return nil, err
	}
	resp := pagoToResponse(pago)
	resp.CargoEstado = actualizado.Estado
	resp.SaldoPendiente = actualizado.Saldo()
	return resp, nil
}

// EliminarPago removes the pago and recomputes the cargo in one transaction —
// deleting the only payment on a paid-off, past-due cargo flips it back to vencido.
func (s *pagoService) EliminarPago(ctx context.Context, id uuid.UUID) error {
	pago, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("pago no encontrado")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		return s.cargos.ActualizarEstadoTx(tx, pago.CargoID)
	})
}

func (s *pagoService) ListarPorCargo(ctx context.Context, cargoID uuid.UUID) ([]dto.PagoResponse, error) {
	pagos, err := s.repo.ListByCargo(ctx, cargoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PagoResponse, len(pagos))
	for i := range pagos {
		resp[i] = *pagoToResponse(&pagos[i])
	}
	return resp, nil
}

func pagoToResponse(p *model.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:           p.ID.String(),
		CargoID:      p.CargoID.String(),
		EstudianteID: p.EstudianteID.String(),
		Monto:        p.Monto,
		FechaPago:    p.FechaPago.Format("2006-01-02"),
		Metodo:       p.Metodo,
		Referencia:   p.Referencia,
	}
}
