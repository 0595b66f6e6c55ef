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

var ErrCargoConPagos = errors.New("el cargo tiene pagos registrados y no puede eliminarse")

type CargoService interface {
	CrearCargo(ctx context.Context, req dto.CrearCargoRequest) (*dto.CargoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CargoResponse, error)
	ListarPorEstudiante(ctx context.Context, estudianteID uuid.UUID, estado string) ([]dto.CargoResponse, error)
	CancelarCargo(ctx context.Context, id uuid.UUID) error
	EliminarCargo(ctx context.Context, id uuid.UUID) error
	// ActualizarEstadoTx recomputes a cargo's estado from its full payment set.
	// Must run inside the same transaction as the payment write that triggered it.
	ActualizarEstadoTx(tx *gorm.DB, cargoID uuid.UUID) error
}

type cargoService struct {
	repo repository.CargoRepository
}

func NewCargoService(repo repository.CargoRepository) CargoService {
	return &cargoService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// fechaSolo strips the time-of-day component so date comparisons ignore clocks.
func fechaSolo(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ── Ledger recompute ─────────────────────────────────────────────────────────
// Estado is a pure function of (sum of pagos, fecha_vencimiento, hoy):
//   saldo <= 0                  → pagado
//   fecha_vencimiento < hoy     → vencido
//   otherwise                   → pendiente
// Cancelado is terminal: the recompute never touches a cancelled cargo.
// The full payment set is re-summed on every call, never adjusted
// incrementally, so the operation is idempotent and re-entrant safe.

func (s *cargoService) ActualizarEstadoTx(tx *gorm.DB, cargoID uuid.UUID) error {
	cargo, err := s.repo.FindByIDTx(tx, cargoID)
	if err != nil {
		return err
	}
	if cargo.Estado == model.CargoCancelado {
		return nil
	}

	nuevo := model.CargoPendiente
	hoy := fechaSolo(time.Now())
	switch {
	case !cargo.Saldo().IsPositive():
		nuevo = model.CargoPagado
	case fechaSolo(cargo.FechaVencimiento).Before(hoy):
		nuevo = model.CargoVencido
	}

	if nuevo == cargo.Estado {
		return nil
	}
	return s.repo.UpdateEstadoTx(tx, cargoID, nuevo)
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func (s *cargoService) CrearCargo(ctx context.Context, req dto.CrearCargoRequest) (*dto.CargoResponse, error) {
	estudianteID, err := uuid.Parse(req.EstudianteID)
	if err != nil {
		return nil, errors.New("estudiante_id inválido")
	}
	venc, err := time.Parse("2006-01-02", req.FechaVencimiento)
	if err != nil {
		return nil, errors.New("fecha_vencimiento inválida, use YYYY-MM-DD")
	}

	cargo := &model.Cargo{
		EstudianteID:     estudianteID,
		Concepto:         req.Concepto,
		Monto:            req.Monto,
		FechaEmision:     fechaSolo(time.Now()),
		FechaVencimiento: venc,
		Estado:           model.CargoPendiente,
	}
	if req.PeriodoID != nil {
		pid, err := uuid.Parse(*req.PeriodoID)
		if err != nil {
			return nil, errors.New("periodo_id inválido")
		}
		cargo.PeriodoID = &pid
	}
	if err := s.repo.Create(ctx, cargo); err != nil {
		return nil, err
	}
	return cargoToResponse(cargo), nil
}

func (s *cargoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CargoResponse, error) {
	cargo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cargo no encontrado")
	}
	return cargoToResponse(cargo), nil
}

func (s *cargoService) ListarPorEstudiante(ctx context.Context, estudianteID uuid.UUID, estado string) ([]dto.CargoResponse, error) {
	cargos, err := s.repo.ListByEstudiante(ctx, estudianteID, estado)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CargoResponse, len(cargos))
	for i := range cargos {
		resp[i] = *cargoToResponse(&cargos[i])
	}
	return resp, nil
}

// CancelarCargo is the only user-facing action that sets estado directly.
func (s *cargoService) CancelarCargo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("cargo no encontrado")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateEstadoTx(tx, id, model.CargoCancelado)
	})
}

func (s *cargoService) EliminarCargo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("cargo no encontrado")
	}
	count, err := s.repo.CountPagos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCargoConPagos
	}
	// The pagos FK (RESTRICT) is the last line of defense against a race here.
	return s.repo.Delete(ctx, id)
}

func cargoToResponse(c *model.Cargo) *dto.CargoResponse {
	var periodoID *string
	if c.PeriodoID != nil {
		p := c.PeriodoID.String()
		periodoID = &p
	}
	return &dto.CargoResponse{
		ID:               c.ID.String(),
		EstudianteID:     c.EstudianteID.String(),
		PeriodoID:        periodoID,
		Concepto:         c.Concepto,
		Monto:            c.Monto,
		SaldoPendiente:   c.Saldo(),
		FechaEmision:     c.FechaEmision.Format("2006-01-02"),
		FechaVencimiento: c.FechaVencimiento.Format("2006-01-02"),
		Estado:           c.Estado,
	}
}
