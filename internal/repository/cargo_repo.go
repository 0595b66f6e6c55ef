package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CargoRepository interface {
	Create(ctx context.Context, c *model.Cargo) error
	CreateTx(tx *gorm.DB, c *model.Cargo) error
	// FindByID loads the cargo with its pagos — callers computing saldo rely on that.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cargo, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Cargo, error)
	ListByEstudiante(ctx context.Context, estudianteID uuid.UUID, estado string) ([]model.Cargo, error)
	ExistsByConceptoTx(tx *gorm.DB, estudianteID uuid.UUID, concepto string) (bool, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountPagos(ctx context.Context, cargoID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type cargoRepo struct{ db *gorm.DB }

func NewCargoRepository(db *gorm.DB) CargoRepository { return &cargoRepo{db: db} }

func (r *cargoRepo) DB() *gorm.DB { return r.db }

func (r *cargoRepo) Create(ctx context.Context, c *model.Cargo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cargoRepo) CreateTx(tx *gorm.DB, c *model.Cargo) error {
	return tx.Create(c).Error
}

func (r *cargoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cargo, error) {
	var c model.Cargo
	err := r.db.WithContext(ctx).Preload("Pagos").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cargoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Cargo, error) {
	var c model.Cargo
	err := tx.Preload("Pagos").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cargoRepo) ListByEstudiante(ctx context.Context, estudianteID uuid.UUID, estado string) ([]model.Cargo, error) {
	q := r.db.WithContext(ctx).Preload("Pagos").Where("estudiante_id = ?", estudianteID)
	if estado != "" && estado != "all" {
		q = q.Where("estado = ?", estado)
	}
	var cargos []model.Cargo
	err := q.Order("fecha_vencimiento ASC").Find(&cargos).Error
	return cargos, err
}

func (r *cargoRepo) ExistsByConceptoTx(tx *gorm.DB, estudianteID uuid.UUID, concepto string) (bool, error) {
	var count int64
	err := tx.Model(&model.Cargo{}).
		Where("estudiante_id = ? AND concepto = ?", estudianteID, concepto).
		Count(&count).Error
	return count > 0, err
}

func (r *cargoRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Cargo{}).Where("id = ?", id).Update("estado", estado).Error
}

// Delete relies on the pagos FK (ON DELETE RESTRICT) to refuse removal of a
// cargo that has payments — the constraint error surfaces to the caller.
func (r *cargoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cargo{}, "id = ?", id).Error
}

func (r *cargoRepo) CountPagos(ctx context.Context, cargoID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pago{}).Where("cargo_id = ?", cargoID).Count(&count).Error
	return count, err
}
