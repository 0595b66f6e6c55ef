package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradoRepository interface {
	Create(ctx context.Context, g *model.Grado) error
	// FindByID loads the grado with its clase template and periodo.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Grado, error)
	List(ctx context.Context) ([]model.Grado, error)
	Update(ctx context.Context, g *model.Grado) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceClases(ctx context.Context, g *model.Grado, clases []model.Clase) error
}

type gradoRepo struct{ db *gorm.DB }

func NewGradoRepository(db *gorm.DB) GradoRepository { return &gradoRepo{db: db} }

func (r *gradoRepo) Create(ctx context.Context, g *model.Grado) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gradoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Grado, error) {
	var g model.Grado
	err := r.db.WithContext(ctx).
		Preload("Periodo").
		Preload("Clases").
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *gradoRepo) List(ctx context.Context) ([]model.Grado, error) {
	var grados []model.Grado
	err := r.db.WithContext(ctx).Preload("Periodo").Order("nombre ASC").Find(&grados).Error
	return grados, err
}

func (r *gradoRepo) Update(ctx context.Context, g *model.Grado) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *gradoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Grado{}, "id = ?", id).Error
}

func (r *gradoRepo) ReplaceClases(ctx context.Context, g *model.Grado, clases []model.Clase) error {
	return r.db.WithContext(ctx).Model(g).Association("Clases").Replace(&clases)
}
