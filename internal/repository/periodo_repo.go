package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PeriodoRepository interface {
	Create(ctx context.Context, p *model.PeriodoAcademico) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PeriodoAcademico, error)
	// FindMasReciente returns the most recently started period.
	FindMasReciente(ctx context.Context) (*model.PeriodoAcademico, error)
	List(ctx context.Context) ([]model.PeriodoAcademico, error)
	Update(ctx context.Context, p *model.PeriodoAcademico) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type periodoRepo struct{ db *gorm.DB }

func NewPeriodoRepository(db *gorm.DB) PeriodoRepository { return &periodoRepo{db: db} }

func (r *periodoRepo) Create(ctx context.Context, p *model.PeriodoAcademico) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *periodoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PeriodoAcademico, error) {
	var p model.PeriodoAcademico
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *periodoRepo) FindMasReciente(ctx context.Context) (*model.PeriodoAcademico, error) {
	var p model.PeriodoAcademico
	err := r.db.WithContext(ctx).Order("fecha_inicio DESC").First(&p).Error
	return &p, err
}

func (r *periodoRepo) List(ctx context.Context) ([]model.PeriodoAcademico, error) {
	var periodos []model.PeriodoAcademico
	err := r.db.WithContext(ctx).Order("fecha_inicio DESC").Find(&periodos).Error
	return periodos, err
}

func (r *periodoRepo) Update(ctx context.Context, p *model.PeriodoAcademico) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *periodoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PeriodoAcademico{}, "id = ?", id).Error
}
