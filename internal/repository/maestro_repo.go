package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaestroRepository interface {
	CreateTx(tx *gorm.DB, m *model.Maestro) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Maestro, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Maestro, error)
	List(ctx context.Context) ([]model.Maestro, error)
	Update(ctx context.Context, m *model.Maestro) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceCursos(ctx context.Context, m *model.Maestro, cursos []model.Curso) error
	DB() *gorm.DB
}

type maestroRepo struct{ db *gorm.DB }

func NewMaestroRepository(db *gorm.DB) MaestroRepository { return &maestroRepo{db: db} }

func (r *maestroRepo) DB() *gorm.DB { return r.db }

func (r *maestroRepo) CreateTx(tx *gorm.DB, m *model.Maestro) error {
	return tx.Create(m).Error
}

func (r *maestroRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Maestro, error) {
	var m model.Maestro
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Cursos").
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *maestroRepo) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Maestro, error) {
	var m model.Maestro
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&m).Error
	return &m, err
}

func (r *maestroRepo) List(ctx context.Context) ([]model.Maestro, error) {
	var maestros []model.Maestro
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Cursos").
		Order("numero_empleado ASC").Find(&maestros).Error
	return maestros, err
}

func (r *maestroRepo) Update(ctx context.Context, m *model.Maestro) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *maestroRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Maestro{}, "id = ?", id).Error
}

func (r *maestroRepo) ReplaceCursos(ctx context.Context, m *model.Maestro, cursos []model.Curso) error {
	return r.db.WithContext(ctx).Model(m).Association("Cursos").Replace(&cursos)
}
