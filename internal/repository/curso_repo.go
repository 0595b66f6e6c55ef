package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CursoRepository interface {
	Create(ctx context.Context, c *model.Curso) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Curso, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Curso, error)
	List(ctx context.Context) ([]model.Curso, error)
	Update(ctx context.Context, c *model.Curso) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cursoRepo struct{ db *gorm.DB }

func NewCursoRepository(db *gorm.DB) CursoRepository { return &cursoRepo{db: db} }

func (r *cursoRepo) Create(ctx context.Context, c *model.Curso) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cursoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Curso, error) {
	var c model.Curso
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cursoRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cursos).Error
	return cursos, err
}

func (r *cursoRepo) List(ctx context.Context) ([]model.Curso, error) {
	var cursos []model.Curso
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&cursos).Error
	return cursos, err
}

func (r *cursoRepo) Update(ctx context.Context, c *model.Curso) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cursoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Curso{}, "id = ?", id).Error
}
