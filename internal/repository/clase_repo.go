package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClaseRepository interface {
	Create(ctx context.Context, c *model.Clase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Clase, error)
	ListByPeriodo(ctx context.Context, periodoID uuid.UUID) ([]model.Clase, error)
	ListByEstudianteYPeriodo(ctx context.Context, estudianteID, periodoID uuid.UUID) ([]model.Clase, error)
	ListByMaestroYPeriodo(ctx context.Context, maestroID, periodoID uuid.UUID) ([]model.Clase, error)
	Update(ctx context.Context, c *model.Clase) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceEstudiantes(ctx context.Context, c *model.Clase, estudiantes []model.Estudiante) error
}

type claseRepo struct{ db *gorm.DB }

func NewClaseRepository(db *gorm.DB) ClaseRepository { return &claseRepo{db: db} }

func (r *claseRepo) Create(ctx context.Context, c *model.Clase) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *claseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Clase, error) {
	var c model.Clase
	err := r.db.WithContext(ctx).
		Preload("Curso").
		Preload("Maestro.Usuario").
		Preload("Estudiantes.Usuario").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *claseRepo) ListByPeriodo(ctx context.Context, periodoID uuid.UUID) ([]model.Clase, error) {
	var clases []model.Clase
	err := r.db.WithContext(ctx).
		Preload("Curso").
		Preload("Maestro.Usuario").
		Where("periodo_id = ?", periodoID).
		Order("dia_semana ASC, hora_inicio ASC").
		Find(&clases).Error
	return clases, err
}

func (r *claseRepo) ListByEstudianteYPeriodo(ctx context.Context, estudianteID, periodoID uuid.UUID) ([]model.Clase, error) {
	var clases []model.Clase
	err := r.db.WithContext(ctx).
		Preload("Curso").
		Preload("Maestro.Usuario").
		Joins("JOIN clase_estudiantes ce ON ce.clase_id = clases.id").
		Where("ce.estudiante_id = ? AND clases.periodo_id = ?", estudianteID, periodoID).
		Order("clases.dia_semana ASC, clases.hora_inicio ASC").
		Find(&clases).Error
	return clases, err
}

func (r *claseRepo) ListByMaestroYPeriodo(ctx context.Context, maestroID, periodoID uuid.UUID) ([]model.Clase, error) {
	var clases []model.Clase
	err := r.db.WithContext(ctx).
		Preload("Curso").
		Preload("Estudiantes.Usuario").
		Where("maestro_id = ? AND periodo_id = ?", maestroID, periodoID).
		Order("dia_semana ASC, hora_inicio ASC").
		Find(&clases).Error
	return clases, err
}

func (r *claseRepo) Update(ctx context.Context, c *model.Clase) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *claseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Clase{}, "id = ?", id).Error
}

func (r *claseRepo) ReplaceEstudiantes(ctx context.Context, c *model.Clase, estudiantes []model.Estudiante) error {
	return r.db.WithContext(ctx).Model(c).Association("Estudiantes").Replace(&estudiantes)
}
