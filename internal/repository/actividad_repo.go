package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActividadRepository interface {
	Create(ctx context.Context, a *model.Actividad) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Actividad, error)
	ListByClases(ctx context.Context, claseIDs []uuid.UUID) ([]model.Actividad, error)

	FindEntrega(ctx context.Context, actividadID, estudianteID uuid.UUID) (*model.Entrega, error)
	FindEntregaByID(ctx context.Context, id uuid.UUID) (*model.Entrega, error)
	SaveEntrega(ctx context.Context, e *model.Entrega) error
	ListEntregasByActividad(ctx context.Context, actividadID uuid.UUID) ([]model.Entrega, error)
	ListEntregasByEstudiante(ctx context.Context, estudianteID uuid.UUID, actividadIDs []uuid.UUID) ([]model.Entrega, error)
}

type actividadRepo struct{ db *gorm.DB }

func NewActividadRepository(db *gorm.DB) ActividadRepository { return &actividadRepo{db: db} }

func (r *actividadRepo) Create(ctx context.Context, a *model.Actividad) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *actividadRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Actividad, error) {
	var a model.Actividad
	err := r.db.WithContext(ctx).
		Preload("Clase").
		Preload("Clase.Curso").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *actividadRepo) ListByClases(ctx context.Context, claseIDs []uuid.UUID) ([]model.Actividad, error) {
	if len(claseIDs) == 0 {
		return nil, nil
	}
	var actividades []model.Actividad
	err := r.db.WithContext(ctx).
		Preload("Clase.Curso").
		Where("clase_id IN ?", claseIDs).
		Order("fecha_entrega ASC").
		Find(&actividades).Error
	return actividades, err
}

func (r *actividadRepo) FindEntrega(ctx context.Context, actividadID, estudianteID uuid.UUID) (*model.Entrega, error) {
	var e model.Entrega
	err := r.db.WithContext(ctx).
		Where("actividad_id = ? AND estudiante_id = ?", actividadID, estudianteID).
		First(&e).Error
	return &e, err
}

func (r *actividadRepo) FindEntregaByID(ctx context.Context, id uuid.UUID) (*model.Entrega, error) {
	var e model.Entrega
	err := r.db.WithContext(ctx).
		Preload("Actividad.Clase").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *actividadRepo) SaveEntrega(ctx context.Context, e *model.Entrega) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *actividadRepo) ListEntregasByActividad(ctx context.Context, actividadID uuid.UUID) ([]model.Entrega, error) {
	var entregas []model.Entrega
	err := r.db.WithContext(ctx).
		Preload("Estudiante.Usuario").
		Where("actividad_id = ?", actividadID).
		Order("fecha_entrega ASC").
		Find(&entregas).Error
	return entregas, err
}

func (r *actividadRepo) ListEntregasByEstudiante(ctx context.Context, estudianteID uuid.UUID, actividadIDs []uuid.UUID) ([]model.Entrega, error) {
	if len(actividadIDs) == 0 {
		return nil, nil
	}
	var entregas []model.Entrega
	err := r.db.WithContext(ctx).
		Where("estudiante_id = ? AND actividad_id IN ?", estudianteID, actividadIDs).
		Find(&entregas).Error
	return entregas, err
}
