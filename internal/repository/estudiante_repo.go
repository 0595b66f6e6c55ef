package repository

import (
	"context"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstudianteRepository interface {
	CreateTx(tx *gorm.DB, e *model.Estudiante) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Estudiante, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Estudiante, error)
	FindFirstByTutor(ctx context.Context, tutorID uuid.UUID) (*model.Estudiante, error)
	List(ctx context.Context) ([]model.Estudiante, error)
	Update(ctx context.Context, e *model.Estudiante) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetGradoTx(tx *gorm.DB, estudianteID uuid.UUID, gradoID uuid.UUID) error
	ReplaceClasesTx(tx *gorm.DB, e *model.Estudiante, clases []model.Clase) error
	DB() *gorm.DB
}

type estudianteRepo struct{ db *gorm.DB }

func NewEstudianteRepository(db *gorm.DB) EstudianteRepository { return &estudianteRepo{db: db} }

func (r *estudianteRepo) DB() *gorm.DB { return r.db }

func (r *estudianteRepo) CreateTx(tx *gorm.DB, e *model.Estudiante) error {
	return tx.Create(e).Error
}

func (r *estudianteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Estudiante, error) {
	var e model.Estudiante
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Grado").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *estudianteRepo) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Estudiante, error) {
	var e model.Estudiante
	err := r.db.WithContext(ctx).
		Preload("Grado").
		Where("usuario_id = ?", usuarioID).First(&e).Error
	return &e, err
}

func (r *estudianteRepo) FindFirstByTutor(ctx context.Context, tutorID uuid.UUID) (*model.Estudiante, error) {
	var e model.Estudiante
	err := r.db.WithContext(ctx).
		Preload("Grado").
		Where("tutor_id = ?", tutorID).
		Order("created_at ASC").First(&e).Error
	return &e, err
}

func (r *estudianteRepo) List(ctx context.Context) ([]model.Estudiante, error) {
	var estudiantes []model.Estudiante
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Order("matricula ASC").Find(&estudiantes).Error
	return estudiantes, err
}

func (r *estudianteRepo) Update(ctx context.Context, e *model.Estudiante) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *estudianteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Estudiante{}, "id = ?", id).Error
}

func (r *estudianteRepo) SetGradoTx(tx *gorm.DB, estudianteID uuid.UUID, gradoID uuid.UUID) error {
	return tx.Model(&model.Estudiante{}).Where("id = ?", estudianteID).Update("grado_id", gradoID).Error
}

// ReplaceClasesTx sets the student's roster to exactly the given clases —
// GORM's Replace adds the new links and removes the absent ones.
func (r *estudianteRepo) ReplaceClasesTx(tx *gorm.DB, e *model.Estudiante, clases []model.Clase) error {
	return tx.Model(e).Association("Clases").Replace(&clases)
}
