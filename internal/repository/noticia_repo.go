package repository

import (
	"context"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticiaRepository interface {
	Create(ctx context.Context, n *model.Noticia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Noticia, error)
	ListPublicadas(ctx context.Context) ([]model.Noticia, error)
	Update(ctx context.Context, n *model.Noticia) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateNotificacion(ctx context.Context, n *model.Notificacion) error
	UpdateNotificacion(ctx context.Context, n *model.Notificacion) error
	FindNotificacionByID(ctx context.Context, id uuid.UUID) (*model.Notificacion, error)
	// ListPendingRetries returns pendiente notificaciones whose next_retry_at is due.
	ListPendingRetries(ctx context.Context, now time.Time, limit int) ([]model.Notificacion, error)
}

type noticiaRepo struct{ db *gorm.DB }

func NewNoticiaRepository(db *gorm.DB) NoticiaRepository { return &noticiaRepo{db: db} }

func (r *noticiaRepo) Create(ctx context.Context, n *model.Noticia) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noticiaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Noticia, error) {
	var n model.Noticia
	err := r.db.WithContext(ctx).Preload("Autor").First(&n, "id = ?", id).Error
	return &n, err
}

func (r *noticiaRepo) ListPublicadas(ctx context.Context) ([]model.Noticia, error) {
	var noticias []model.Noticia
	err := r.db.WithContext(ctx).
		Preload("Autor").
		Where("publicado").
		Order("fecha_publicacion DESC").
		Find(&noticias).Error
	return noticias, err
}

func (r *noticiaRepo) Update(ctx context.Context, n *model.Noticia) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noticiaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Noticia{}, "id = ?", id).Error
}

func (r *noticiaRepo) CreateNotificacion(ctx context.Context, n *model.Notificacion) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noticiaRepo) UpdateNotificacion(ctx context.Context, n *model.Notificacion) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noticiaRepo) FindNotificacionByID(ctx context.Context, id uuid.UUID) (*model.Notificacion, error) {
	var n model.Notificacion
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	return &n, err
}

func (r *noticiaRepo) ListPendingRetries(ctx context.Context, now time.Time, limit int) ([]model.Notificacion, error) {
	var pendientes []model.Notificacion
	err := r.db.WithContext(ctx).
		Where("estado = 'pendiente' AND next_retry_at IS NOT NULL AND next_retry_at <= ?", now).
		Order("next_retry_at ASC").
		Limit(limit).
		Find(&pendientes).Error
	return pendientes, err
}
