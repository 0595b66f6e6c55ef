package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubNoticiaRepo struct {
	noticias       map[uuid.UUID]*model.Noticia
	notificaciones map[uuid.UUID]*model.Notificacion
}

func newStubNoticiaRepo() *stubNoticiaRepo {
	return &stubNoticiaRepo{
		noticias:       make(map[uuid.UUID]*model.Noticia),
		notificaciones: make(map[uuid.UUID]*model.Notificacion),
	}
}

func (r *stubNoticiaRepo) Create(_ context.Context, n *model.Noticia) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.noticias[n.ID] = n
	return nil
}

func (r *stubNoticiaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Noticia, error) {
	n, ok := r.noticias[id]
	if !ok {
		return nil, errNotFound
	}
	return n, nil
}

func (r *stubNoticiaRepo) ListPublicadas(_ context.Context) ([]model.Noticia, error) {
	var out []model.Noticia
	for _, n := range r.noticias {
		if n.Publicado {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNoticiaRepo) Update(_ context.Context, n *model.Noticia) error {
	r.noticias[n.ID] = n
	return nil
}

func (r *stubNoticiaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.noticias, id)
	return nil
}

func (r *stubNoticiaRepo) CreateNotificacion(_ context.Context, n *model.Notificacion) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notificaciones[n.ID] = n
	return nil
}

func (r *stubNoticiaRepo) UpdateNotificacion(_ context.Context, n *model.Notificacion) error {
	r.notificaciones[n.ID] = n
	return nil
}

func (r *stubNoticiaRepo) FindNotificacionByID(_ context.Context, id uuid.UUID) (*model.Notificacion, error) {
	n, ok := r.notificaciones[id]
	if !ok {
		return nil, errNotFound
	}
	return n, nil
}

func (r *stubNoticiaRepo) ListPendingRetries(_ context.Context, now time.Time, limit int) ([]model.Notificacion, error) {
	var out []model.Notificacion
	for _, n := range r.notificaciones {
		if n.Estado == model.NotificacionPendiente && n.NextRetryAt != nil && !n.NextRetryAt.After(now) {
			out = append(out, *n)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

var _ repository.NoticiaRepository = (*stubNoticiaRepo)(nil)

// stubUsuarioRepo only implements what the notification fan-out touches.
type stubUsuarioRepo struct {
	usuarios []*model.Usuario
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios = append(r.usuarios, u)
	return nil
}

func (r *stubUsuarioRepo) CreateTx(_ *gorm.DB, u *model.Usuario) error {
	return r.Create(context.Background(), u)
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListActivosByRoles(_ context.Context, roles ...string) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if !u.Activo {
			continue
		}
		for _, rol := range roles {
			if u.Rol == rol {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error { return nil }

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for _, u := range r.usuarios {
		if u.ID == id {
			u.Activo = false
		}
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	for _, u := range r.usuarios {
		if u.ID == id {
			u.Activo = true
		}
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubDispatcher records enqueued IDs; failN makes the first N calls fail.
type stubDispatcher struct {
	encoladas []uuid.UUID
	failN     int
}

func (d *stubDispatcher) EnqueueNotificacion(_ context.Context, id uuid.UUID) error {
	if d.failN > 0 {
		d.failN--
		return errors.New("redis caído")
	}
	d.encoladas = append(d.encoladas, id)
	return nil
}

func usuarioActivo(rol, email string) *model.Usuario {
	u := &model.Usuario{
		Username: email,
		Nombre:   "Usuario",
		Rol:      rol,
		Activo:   true,
	}
	if email != "" {
		u.Email = &email
	}
	return u
}

func TestEnviarNotificacionFanOut(t *testing.T) {
	repo := newStubNoticiaRepo()
	usuarios := &stubUsuarioRepo{}
	disp := &stubDispatcher{}
	svc := NewNoticiaService(repo, usuarios, disp)

	ctx := context.Background()
	require.NoError(t, usuarios.Create(ctx, usuarioActivo(model.RolEstudiante, "a@edu.gt")))
	require.NoError(t, usuarios.Create(ctx, usuarioActivo(model.RolEstudiante, "b@edu.gt")))
	require.NoError(t, usuarios.Create(ctx, usuarioActivo(model.RolMaestro, "m@edu.gt")))
	// Sin email: contado como descartado, sin fila de notificación
	require.NoError(t, usuarios.Create(ctx, usuarioActivo(model.RolEstudiante, "")))
	// Inactivo: fuera de la audiencia
	inactivo := usuarioActivo(model.RolEstudiante, "baja@edu.gt")
	inactivo.Activo = false
	require.NoError(t, usuarios.Create(ctx, inactivo))

	resp, err := svc.EnviarNotificacion(ctx, uuid.New(), dto.EnviarNotificacionRequest{
		Audiencia: model.AudienciaEstudiantes,
		Mensaje:   "Reunión de padres el viernes",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Creadas)
	assert.Equal(t, 2, resp.Encoladas)
	assert.Equal(t, 1, resp.Descartadas)
	assert.Len(t, repo.notificaciones, 2)
	assert.Len(t, disp.encoladas, 2)

	for _, n := range repo.notificaciones {
		assert.Equal(t, model.NotificacionPendiente, n.Estado)
		assert.Equal(t, "Reunión de padres el viernes", n.Mensaje)
	}
}

// When the queue is down the row still exists, scheduled for the retry cron.
func TestEnviarNotificacionEncoladoFallido(t *testing.T) {
	repo := newStubNoticiaRepo()
	usuarios := &stubUsuarioRepo{}
	disp := &stubDispatcher{failN: 1}
	svc := NewNoticiaService(repo, usuarios, disp)

	ctx := context.Background()
	require.NoError(t, usuarios.Create(ctx, usuarioActivo(model.RolMaestro, "m@edu.gt")))

	resp, err := svc.EnviarNotificacion(ctx, uuid.New(), dto.EnviarNotificacionRequest{
		Audiencia: model.AudienciaMaestros,
		Mensaje:   "Entrega de notas",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Creadas)
	assert.Equal(t, 0, resp.Encoladas)
	require.Len(t, repo.notificaciones, 1)
	for _, n := range repo.notificaciones {
		require.NotNil(t, n.NextRetryAt, "queda agendada para el retry cron")
		assert.Equal(t, model.NotificacionPendiente, n.Estado)
	}

	pendientes, err := repo.ListPendingRetries(ctx, time.Now().Add(2*time.Minute), 10)
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)
}

func TestEnviarNotificacionAudienciaInvalida(t *testing.T) {
	svc := NewNoticiaService(newStubNoticiaRepo(), &stubUsuarioRepo{}, &stubDispatcher{})

	_, err := svc.EnviarNotificacion(context.Background(), uuid.New(), dto.EnviarNotificacionRequest{
		Audiencia: "PROFESORES",
		Mensaje:   "x",
	})
	assert.Error(t, err)
}
