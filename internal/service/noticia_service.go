package service

import (
	"context"
	"errors"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/dto"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// NotificacionDispatcher pushes a notificacion onto the delivery queue.
// Implemented by the worker package; kept as an interface so the service
// layer stays testable without Redis.
type NotificacionDispatcher interface {
	EnqueueNotificacion(ctx context.Context, notificacionID uuid.UUID) error
}

type NoticiaService interface {
	Crear(ctx context.Context, autorID uuid.UUID, req dto.NoticiaRequest) (*dto.NoticiaResponse, error)
	Listar(ctx context.Context) ([]dto.NoticiaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.NoticiaRequest) (*dto.NoticiaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// EnviarNotificacion fans an admin broadcast out to every active user in
	// the audience: one Notificacion row per recipient, delivered async by
	// the email worker.
	EnviarNotificacion(ctx context.Context, autorID uuid.UUID, req dto.EnviarNotificacionRequest) (*dto.EnvioNotificacionResponse, error)
}

type noticiaService struct {
	repo        repository.NoticiaRepository
	usuarioRepo repository.UsuarioRepository
	dispatcher  NotificacionDispatcher
}

func NewNoticiaService(
	repo repository.NoticiaRepository,
	usuarioRepo repository.UsuarioRepository,
	dispatcher NotificacionDispatcher,
) NoticiaService {
	return &noticiaService{repo: repo, usuarioRepo: usuarioRepo, dispatcher: dispatcher}
}

func (s *noticiaService) Crear(ctx context.Context, autorID uuid.UUID, req dto.NoticiaRequest) (*dto.NoticiaResponse, error) {
	n := &model.Noticia{
		Titulo:           req.Titulo,
		Contenido:        req.Contenido,
		AutorID:          &autorID,
		Publicado:        true,
		FechaPublicacion: time.Now(),
	}
	if req.Publicado != nil {
		n.Publicado = *req.Publicado
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return noticiaToResponse(n), nil
}

func (s *noticiaService) Listar(ctx context.Context) ([]dto.NoticiaResponse, error) {
	noticias, err := s.repo.ListPublicadas(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NoticiaResponse, len(noticias))
	for i := range noticias {
		resp[i] = *noticiaToResponse(&noticias[i])
	}
	return resp, nil
}

func (s *noticiaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.NoticiaRequest) (*dto.NoticiaResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("noticia no encontrada")
	}
	n.Titulo = req.Titulo
	n.Contenido = req.Contenido
	if req.Publicado != nil {
		n.Publicado = *req.Publicado
	}
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return noticiaToResponse(n), nil
}

func (s *noticiaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *noticiaService) EnviarNotificacion(ctx context.Context, autorID uuid.UUID, req dto.EnviarNotificacionRequest) (*dto.EnvioNotificacionResponse, error) {
	roles, err := rolesParaAudiencia(req.Audiencia)
	if err != nil {
		return nil, err
	}
	usuarios, err := s.usuarioRepo.ListActivosByRoles(ctx, roles...)
	if err != nil {
		return nil, err
	}

	creadas, encoladas := 0, 0
	for i := range usuarios {
		if usuarios[i].Email == nil || *usuarios[i].Email == "" {
			continue
		}
		n := &model.Notificacion{
			AutorID:      &autorID,
			Audiencia:    req.Audiencia,
			Destinatario: *usuarios[i].Email,
			Mensaje:      req.Mensaje,
			Estado:       model.NotificacionPendiente,
		}
		if err := s.repo.CreateNotificacion(ctx, n); err != nil {
			return nil, err
		}
		creadas++
		// Enqueue failures are not fatal: the retry cron picks up pendiente
		// rows with a due next_retry_at.
		if err := s.dispatcher.EnqueueNotificacion(ctx, n.ID); err != nil {
			log.Warn().Err(err).Str("notificacion_id", n.ID.String()).
				Msg("no se pudo encolar la notificación, quedará para el retry cron")
			retryAt := time.Now().Add(time.Minute)
			n.NextRetryAt = &retryAt
			if err := s.repo.UpdateNotificacion(ctx, n); err != nil {
				return nil, err
			}
			continue
		}
		encoladas++
	}

	return &dto.EnvioNotificacionResponse{
		Audiencia:   req.Audiencia,
		Creadas:     creadas,
		Encoladas:   encoladas,
		Descartadas: len(usuarios) - creadas,
	}, nil
}

func rolesParaAudiencia(audiencia string) ([]string, error) {
	switch audiencia {
	case model.AudienciaTodos:
		return []string{model.RolEstudiante, model.RolMaestro, model.RolPadre,
			model.RolCajero, model.RolAdministrador}, nil
	case model.AudienciaEstudiantes:
		return []string{model.RolEstudiante}, nil
	case model.AudienciaMaestros:
		return []string{model.RolMaestro}, nil
	case model.AudienciaPadres:
		return []string{model.RolPadre}, nil
	default:
		return nil, errors.New("audiencia inválida: use TODOS, ESTUDIANTES, MAESTROS o PADRES")
	}
}

func noticiaToResponse(n *model.Noticia) *dto.NoticiaResponse {
	resp := &dto.NoticiaResponse{
		ID:               n.ID.String(),
		Titulo:           n.Titulo,
		Contenido:        n.Contenido,
		Publicado:        n.Publicado,
		FechaPublicacion: n.FechaPublicacion.Format(time.RFC3339),
	}
	if n.Autor != nil {
		autor := n.Autor.Nombre + " " + n.Autor.Apellido
		resp.Autor = &autor
	}
	return resp
}
