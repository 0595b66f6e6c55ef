package worker

// notificacion_worker.go
// Processes notification delivery jobs from QueueNotificaciones.
// Sends the email through the SMTP circuit breaker and records the outcome
// on the notificacion row; failures are scheduled for the retry cron.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/infra"
	"github.com/WilliamCuc/PG2-Edutech/internal/model"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxNotificacionRetries is the attempt ceiling before a notification is
// marked error and parked in the DLQ.
const MaxNotificacionRetries = 5

const asuntoNotificacion = "Aviso del portal escolar"

// Mailer is the slice of infra.Mailer the workers need.
type Mailer interface {
	SendAviso(to, subject, body string) error
}

// NotificacionWorker delivers one notification email per job.
type NotificacionWorker struct {
	repo   repository.NoticiaRepository
	mailer Mailer
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
}

func NewNotificacionWorker(repo repository.NoticiaRepository, mailer Mailer, cb *infra.CircuitBreaker, rdb *redis.Client) *NotificacionWorker {
	return &NotificacionWorker{repo: repo, mailer: mailer, cb: cb, rdb: rdb}
}

func (w *NotificacionWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload NotificacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return
	}
	id, err := uuid.Parse(payload.NotificacionID)
	if err != nil {
		log.Error().Str("notificacion_id", payload.NotificacionID).Msg("notificacion_worker: invalid id")
		return
	}

	n, err := w.repo.FindNotificacionByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("notificacion_id", payload.NotificacionID).Msg("notificacion_worker: row not found")
		return
	}
	// The row is the source of truth — a duplicate or stale queue entry for an
	// already-sent notification is a no-op.
	if n.Estado != model.NotificacionPendiente {
		return
	}

	deliverNotificacion(ctx, w.repo, w.mailer, w.cb, w.rdb, n)
}

// deliverNotificacion attempts one SMTP send through the circuit breaker and
// persists the outcome. Shared by the pool worker and the retry cron.
func deliverNotificacion(
	ctx context.Context,
	repo repository.NoticiaRepository,
	mailer Mailer,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
	n *model.Notificacion,
) {
	sendErr := cb.Execute(func() error {
		return mailer.SendAviso(n.Destinatario, asuntoNotificacion, n.Mensaje)
	})

	if sendErr == nil {
		now := time.Now()
		n.Estado = model.NotificacionEnviada
		n.FechaEnvio = &now
		n.NextRetryAt = nil
		n.LastError = nil
		if err := repo.UpdateNotificacion(ctx, n); err != nil {
			log.Error().Err(err).Str("notificacion_id", n.ID.String()).Msg("notificacion_worker: failed to mark enviada")
		}
		log.Info().Str("to", n.Destinatario).Msg("notificacion_worker: aviso sent")
		return
	}

	n.RetryCount++
	errMsg := sendErr.Error()
	n.LastError = &errMsg

	if n.RetryCount >= MaxNotificacionRetries {
		n.Estado = model.NotificacionError
		n.NextRetryAt = nil
		log.Error().
			Str("notificacion_id", n.ID.String()).
			Int("retries", n.RetryCount).
			Msg("notificacion_worker: max retries exceeded, moving to error/DLQ")

		payload := fmt.Sprintf(`{"notificacion_id":"%s","destinatario":"%s"}`, n.ID, n.Destinatario)
		SendToDLQ(ctx, rdb, QueueNotificaciones, "notificacion", []byte(payload),
			fmt.Sprintf("max retries (%d) exceeded: %s", MaxNotificacionRetries, errMsg),
			n.RetryCount)
	} else {
		nextRetry := time.Now().Add(computeRetryBackoff(n.RetryCount))
		n.NextRetryAt = &nextRetry
		log.Warn().
			Str("notificacion_id", n.ID.String()).
			Int("retry_count", n.RetryCount).
			Time("next_retry_at", nextRetry).
			Msg("notificacion_worker: send failed, scheduled next attempt")
	}

	if err := repo.UpdateNotificacion(ctx, n); err != nil {
		log.Error().Err(err).Str("notificacion_id", n.ID.String()).Msg("notificacion_worker: failed to persist retry state")
	}
}

// computeRetryBackoff returns the delay before the next attempt:
// 1m, 2m, 4m, 8m … capped at 30m.
func computeRetryBackoff(retryCount int) time.Duration {
	if retryCount < 1 {
		retryCount = 1
	}
	backoff := time.Minute * time.Duration(1<<uint(retryCount-1))
	if backoff > 30*time.Minute {
		backoff = 30 * time.Minute
	}
	return backoff
}
