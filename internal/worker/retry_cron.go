package worker

// retry_cron.go
// Background goroutine that periodically re-attempts SMTP delivery for
// notificaciones stuck in estado='pendiente' with a next_retry_at in the past.
// Uses the Circuit Breaker to avoid hammering a downed relay.

import (
	"context"
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/infra"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	NoticiaRepo repository.NoticiaRepository
	Mailer      Mailer
	CB          *infra.CircuitBreaker
	RDB         *redis.Client
}

// StartRetryCron launches a background goroutine that ticks every 30s,
// queries due notificaciones, and re-attempts delivery through the CB.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open, skip entirely — don't hammer a downed relay
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	pendientes, err := cfg.NoticiaRepo.ListPendingRetries(ctx, time.Now(), retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending retries")
		return
	}
	if len(pendientes) == 0 {
		return
	}

	log.Info().Int("count", len(pendientes)).Msg("retry_cron: processing pending notificaciones")

	for i := range pendientes {
		// Check CB state before each send — it may have tripped mid-batch
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}
		deliverNotificacion(ctx, cfg.NoticiaRepo, cfg.Mailer, cfg.CB, cfg.RDB, &pendientes[i])
	}
}
