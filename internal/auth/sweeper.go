// AngelaMos | 2026
// sweeper.go

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/observability"
)

// Sweeper prunes revocation rows older than the retention window. Tokens
// issued before that point have expired on their own.
type Sweeper struct {
	repo      Repository
	interval  time.Duration
	retention time.Duration
	metrics   *observability.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewSweeper(
	repo Repository,
	cfg config.RevocationConfig,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Sweeper {
	return &Sweeper{
		repo:      repo,
		interval:  cfg.SweepInterval,
		retention: cfg.Retention,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweepAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

func (s *Sweeper) sweepAndLog(ctx context.Context) {
	n, err := s.Sweep(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.ErrorContext(ctx, "revocation sweep failed", "error", err)
		}
		return
	}

	if n > 0 {
		s.logger.InfoContext(ctx, "revocations pruned", "count", n)
	}
}

func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteOlderThan(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.RevocationsPruned.Add(float64(n))
	}

	return n, nil
}
