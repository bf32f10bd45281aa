// AngelaMos | 2026
// revocation.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/observability"
)

const (
	revocationCacheTTL = 7 * 24 * time.Hour
	// a user with no revocation is cached briefly so a write on another
	// instance is picked up quickly even if its cache update failed
	revocationMissTTL = time.Minute
	noRevocation      = "0"
)

// Revocations answers "when was this user last revoked", reading through a
// redis cache and falling back to the database when redis is unavailable.
type Revocations struct {
	repo    Repository
	redis   *redis.Client
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewRevocations(
	repo Repository,
	redisClient *redis.Client,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Revocations {
	if logger == nil {
		logger = slog.Default()
	}
	return &Revocations{
		repo:    repo,
		redis:   redisClient,
		metrics: metrics,
		logger:  logger,
	}
}

// Record appends a revocation row. Rows are never deduplicated.
func (r *Revocations) Record(ctx context.Context, userID int64, at time.Time) error {
	at = at.Truncate(time.Microsecond)

	if err := r.repo.Create(ctx, userID, at); err != nil {
		return err
	}

	if r.metrics != nil {
		r.metrics.RevocationsCreated.Inc()
	}

	if r.redis != nil {
		key := revocationKey(userID)
		value := strconv.FormatInt(at.UnixMicro(), 10)
		if err := r.redis.Set(ctx, key, value, revocationCacheTTL).Err(); err != nil {
			r.logger.WarnContext(ctx, "revocation cache write failed",
				"user_id", userID,
				"error", err,
			)
			//nolint:errcheck // a failed delete leaves at most a short-lived miss entry
			_ = r.redis.Del(ctx, key).Err()
		}
	}

	return nil
}

// Latest returns the most recent revocation time for userID and whether one
// exists.
func (r *Revocations) Latest(ctx context.Context, userID int64) (time.Time, bool, error) {
	if r.redis != nil {
		if at, ok, hit := r.cached(ctx, userID); hit {
			return at, ok, nil
		}
	}

	latest, err := r.repo.LatestForUser(ctx, userID)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load revocation: %w", err)
	}

	if r.redis != nil {
		value, ttl := noRevocation, revocationMissTTL
		if latest != nil {
			value, ttl = strconv.FormatInt(latest.UnixMicro(), 10), revocationCacheTTL
		}
		//nolint:errcheck // cache fill is best-effort
		_ = r.redis.Set(ctx, revocationKey(userID), value, ttl).Err()
	}

	if latest == nil {
		return time.Time{}, false, nil
	}
	return *latest, true, nil
}

func (r *Revocations) cached(ctx context.Context, userID int64) (time.Time, bool, bool) {
	value, err := r.redis.Get(ctx, revocationKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "revocation cache read failed",
				"user_id", userID,
				"error", err,
			)
		}
		return time.Time{}, false, false
	}

	if value == noRevocation {
		return time.Time{}, false, true
	}

	us, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, false, false
	}

	return time.UnixMicro(us), true, true
}

func revocationKey(userID int64) string {
	return core.RedisKey("revocation", strconv.FormatInt(userID, 10))
}

// IsRevoked reports whether a token issued at issuedAt predates the latest
// revocation for userID.
func IsRevoked(latest time.Time, found bool, issuedAt time.Time) bool {
	return found && latest.After(issuedAt)
}
