// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

// Repository persists revocation timestamps. Rows are append-only and
// pruned by the sweeper.
type Repository interface {
	Create(ctx context.Context, userID int64, revokedAt time.Time) error
	LatestForUser(ctx context.Context, userID int64) (*time.Time, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	userID int64,
	revokedAt time.Time,
) error {
	query := `
		INSERT INTO revocations (id_user, revoked_at)
		VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, userID, revokedAt); err != nil {
		return fmt.Errorf("create revocation: %w", err)
	}

	return nil
}

// LatestForUser returns nil when the user has never been revoked.
func (r *repository) LatestForUser(
	ctx context.Context,
	userID int64,
) (*time.Time, error) {
	query := `
		SELECT MAX(revoked_at)
		FROM revocations
		WHERE id_user = $1`

	var latest *time.Time
	if err := r.db.GetContext(ctx, &latest, query, userID); err != nil {
		return nil, fmt.Errorf("latest revocation: %w", err)
	}

	return latest, nil
}

func (r *repository) DeleteOlderThan(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	query := `
		DELETE FROM revocations
		WHERE revoked_at < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old revocations: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete old revocations: %w", err)
	}

	return rows, nil
}
