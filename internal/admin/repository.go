// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type ContentCounter interface {
	Count(ctx context.Context) (*ContentStats, error)
}

type ContentStats struct {
	Users       int64 `db:"users"       json:"users"`
	Albums      int64 `db:"albums"      json:"albums"`
	Categories  int64 `db:"categories"  json:"categories"`
	Images      int64 `db:"images"      json:"images"`
	Tierlists   int64 `db:"tierlists"   json:"tierlists"`
	Tournaments int64 `db:"tournaments" json:"tournaments"`
	Rankings    int64 `db:"rankings"    json:"rankings"`
	Revocations int64 `db:"revocations" json:"revocations"`
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) ContentCounter {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (*ContentStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)       AS users,
			(SELECT COUNT(*) FROM albums)      AS albums,
			(SELECT COUNT(*) FROM categories)  AS categories,
			(SELECT COUNT(*) FROM images)      AS images,
			(SELECT COUNT(*) FROM tierlists)   AS tierlists,
			(SELECT COUNT(*) FROM tournaments) AS tournaments,
			(SELECT COUNT(*) FROM rankings)    AS rankings,
			(SELECT COUNT(*) FROM revocations) AS revocations`

	var stats ContentStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("count content: %w", err)
	}

	return &stats, nil
}
