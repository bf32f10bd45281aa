// AngelaMos | 2026
// repository.go

package ranking

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Ranking, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]Ranking, error)
	GetByID(ctx context.Context, id int64) (*Ranking, error)
	Create(ctx context.Context, rk *Ranking) error
	Update(ctx context.Context, rk *Ranking) error
	Delete(ctx context.Context, id int64) error

	ListImages(ctx context.Context) ([]Image, error)
	ImagesFor(ctx context.Context, rankingIDs []int64) ([]Image, error)
	GetImage(ctx context.Context, id int64) (*Image, error)
	CreateImage(ctx context.Context, img *Image) error
	UpdateImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, id int64) error

	Exists(ctx context.Context, table string, id int64) (bool, error)
}

const (
	tableAlbums   = "albums"
	tableImages   = "images"
	tableRankings = "rankings"
)

const selectRankings = `
	SELECT rk.id, rk.name, rk.description, rk.private, rk.id_album, rk.id_user,
	       rk.created_at, rk.updated_at,
	       a.id       AS "album.id",
	       a.name     AS "album.name",
	       a.status   AS "album.status",
	       u.id       AS "author.id",
	       u.username AS "author.username",
	       u.nametag  AS "author.nametag"
	FROM rankings rk
	JOIN albums a ON a.id = rk.id_album
	JOIN users u ON u.id = rk.id_user`

const selectImages = `
	SELECT ri.id, ri.points, ri.viewed, ri.disable, ri.id_image, ri.id_ranking,
	       ri.created_at, ri.updated_at,
	       i.id          AS "image.id",
	       i.name        AS "image.name",
	       i.path_image  AS "image.path_image",
	       i.description AS "image.description",
	       i.url         AS "image.url"
	FROM ranking_images ri
	JOIN images i ON i.id = ri.id_image`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Ranking, error) {
	var out []Ranking
	if err := r.db.SelectContext(ctx, &out, selectRankings+` ORDER BY rk.id`); err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}
	return out, nil
}

func (r *repository) ListByAlbum(ctx context.Context, albumID int64) ([]Ranking, error) {
	var out []Ranking
	query := selectRankings + ` WHERE rk.id_album = $1 ORDER BY rk.id`
	if err := r.db.SelectContext(ctx, &out, query, albumID); err != nil {
		return nil, fmt.Errorf("list album rankings: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Ranking, error) {
	var rk Ranking
	err := r.db.GetContext(ctx, &rk, selectRankings+` WHERE rk.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get ranking: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get ranking: %w", err)
	}
	return &rk, nil
}

func (r *repository) Create(ctx context.Context, rk *Ranking) error {
	query := `
		INSERT INTO rankings (name, description, private, id_album, id_user)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if err := r.db.GetContext(ctx, &rk.ID, query,
		rk.Name, rk.Description, rk.Private, rk.AlbumID, rk.UserID); err != nil {
		return fmt.Errorf("create ranking: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, rk *Ranking) error {
	query := `
		UPDATE rankings
		SET name = $2, description = $3, private = $4, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, rk.ID, rk.Name, rk.Description, rk.Private); err != nil {
		return fmt.Errorf("update ranking: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM rankings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ranking: %w", err)
	}
	return nil
}

func (r *repository) ListImages(ctx context.Context) ([]Image, error) {
	var out []Image
	if err := r.db.SelectContext(ctx, &out, selectImages+` ORDER BY ri.id`); err != nil {
		return nil, fmt.Errorf("list ranking images: %w", err)
	}
	return out, nil
}

// ImagesFor orders each ranking's images by score, best first.
func (r *repository) ImagesFor(ctx context.Context, rankingIDs []int64) ([]Image, error) {
	var out []Image
	query := selectImages + ` WHERE ri.id_ranking IN (?) ORDER BY ri.points DESC, ri.id`
	if err := core.SelectIn(ctx, r.db, &out, query, rankingIDs); err != nil {
		return nil, fmt.Errorf("load ranking images: %w", err)
	}
	return out, nil
}

func (r *repository) GetImage(ctx context.Context, id int64) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, selectImages+` WHERE ri.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get ranking image: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get ranking image: %w", err)
	}
	return &img, nil
}

func (r *repository) CreateImage(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO ranking_images (points, viewed, disable, id_image, id_ranking)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if err := r.db.GetContext(ctx, &img.ID, query,
		img.Points, img.Viewed, img.Disable, img.ImageID, img.RankingID); err != nil {
		return fmt.Errorf("create ranking image: %w", err)
	}
	return nil
}

func (r *repository) UpdateImage(ctx context.Context, img *Image) error {
	query := `
		UPDATE ranking_images
		SET points = $2, viewed = $3, disable = $4, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, img.ID, img.Points, img.Viewed, img.Disable); err != nil {
		return fmt.Errorf("update ranking image: %w", err)
	}
	return nil
}

func (r *repository) DeleteImage(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM ranking_images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ranking image: %w", err)
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, table string, id int64) (bool, error) {
	return core.Exists(ctx, r.db, table, id)
}
