// AngelaMos | 2026
// repository.go

package image

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Image, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]Image, error)
	GetByID(ctx context.Context, id int64) (*Image, error)
	Create(ctx context.Context, img *Image) error
	Update(ctx context.Context, img *Image) error
	Delete(ctx context.Context, id int64) error
	AlbumExists(ctx context.Context, albumID int64) (bool, error)
}

const selectImages = `
	SELECT i.id, i.name, i.path_image, i.description, i.url, i.id_album,
	       i.created_at, i.updated_at,
	       a.id     AS "album.id",
	       a.name   AS "album.name",
	       a.status AS "album.status"
	FROM images i
	JOIN albums a ON a.id = i.id_album`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Image, error) {
	var images []Image
	if err := r.db.SelectContext(ctx, &images, selectImages+` ORDER BY i.id`); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (r *repository) ListByAlbum(ctx context.Context, albumID int64) ([]Image, error) {
	var images []Image
	query := selectImages + ` WHERE i.id_album = $1 ORDER BY i.id`
	if err := r.db.SelectContext(ctx, &images, query, albumID); err != nil {
		return nil, fmt.Errorf("list album images: %w", err)
	}
	return images, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, selectImages+` WHERE i.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get image: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO images (name, path_image, description, url, id_album)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.GetContext(ctx, &img.ID, query,
		img.Name, img.PathImage, img.Description, img.URL, img.AlbumID)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, img *Image) error {
	query := `
		UPDATE images
		SET name = $2, description = $3, url = $4, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, img.ID, img.Name, img.Description, img.URL); err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

func (r *repository) AlbumExists(ctx context.Context, albumID int64) (bool, error) {
	return core.Exists(ctx, r.db, "albums", albumID)
}
