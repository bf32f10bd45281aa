// AngelaMos | 2026
// repository.go

package album

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Album, error)
	ListByUser(ctx context.Context, userID int64) ([]Album, error)
	GetByID(ctx context.Context, id int64) (*Album, error)
	Create(ctx context.Context, album *Album) error
	Update(ctx context.Context, album *Album) error
	Delete(ctx context.Context, id int64) error
	UserIDByNametag(ctx context.Context, nametag string) (int64, error)
	CategoriesFor(ctx context.Context, albumIDs []int64) (map[int64][]core.CategorySummary, error)
	ImagesFor(ctx context.Context, albumIDs []int64) (map[int64][]core.ImageSummary, error)
}

const selectAlbums = `
	SELECT a.id, a.name, a.status, a.id_user, a.created_at, a.updated_at,
	       u.id       AS "author.id",
	       u.username AS "author.username",
	       u.nametag  AS "author.nametag"
	FROM albums a
	JOIN users u ON u.id = a.id_user`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Album, error) {
	var albums []Album
	if err := r.db.SelectContext(ctx, &albums, selectAlbums+` ORDER BY a.id`); err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Album, error) {
	var albums []Album
	query := selectAlbums + ` WHERE a.id_user = $1 ORDER BY a.id`
	if err := r.db.SelectContext(ctx, &albums, query, userID); err != nil {
		return nil, fmt.Errorf("list user albums: %w", err)
	}
	return albums, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Album, error) {
	var album Album
	err := r.db.GetContext(ctx, &album, selectAlbums+` WHERE a.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get album: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	return &album, nil
}

func (r *repository) Create(ctx context.Context, album *Album) error {
	query := `
		INSERT INTO albums (name, status, id_user)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := r.db.GetContext(ctx, &album.ID, query, album.Name, album.Status, album.UserID); err != nil {
		return fmt.Errorf("create album: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, album *Album) error {
	query := `
		UPDATE albums
		SET name = $2, status = $3, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, album.ID, album.Name, album.Status); err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return nil
}

// Delete removes the album; images, tierlists, tournaments and rankings
// follow through ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM albums WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}

func (r *repository) UserIDByNametag(ctx context.Context, nametag string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT id FROM users WHERE nametag = $1`, nametag)
	if core.IsNoRows(err) {
		return 0, fmt.Errorf("find user: %w", core.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("find user: %w", err)
	}
	return id, nil
}

func (r *repository) CategoriesFor(
	ctx context.Context,
	albumIDs []int64,
) (map[int64][]core.CategorySummary, error) {
	query := `
		SELECT ac.id_album, c.id, c.name
		FROM album_categories ac
		JOIN categories c ON c.id = ac.id_category
		WHERE ac.id_album IN (?)
		ORDER BY c.name`

	var rows []albumCategory
	if err := core.SelectIn(ctx, r.db, &rows, query, albumIDs); err != nil {
		return nil, fmt.Errorf("load album categories: %w", err)
	}

	out := make(map[int64][]core.CategorySummary, len(albumIDs))
	for _, row := range rows {
		out[row.AlbumID] = append(out[row.AlbumID], row.CategorySummary)
	}
	return out, nil
}

func (r *repository) ImagesFor(
	ctx context.Context,
	albumIDs []int64,
) (map[int64][]core.ImageSummary, error) {
	query := `
		SELECT id_album, id, name, path_image, description, url
		FROM images
		WHERE id_album IN (?)
		ORDER BY id`

	var rows []albumImage
	if err := core.SelectIn(ctx, r.db, &rows, query, albumIDs); err != nil {
		return nil, fmt.Errorf("load album images: %w", err)
	}

	out := make(map[int64][]core.ImageSummary, len(albumIDs))
	for _, row := range rows {
		out[row.AlbumID] = append(out[row.AlbumID], row.ImageSummary)
	}
	return out, nil
}
