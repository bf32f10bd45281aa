// AngelaMos | 2026
// repository.go

package category

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
	AlbumsFor(ctx context.Context, categoryIDs []int64) (map[int64][]core.AlbumSummary, error)
	AlbumExists(ctx context.Context, albumID int64) (bool, error)
	Attach(ctx context.Context, albumID, categoryID int64) error
	Detach(ctx context.Context, albumID, categoryID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, `SELECT id, name FROM categories ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Category, error) {
	return r.getOne(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
}

func (r *repository) GetByName(ctx context.Context, name string) (*Category, error) {
	return r.getOne(ctx, `SELECT id, name FROM categories WHERE name = $1`, name)
}

func (r *repository) getOne(ctx context.Context, query string, arg any) (*Category, error) {
	var c Category
	err := r.db.GetContext(ctx, &c, query, arg)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	err := r.db.GetContext(ctx, &c.ID, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, c *Category) error {
	err := core.ExecOne(ctx, r.db, `UPDATE categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("update category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *repository) AlbumsFor(
	ctx context.Context,
	categoryIDs []int64,
) (map[int64][]core.AlbumSummary, error) {
	query := `
		SELECT ac.id_category, a.id, a.name, a.status
		FROM album_categories ac
		JOIN albums a ON a.id = ac.id_album
		WHERE ac.id_category IN (?)
		ORDER BY a.id`

	var rows []categoryAlbum
	if err := core.SelectIn(ctx, r.db, &rows, query, categoryIDs); err != nil {
		return nil, fmt.Errorf("load category albums: %w", err)
	}

	out := make(map[int64][]core.AlbumSummary, len(categoryIDs))
	for _, row := range rows {
		out[row.CategoryID] = append(out[row.CategoryID], row.AlbumSummary)
	}
	return out, nil
}

func (r *repository) AlbumExists(ctx context.Context, albumID int64) (bool, error) {
	return core.Exists(ctx, r.db, "albums", albumID)
}

func (r *repository) Attach(ctx context.Context, albumID, categoryID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO album_categories (id_album, id_category) VALUES ($1, $2)`,
		albumID, categoryID)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("attach category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("attach category: %w", err)
	}
	return nil
}

func (r *repository) Detach(ctx context.Context, albumID, categoryID int64) error {
	err := core.ExecOne(ctx, r.db,
		`DELETE FROM album_categories WHERE id_album = $1 AND id_category = $2`,
		albumID, categoryID)
	if err != nil {
		return fmt.Errorf("detach category: %w", err)
	}
	return nil
}
