// AngelaMos | 2026
// repository.go

package tierlist

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Tierlist, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]Tierlist, error)
	GetByID(ctx context.Context, id int64) (*Tierlist, error)
	Create(ctx context.Context, t *Tierlist) error
	Update(ctx context.Context, t *Tierlist) error
	Delete(ctx context.Context, id int64) error

	ListLines(ctx context.Context) ([]Line, error)
	LinesFor(ctx context.Context, tierlistIDs []int64) ([]Line, error)
	GetLine(ctx context.Context, id int64) (*Line, error)
	CreateLine(ctx context.Context, l *Line) error
	UpdateLine(ctx context.Context, l *Line) error
	DeleteLine(ctx context.Context, id int64) error

	ListLineImages(ctx context.Context) ([]LineImage, error)
	LineImagesFor(ctx context.Context, lineIDs []int64) ([]LineImage, error)
	GetLineImage(ctx context.Context, id int64) (*LineImage, error)
	CreateLineImage(ctx context.Context, li *LineImage) error
	UpdateLineImage(ctx context.Context, li *LineImage) error
	DeleteLineImage(ctx context.Context, id int64) error

	Exists(ctx context.Context, table string, id int64) (bool, error)
}

const (
	tableAlbums    = "albums"
	tableImages    = "images"
	tableTierlists = "tierlists"
	tableLines     = "tierlist_lines"
)

const selectTierlists = `
	SELECT t.id, t.name, t.description, t.private, t.id_album, t.id_user,
	       t.created_at, t.updated_at,
	       a.id       AS "album.id",
	       a.name     AS "album.name",
	       a.status   AS "album.status",
	       u.id       AS "author.id",
	       u.username AS "author.username",
	       u.nametag  AS "author.nametag"
	FROM tierlists t
	JOIN albums a ON a.id = t.id_album
	JOIN users u ON u.id = t.id_user`

const selectLines = `
	SELECT id, label, placement, color, id_tierlist, created_at, updated_at
	FROM tierlist_lines`

const selectLineImages = `
	SELECT li.id, li.placement, li.disable, li.id_image, li.id_tierlist_line,
	       li.created_at, li.updated_at,
	       i.id          AS "image.id",
	       i.name        AS "image.name",
	       i.path_image  AS "image.path_image",
	       i.description AS "image.description",
	       i.url         AS "image.url"
	FROM tierlist_line_images li
	JOIN images i ON i.id = li.id_image`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Tierlist, error) {
	var out []Tierlist
	if err := r.db.SelectContext(ctx, &out, selectTierlists+` ORDER BY t.id`); err != nil {
		return nil, fmt.Errorf("list tierlists: %w", err)
	}
	return out, nil
}

func (r *repository) ListByAlbum(ctx context.Context, albumID int64) ([]Tierlist, error) {
	var out []Tierlist
	query := selectTierlists + ` WHERE t.id_album = $1 ORDER BY t.id`
	if err := r.db.SelectContext(ctx, &out, query, albumID); err != nil {
		return nil, fmt.Errorf("list album tierlists: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Tierlist, error) {
	var t Tierlist
	err := r.db.GetContext(ctx, &t, selectTierlists+` WHERE t.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get tierlist: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tierlist: %w", err)
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Tierlist) error {
	query := `
		INSERT INTO tierlists (name, description, private, id_album, id_user)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if err := r.db.GetContext(ctx, &t.ID, query,
		t.Name, t.Description, t.Private, t.AlbumID, t.UserID); err != nil {
		return fmt.Errorf("create tierlist: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, t *Tierlist) error {
	query := `
		UPDATE tierlists
		SET name = $2, description = $3, private = $4, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, t.ID, t.Name, t.Description, t.Private); err != nil {
		return fmt.Errorf("update tierlist: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM tierlists WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tierlist: %w", err)
	}
	return nil
}

func (r *repository) ListLines(ctx context.Context) ([]Line, error) {
	var out []Line
	if err := r.db.SelectContext(ctx, &out, selectLines+` ORDER BY id_tierlist, placement`); err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	return out, nil
}

func (r *repository) LinesFor(ctx context.Context, tierlistIDs []int64) ([]Line, error) {
	var out []Line
	query := selectLines + ` WHERE id_tierlist IN (?) ORDER BY placement, id`
	if err := core.SelectIn(ctx, r.db, &out, query, tierlistIDs); err != nil {
		return nil, fmt.Errorf("load lines: %w", err)
	}
	return out, nil
}

func (r *repository) GetLine(ctx context.Context, id int64) (*Line, error) {
	var l Line
	err := r.db.GetContext(ctx, &l, selectLines+` WHERE id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get line: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get line: %w", err)
	}
	return &l, nil
}

func (r *repository) CreateLine(ctx context.Context, l *Line) error {
	query := `
		INSERT INTO tierlist_lines (label, placement, color, id_tierlist)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := r.db.GetContext(ctx, &l.ID, query, l.Label, l.Placement, l.Color, l.TierlistID); err != nil {
		return fmt.Errorf("create line: %w", err)
	}
	return nil
}

func (r *repository) UpdateLine(ctx context.Context, l *Line) error {
	query := `
		UPDATE tierlist_lines
		SET label = $2, placement = $3, color = $4, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, l.ID, l.Label, l.Placement, l.Color); err != nil {
		return fmt.Errorf("update line: %w", err)
	}
	return nil
}

func (r *repository) DeleteLine(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM tierlist_lines WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete line: %w", err)
	}
	return nil
}

func (r *repository) ListLineImages(ctx context.Context) ([]LineImage, error) {
	var out []LineImage
	if err := r.db.SelectContext(ctx, &out, selectLineImages+` ORDER BY li.id`); err != nil {
		return nil, fmt.Errorf("list line images: %w", err)
	}
	return out, nil
}

func (r *repository) LineImagesFor(ctx context.Context, lineIDs []int64) ([]LineImage, error) {
	var out []LineImage
	query := selectLineImages + ` WHERE li.id_tierlist_line IN (?) ORDER BY li.placement, li.id`
	if err := core.SelectIn(ctx, r.db, &out, query, lineIDs); err != nil {
		return nil, fmt.Errorf("load line images: %w", err)
	}
	return out, nil
}

func (r *repository) GetLineImage(ctx context.Context, id int64) (*LineImage, error) {
	var li LineImage
	err := r.db.GetContext(ctx, &li, selectLineImages+` WHERE li.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get line image: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get line image: %w", err)
	}
	return &li, nil
}

func (r *repository) CreateLineImage(ctx context.Context, li *LineImage) error {
	query := `
		INSERT INTO tierlist_line_images (placement, disable, id_image, id_tierlist_line)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := r.db.GetContext(ctx, &li.ID, query,
		li.Placement, li.Disable, li.ImageID, li.LineID); err != nil {
		return fmt.Errorf("create line image: %w", err)
	}
	return nil
}

func (r *repository) UpdateLineImage(ctx context.Context, li *LineImage) error {
	query := `
		UPDATE tierlist_line_images
		SET placement = $2, disable = $3, id_tierlist_line = $4, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, li.ID, li.Placement, li.Disable, li.LineID); err != nil {
		return fmt.Errorf("update line image: %w", err)
	}
	return nil
}

func (r *repository) DeleteLineImage(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM tierlist_line_images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete line image: %w", err)
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, table string, id int64) (bool, error) {
	return core.Exists(ctx, r.db, table, id)
}
