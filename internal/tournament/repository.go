// AngelaMos | 2026
// repository.go

package tournament

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]Tournament, error)
	GetByID(ctx context.Context, id int64) (*Tournament, error)
	Create(ctx context.Context, t *Tournament) error
	Update(ctx context.Context, t *Tournament) error
	Delete(ctx context.Context, id int64) error

	ListImages(ctx context.Context) ([]Image, error)
	ImagesFor(ctx context.Context, tournamentIDs []int64) ([]Image, error)
	GetImage(ctx context.Context, id int64) (*Image, error)
	CreateImage(ctx context.Context, img *Image) error
	UpdateImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, id int64) error

	ListOponents(ctx context.Context) ([]Oponent, error)
	OponentsFor(ctx context.Context, imageIDs []int64) ([]Oponent, error)
	GetOponent(ctx context.Context, id int64) (*Oponent, error)
	CreateOponent(ctx context.Context, o *Oponent) error
	UpdateOponent(ctx context.Context, o *Oponent) error
	DeleteOponent(ctx context.Context, id int64) error

	Exists(ctx context.Context, table string, id int64) (bool, error)
}

const (
	tableAlbums      = "albums"
	tableImages      = "images"
	tableTournaments = "tournaments"
)

const selectTournaments = `
	SELECT t.id, t.name, t.description, t.turn, t.private, t.id_album, t.id_user,
	       t.created_at, t.updated_at,
	       a.id       AS "album.id",
	       a.name     AS "album.name",
	       a.status   AS "album.status",
	       u.id       AS "author.id",
	       u.username AS "author.username",
	       u.nametag  AS "author.nametag"
	FROM tournaments t
	JOIN albums a ON a.id = t.id_album
	JOIN users u ON u.id = t.id_user`

const selectImages = `
	SELECT ti.id, ti.lose, ti.place, ti.turn, ti.disable, ti.id_image, ti.id_tournament,
	       ti.created_at, ti.updated_at,
	       i.id          AS "image.id",
	       i.name        AS "image.name",
	       i.path_image  AS "image.path_image",
	       i.description AS "image.description",
	       i.url         AS "image.url"
	FROM tournament_images ti
	JOIN images i ON i.id = ti.id_image`

const selectOponents = `
	SELECT id, id_tournament_image, id_oponent, created_at, updated_at
	FROM tournament_oponents`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Tournament, error) {
	var out []Tournament
	if err := r.db.SelectContext(ctx, &out, selectTournaments+` ORDER BY t.id`); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return out, nil
}

func (r *repository) ListByAlbum(ctx context.Context, albumID int64) ([]Tournament, error) {
	var out []Tournament
	query := selectTournaments + ` WHERE t.id_album = $1 ORDER BY t.id`
	if err := r.db.SelectContext(ctx, &out, query, albumID); err != nil {
		return nil, fmt.Errorf("list album tournaments: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Tournament, error) {
	var t Tournament
	err := r.db.GetContext(ctx, &t, selectTournaments+` WHERE t.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get tournament: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Tournament) error {
	query := `
		INSERT INTO tournaments (name, description, turn, private, id_album, id_user)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if err := r.db.GetContext(ctx, &t.ID, query,
		t.Name, t.Description, t.Turn, t.Private, t.AlbumID, t.UserID); err != nil {
		return fmt.Errorf("create tournament: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, t *Tournament) error {
	query := `
		UPDATE tournaments
		SET name = $2, description = $3, turn = $4, private = $5, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query,
		t.ID, t.Name, t.Description, t.Turn, t.Private); err != nil {
		return fmt.Errorf("update tournament: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM tournaments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return nil
}

func (r *repository) ListImages(ctx context.Context) ([]Image, error) {
	var out []Image
	if err := r.db.SelectContext(ctx, &out, selectImages+` ORDER BY ti.id`); err != nil {
		return nil, fmt.Errorf("list tournament images: %w", err)
	}
	return out, nil
}

func (r *repository) ImagesFor(ctx context.Context, tournamentIDs []int64) ([]Image, error) {
	var out []Image
	query := selectImages + ` WHERE ti.id_tournament IN (?) ORDER BY ti.place, ti.id`
	if err := core.SelectIn(ctx, r.db, &out, query, tournamentIDs); err != nil {
		return nil, fmt.Errorf("load tournament images: %w", err)
	}
	return out, nil
}

func (r *repository) GetImage(ctx context.Context, id int64) (*Image, error) {
	var img Image
	err := r.db.GetContext(ctx, &img, selectImages+` WHERE ti.id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get tournament image: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tournament image: %w", err)
	}
	return &img, nil
}

func (r *repository) CreateImage(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO tournament_images (lose, place, turn, disable, id_image, id_tournament)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if err := r.db.GetContext(ctx, &img.ID, query,
		img.Lose, img.Place, img.Turn, img.Disable, img.ImageID, img.TournamentID); err != nil {
		return fmt.Errorf("create tournament image: %w", err)
	}
	return nil
}

func (r *repository) UpdateImage(ctx context.Context, img *Image) error {
	query := `
		UPDATE tournament_images
		SET lose = $2, place = $3, turn = $4, disable = $5, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query,
		img.ID, img.Lose, img.Place, img.Turn, img.Disable); err != nil {
		return fmt.Errorf("update tournament image: %w", err)
	}
	return nil
}

func (r *repository) DeleteImage(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM tournament_images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tournament image: %w", err)
	}
	return nil
}

func (r *repository) ListOponents(ctx context.Context) ([]Oponent, error) {
	var out []Oponent
	if err := r.db.SelectContext(ctx, &out, selectOponents+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list oponents: %w", err)
	}
	return out, nil
}

func (r *repository) OponentsFor(ctx context.Context, imageIDs []int64) ([]Oponent, error) {
	var out []Oponent
	query := selectOponents + ` WHERE id_tournament_image IN (?) ORDER BY id`
	if err := core.SelectIn(ctx, r.db, &out, query, imageIDs); err != nil {
		return nil, fmt.Errorf("load oponents: %w", err)
	}
	return out, nil
}

func (r *repository) GetOponent(ctx context.Context, id int64) (*Oponent, error) {
	var o Oponent
	err := r.db.GetContext(ctx, &o, selectOponents+` WHERE id = $1`, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get oponent: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get oponent: %w", err)
	}
	return &o, nil
}

func (r *repository) CreateOponent(ctx context.Context, o *Oponent) error {
	query := `
		INSERT INTO tournament_oponents (id_tournament_image, id_oponent)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	if err := r.db.GetContext(ctx, o, query, o.TournamentImageID, o.OponentID); err != nil {
		return fmt.Errorf("create oponent: %w", err)
	}
	return nil
}

func (r *repository) UpdateOponent(ctx context.Context, o *Oponent) error {
	query := `
		UPDATE tournament_oponents
		SET id_oponent = $2, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, o.ID, o.OponentID); err != nil {
		return fmt.Errorf("update oponent: %w", err)
	}
	return nil
}

func (r *repository) DeleteOponent(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM tournament_oponents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete oponent: %w", err)
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, table string, id int64) (bool, error) {
	return core.Exists(ctx, r.db, table, id)
}
