// AngelaMos | 2026
// entity.go

package tournament

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Tournament struct {
	ID          int64             `db:"id"`
	Name        string            `db:"name"`
	Description *string           `db:"description"`
	Turn        int               `db:"turn"`
	Private     bool              `db:"private"`
	AlbumID     int64             `db:"id_album"`
	UserID      int64             `db:"id_user"`
	Album       core.AlbumSummary `db:"album"`
	Author      core.UserSummary  `db:"author"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
	Images      []Image           `db:"-"`
}

// Image is one album image entered in a tournament.
type Image struct {
	ID           int64             `db:"id"`
	Lose         bool              `db:"lose"`
	Place        int               `db:"place"`
	Turn         int               `db:"turn"`
	Disable      bool              `db:"disable"`
	ImageID      int64             `db:"id_image"`
	TournamentID int64             `db:"id_tournament"`
	Image        core.ImageSummary `db:"image"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
	Oponents     []Oponent         `db:"-"`
}

// Oponent pairs two tournament images. Both sides belong to the same
// tournament and never point at each other's own row.
type Oponent struct {
	ID                int64     `db:"id"`
	TournamentImageID int64     `db:"id_tournament_image"`
	OponentID         int64     `db:"id_oponent"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
