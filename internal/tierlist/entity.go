// AngelaMos | 2026
// entity.go

package tierlist

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Tierlist struct {
	ID          int64             `db:"id"`
	Name        string            `db:"name"`
	Description *string           `db:"description"`
	Private     bool              `db:"private"`
	AlbumID     int64             `db:"id_album"`
	UserID      int64             `db:"id_user"`
	Album       core.AlbumSummary `db:"album"`
	Author      core.UserSummary  `db:"author"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
	Lines       []Line            `db:"-"`
}

// Line is a labelled, ordered row of a tierlist.
type Line struct {
	ID         int64       `db:"id"`
	Label      string      `db:"label"`
	Placement  int         `db:"placement"`
	Color      string      `db:"color"`
	TierlistID int64       `db:"id_tierlist"`
	CreatedAt  time.Time   `db:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at"`
	Images     []LineImage `db:"-"`
}

// LineImage places an album image on a line.
type LineImage struct {
	ID        int64             `db:"id"`
	Placement int               `db:"placement"`
	Disable   bool              `db:"disable"`
	ImageID   int64             `db:"id_image"`
	LineID    int64             `db:"id_tierlist_line"`
	Image     core.ImageSummary `db:"image"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}
