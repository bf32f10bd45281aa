// AngelaMos | 2026
// entity.go

package album

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

const (
	StatusPrivate     = "private"
	StatusPublic      = "public"
	StatusDeactivated = "deactivated"
)

type Album struct {
	ID         int64                  `db:"id"`
	Name       string                 `db:"name"`
	Status     string                 `db:"status"`
	UserID     int64                  `db:"id_user"`
	Author     core.UserSummary       `db:"author"`
	CreatedAt  time.Time              `db:"created_at"`
	UpdatedAt  time.Time              `db:"updated_at"`
	Categories []core.CategorySummary `db:"-"`
	Images     []core.ImageSummary    `db:"-"`
}

type albumCategory struct {
	AlbumID int64 `db:"id_album"`
	core.CategorySummary
}

type albumImage struct {
	AlbumID int64 `db:"id_album"`
	core.ImageSummary
}
