// AngelaMos | 2026
// entity.go

package ranking

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Ranking struct {
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
	Images      []Image           `db:"-"`
}

// Image is an album image scored inside a ranking.
type Image struct {
	ID        int64             `db:"id"`
	Points    int               `db:"points"`
	Viewed    int               `db:"viewed"`
	Disable   bool              `db:"disable"`
	ImageID   int64             `db:"id_image"`
	RankingID int64             `db:"id_ranking"`
	Image     core.ImageSummary `db:"image"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}
