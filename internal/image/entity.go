// AngelaMos | 2026
// entity.go

package image

import (
	"io"
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Image struct {
	ID          int64             `db:"id"`
	Name        string            `db:"name"`
	PathImage   string            `db:"path_image"`
	Description *string           `db:"description"`
	URL         *string           `db:"url"`
	AlbumID     int64             `db:"id_album"`
	Album       core.AlbumSummary `db:"album"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

// Upload is the binary part of a create request.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
