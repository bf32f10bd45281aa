// AngelaMos | 2026
// dto.go

package image

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

// CreateImageRequest is read from the multipart form fields.
type CreateImageRequest struct {
	Name        string  `validate:"required,min=1,max=100"`
	Description *string `validate:"omitempty,max=500"`
	URL         *string `validate:"omitempty,url,max=2048"`
	AlbumID     int64   `validate:"required,gt=0"`
}

type UpdateImageRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	URL         *string `json:"url,omitempty"         validate:"omitempty,url,max=2048"`
}

type ImageResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	PathImage   string            `json:"path_image"`
	Description *string           `json:"description,omitempty"`
	URL         *string           `json:"url,omitempty"`
	Album       core.AlbumSummary `json:"album"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func ToImageResponse(i *Image) ImageResponse {
	return ImageResponse{
		ID:          i.ID,
		Name:        i.Name,
		PathImage:   i.PathImage,
		Description: i.Description,
		URL:         i.URL,
		Album:       i.Album,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func ToImageResponseList(images []Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, ToImageResponse(&images[i]))
	}
	return out
}
