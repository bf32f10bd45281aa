// AngelaMos | 2026
// dto.go

package ranking

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type CreateRankingRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Private     bool    `json:"private"`
	AlbumID     int64   `json:"id_album"    validate:"required,gt=0"`
}

type UpdateRankingRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Private     *bool   `json:"private,omitempty"`
}

type CreateImageRequest struct {
	Points    int   `json:"points"     validate:"gte=0"`
	Viewed    int   `json:"viewed"     validate:"gte=0"`
	Disable   bool  `json:"disable"`
	ImageID   int64 `json:"id_image"   validate:"required,gt=0"`
	RankingID int64 `json:"id_ranking" validate:"required,gt=0"`
}

// UpdateImageRequest sets the counters to absolute values.
type UpdateImageRequest struct {
	Points  *int  `json:"points,omitempty"  validate:"omitempty,gte=0"`
	Viewed  *int  `json:"viewed,omitempty"  validate:"omitempty,gte=0"`
	Disable *bool `json:"disable,omitempty"`
}

type ImageResponse struct {
	ID        int64             `json:"id"`
	Points    int               `json:"points"`
	Viewed    int               `json:"viewed"`
	Disable   bool              `json:"disable"`
	RankingID int64             `json:"id_ranking"`
	Image     core.ImageSummary `json:"image"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type RankingResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Private     bool              `json:"private"`
	Album       core.AlbumSummary `json:"album"`
	Author      core.UserSummary  `json:"author"`
	Images      []ImageResponse   `json:"images"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func ToImageResponse(img *Image) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		Points:    img.Points,
		Viewed:    img.Viewed,
		Disable:   img.Disable,
		RankingID: img.RankingID,
		Image:     img.Image,
		CreatedAt: img.CreatedAt,
		UpdatedAt: img.UpdatedAt,
	}
}

func ToImageResponseList(images []Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, ToImageResponse(&images[i]))
	}
	return out
}

func ToRankingResponse(rk *Ranking) RankingResponse {
	return RankingResponse{
		ID:          rk.ID,
		Name:        rk.Name,
		Description: rk.Description,
		Private:     rk.Private,
		Album:       rk.Album,
		Author:      rk.Author,
		Images:      ToImageResponseList(rk.Images),
		CreatedAt:   rk.CreatedAt,
		UpdatedAt:   rk.UpdatedAt,
	}
}

func ToRankingResponseList(rankings []Ranking) []RankingResponse {
	out := make([]RankingResponse, 0, len(rankings))
	for i := range rankings {
		out = append(out, ToRankingResponse(&rankings[i]))
	}
	return out
}
