// AngelaMos | 2026
// dto.go

package tierlist

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type CreateTierlistRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Private     bool    `json:"private"`
	AlbumID     int64   `json:"id_album"    validate:"required,gt=0"`
}

type UpdateTierlistRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Private     *bool   `json:"private,omitempty"`
}

type CreateLineRequest struct {
	Label      string `json:"label"       validate:"required,min=1,max=50"`
	Placement  *int   `json:"placement"   validate:"required,gte=0"`
	Color      string `json:"color"       validate:"required,hexcolor"`
	TierlistID int64  `json:"id_tierlist" validate:"required,gt=0"`
}

type UpdateLineRequest struct {
	Label     *string `json:"label,omitempty"     validate:"omitempty,min=1,max=50"`
	Placement *int    `json:"placement,omitempty" validate:"omitempty,gte=0"`
	Color     *string `json:"color,omitempty"     validate:"omitempty,hexcolor"`
}

type CreateLineImageRequest struct {
	Placement *int  `json:"placement"        validate:"required,gte=0"`
	Disable   bool  `json:"disable"`
	ImageID   int64 `json:"id_image"         validate:"required,gt=0"`
	LineID    int64 `json:"id_tierlist_line" validate:"required,gt=0"`
}

// UpdateLineImageRequest may move the image to another line.
type UpdateLineImageRequest struct {
	Placement *int   `json:"placement,omitempty"        validate:"omitempty,gte=0"`
	Disable   *bool  `json:"disable,omitempty"`
	LineID    *int64 `json:"id_tierlist_line,omitempty" validate:"omitempty,gt=0"`
}

type LineImageResponse struct {
	ID        int64             `json:"id"`
	Placement int               `json:"placement"`
	Disable   bool              `json:"disable"`
	LineID    int64             `json:"id_tierlist_line"`
	Image     core.ImageSummary `json:"image"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type LineResponse struct {
	ID         int64               `json:"id"`
	Label      string              `json:"label"`
	Placement  int                 `json:"placement"`
	Color      string              `json:"color"`
	TierlistID int64               `json:"id_tierlist"`
	Images     []LineImageResponse `json:"images"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type TierlistResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Private     bool              `json:"private"`
	Album       core.AlbumSummary `json:"album"`
	Author      core.UserSummary  `json:"author"`
	Lines       []LineResponse    `json:"lines"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func ToLineImageResponse(li *LineImage) LineImageResponse {
	return LineImageResponse{
		ID:        li.ID,
		Placement: li.Placement,
		Disable:   li.Disable,
		LineID:    li.LineID,
		Image:     li.Image,
		CreatedAt: li.CreatedAt,
		UpdatedAt: li.UpdatedAt,
	}
}

func ToLineImageResponseList(images []LineImage) []LineImageResponse {
	out := make([]LineImageResponse, 0, len(images))
	for i := range images {
		out = append(out, ToLineImageResponse(&images[i]))
	}
	return out
}

func ToLineResponse(l *Line) LineResponse {
	return LineResponse{
		ID:         l.ID,
		Label:      l.Label,
		Placement:  l.Placement,
		Color:      l.Color,
		TierlistID: l.TierlistID,
		Images:     ToLineImageResponseList(l.Images),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func ToLineResponseList(lines []Line) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for i := range lines {
		out = append(out, ToLineResponse(&lines[i]))
	}
	return out
}

func ToTierlistResponse(t *Tierlist) TierlistResponse {
	return TierlistResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Private:     t.Private,
		Album:       t.Album,
		Author:      t.Author,
		Lines:       ToLineResponseList(t.Lines),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTierlistResponseList(tierlists []Tierlist) []TierlistResponse {
	out := make([]TierlistResponse, 0, len(tierlists))
	for i := range tierlists {
		out = append(out, ToTierlistResponse(&tierlists[i]))
	}
	return out
}
