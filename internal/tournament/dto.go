// AngelaMos | 2026
// dto.go

package tournament

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type CreateTournamentRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Turn        int     `json:"turn"        validate:"gte=0"`
	Private     bool    `json:"private"`
	AlbumID     int64   `json:"id_album"    validate:"required,gt=0"`
}

type UpdateTournamentRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Turn        *int    `json:"turn,omitempty"        validate:"omitempty,gte=0"`
	Private     *bool   `json:"private,omitempty"`
}

type CreateImageRequest struct {
	Lose         bool  `json:"lose"`
	Place        int   `json:"place"         validate:"gte=0"`
	Turn         int   `json:"turn"          validate:"gte=0"`
	Disable      bool  `json:"disable"`
	ImageID      int64 `json:"id_image"      validate:"required,gt=0"`
	TournamentID int64 `json:"id_tournament" validate:"required,gt=0"`
}

type UpdateImageRequest struct {
	Lose    *bool `json:"lose,omitempty"`
	Place   *int  `json:"place,omitempty"   validate:"omitempty,gte=0"`
	Turn    *int  `json:"turn,omitempty"    validate:"omitempty,gte=0"`
	Disable *bool `json:"disable,omitempty"`
}

type CreateOponentRequest struct {
	TournamentImageID int64 `json:"id_tournament_image" validate:"required,gt=0"`
	OponentID         int64 `json:"id_oponent"          validate:"required,gt=0"`
}

type UpdateOponentRequest struct {
	OponentID int64 `json:"id_oponent" validate:"required,gt=0"`
}

type OponentResponse struct {
	ID                int64     `json:"id"`
	TournamentImageID int64     `json:"id_tournament_image"`
	OponentID         int64     `json:"id_oponent"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ImageResponse struct {
	ID           int64             `json:"id"`
	Lose         bool              `json:"lose"`
	Place        int               `json:"place"`
	Turn         int               `json:"turn"`
	Disable      bool              `json:"disable"`
	TournamentID int64             `json:"id_tournament"`
	Image        core.ImageSummary `json:"image"`
	Oponents     []OponentResponse `json:"oponents"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type TournamentResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Turn        int               `json:"turn"`
	Private     bool              `json:"private"`
	Album       core.AlbumSummary `json:"album"`
	Author      core.UserSummary  `json:"author"`
	Images      []ImageResponse   `json:"images"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func ToOponentResponse(o *Oponent) OponentResponse {
	return OponentResponse{
		ID:                o.ID,
		TournamentImageID: o.TournamentImageID,
		OponentID:         o.OponentID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func ToOponentResponseList(oponents []Oponent) []OponentResponse {
	out := make([]OponentResponse, 0, len(oponents))
	for i := range oponents {
		out = append(out, ToOponentResponse(&oponents[i]))
	}
	return out
}

func ToImageResponse(img *Image) ImageResponse {
	return ImageResponse{
		ID:           img.ID,
		Lose:         img.Lose,
		Place:        img.Place,
		Turn:         img.Turn,
		Disable:      img.Disable,
		TournamentID: img.TournamentID,
		Image:        img.Image,
		Oponents:     ToOponentResponseList(img.Oponents),
		CreatedAt:    img.CreatedAt,
		UpdatedAt:    img.UpdatedAt,
	}
}

func ToImageResponseList(images []Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, ToImageResponse(&images[i]))
	}
	return out
}

func ToTournamentResponse(t *Tournament) TournamentResponse {
	return TournamentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Turn:        t.Turn,
		Private:     t.Private,
		Album:       t.Album,
		Author:      t.Author,
		Images:      ToImageResponseList(t.Images),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTournamentResponseList(tournaments []Tournament) []TournamentResponse {
	out := make([]TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		out = append(out, ToTournamentResponse(&tournaments[i]))
	}
	return out
}
