// AngelaMos | 2026
// dto.go

package album

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type CreateAlbumRequest struct {
	Name   string `json:"name"   validate:"required,min=1,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=private public deactivated"`
}

type UpdateAlbumRequest struct {
	Name   *string `json:"name,omitempty"   validate:"omitempty,min=1,max=100"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=private public deactivated"`
}

type AlbumResponse struct {
	ID         int64                  `json:"id"`
	Name       string                 `json:"name"`
	Status     string                 `json:"status"`
	Author     core.UserSummary       `json:"author"`
	Categories []core.CategorySummary `json:"categories"`
	Images     []core.ImageSummary    `json:"images"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func ToAlbumResponse(a *Album) AlbumResponse {
	categories := a.Categories
	if categories == nil {
		categories = []core.CategorySummary{}
	}
	images := a.Images
	if images == nil {
		images = []core.ImageSummary{}
	}
	return AlbumResponse{
		ID:         a.ID,
		Name:       a.Name,
		Status:     a.Status,
		Author:     a.Author,
		Categories: categories,
		Images:     images,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func ToAlbumResponseList(albums []Album) []AlbumResponse {
	out := make([]AlbumResponse, 0, len(albums))
	for i := range albums {
		out = append(out, ToAlbumResponse(&albums[i]))
	}
	return out
}
