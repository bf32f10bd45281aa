// AngelaMos | 2026
// dto.go

package category

import "github.com/carterperez-dev/tierhub/internal/core"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
}

// AlbumCategoryRequest names a category by numeric id or by name.
type AlbumCategoryRequest struct {
	Category string `json:"category" validate:"required,max=50"`
}

type CategoryResponse struct {
	ID     int64               `json:"id"`
	Name   string              `json:"name"`
	Albums []core.AlbumSummary `json:"albums"`
}

func ToCategoryResponse(c *Category) CategoryResponse {
	albums := c.Albums
	if albums == nil {
		albums = []core.AlbumSummary{}
	}
	return CategoryResponse{ID: c.ID, Name: c.Name, Albums: albums}
}

func ToCategoryResponseList(categories []Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, ToCategoryResponse(&categories[i]))
	}
	return out
}
