// AngelaMos | 2026
// entity.go

package category

import "github.com/carterperez-dev/tierhub/internal/core"

type Category struct {
	ID     int64               `db:"id"`
	Name   string              `db:"name"`
	Albums []core.AlbumSummary `db:"-"`
}

type categoryAlbum struct {
	CategoryID int64 `db:"id_category"`
	core.AlbumSummary
}
