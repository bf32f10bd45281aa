// AngelaMos | 2026
// summary.go

package core

// Summaries are the nested shapes embedded in other resources' responses.
// UserSummary never carries email or password.

type UserSummary struct {
	ID       int64  `db:"id"       json:"id"`
	Username string `db:"username" json:"username"`
	Nametag  string `db:"nametag"  json:"nametag"`
}

type AlbumSummary struct {
	ID     int64  `db:"id"     json:"id"`
	Name   string `db:"name"   json:"name"`
	Status string `db:"status" json:"status"`
}

type CategorySummary struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

type ImageSummary struct {
	ID          int64   `db:"id"          json:"id"`
	Name        string  `db:"name"        json:"name"`
	PathImage   string  `db:"path_image"  json:"path_image"`
	Description *string `db:"description" json:"description,omitempty"`
	URL         *string `db:"url"         json:"url,omitempty"`
}

type RoleSummary struct {
	ID      int64  `db:"id"      json:"id"`
	Libelle string `db:"libelle" json:"libelle"`
}
