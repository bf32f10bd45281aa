// AngelaMos | 2026
// entity.go

package role

type Role struct {
	ID      int64  `db:"id"`
	Libelle string `db:"libelle"`
}

// DefaultLabel is granted to every new account.
const DefaultLabel = "User"
