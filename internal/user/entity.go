// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type User struct {
	ID             int64              `db:"id"`
	Username       string             `db:"username"`
	Nametag        string             `db:"nametag"`
	Email          string             `db:"email"`
	PasswordHash   string             `db:"password_hash"`
	Status         string             `db:"status"`
	LastConnection time.Time          `db:"last_connection"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
	Roles          []core.RoleSummary `db:"-"`
}

func (u *User) RoleLabels() []string {
	labels := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		labels = append(labels, r.Libelle)
	}
	return labels
}

// UpdateFields is a partial update. Nil fields keep their stored value.
type UpdateFields struct {
	Username *string
	Nametag  *string
	Email    *string
	Status   *string
}

type userRole struct {
	UserID int64 `db:"id_user"`
	core.RoleSummary
}
