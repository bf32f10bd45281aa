// AngelaMos | 2026
// dto.go

package auth

import (
	"strings"
	"time"
)

// LoginRequest accepts a single identifier (nametag or email). The separate
// nametag and email fields are accepted as aliases for older clients.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"omitempty,max=255"`
	Nametag    string `json:"nametag"    validate:"omitempty,max=50"`
	Email      string `json:"email"      validate:"omitempty,max=255"`
	Password   string `json:"password"   validate:"required,max=128"`
}

func (r LoginRequest) LoginIdentifier() string {
	for _, v := range []string{r.Identifier, r.Nametag, r.Email} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Nametag  string `json:"nametag"  validate:"required,min=3,max=50,nametag"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type NewPasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,max=128"`
	NewPassword string `json:"new_password" validate:"required,strongpassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,strongpassword"`
}

// UserInfo is the credential view of a user exchanged with the user package.
type UserInfo struct {
	ID             int64
	Username       string
	Nametag        string
	Email          string
	PasswordHash   string
	Status         string
	LastConnection time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser is a registration with the password already hashed.
type NewUser struct {
	Username       string
	Nametag        string
	Email          string
	PasswordHash   string
	Status         string
	LastConnection time.Time
}

const (
	StatusActive      = "active"
	StatusDeactivated = "deactivated"
	StatusBanned      = "banned"
)

type AccountResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Nametag        string    `json:"nametag"`
	Email          string    `json:"email"`
	Status         string    `json:"status"`
	LastConnection time.Time `json:"last_connection"`
	Roles          []string  `json:"roles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type LoginResult struct {
	Token   string
	Account AccountResponse
}

func ToAccountResponse(u *UserInfo, roles []string) AccountResponse {
	if roles == nil {
		roles = []string{}
	}
	return AccountResponse{
		ID:             u.ID,
		Username:       u.Username,
		Nametag:        u.Nametag,
		Email:          u.Email,
		Status:         u.Status,
		LastConnection: u.LastConnection,
		Roles:          roles,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
