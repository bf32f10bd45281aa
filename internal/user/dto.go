// AngelaMos | 2026
// dto.go

package user

import (
	"strings"
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50,username"`
	Nametag  *string `json:"nametag,omitempty"  validate:"omitempty,min=3,max=50,nametag"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email,max=255"`
	Status   *string `json:"status,omitempty"   validate:"omitempty,oneof=active deactivated banned"`
}

// UpdateMeRequest is the self-service subset; status is changed by admins.
type UpdateMeRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50,username"`
	Nametag  *string `json:"nametag,omitempty"  validate:"omitempty,min=3,max=50,nametag"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email,max=255"`
}

func (r UpdateUserRequest) fields() UpdateFields {
	return UpdateFields{
		Username: r.Username,
		Nametag:  r.Nametag,
		Email:    lowerPtr(r.Email),
		Status:   r.Status,
	}
}

func (r UpdateMeRequest) fields() UpdateFields {
	return UpdateFields{
		Username: r.Username,
		Nametag:  r.Nametag,
		Email:    lowerPtr(r.Email),
	}
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

// UserResponse is the public shape of a user. It never carries email or
// password.
type UserResponse struct {
	ID             int64              `json:"id"`
	Username       string             `json:"username"`
	Nametag        string             `json:"nametag"`
	Status         string             `json:"status"`
	LastConnection time.Time          `json:"last_connection"`
	Roles          []core.RoleSummary `json:"roles"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func ToUserResponse(u *User) UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []core.RoleSummary{}
	}
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Nametag:        u.Nametag,
		Status:         u.Status,
		LastConnection: u.LastConnection,
		Roles:          roles,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
