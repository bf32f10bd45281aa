// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/tierhub/internal/auth"
	"github.com/carterperez-dev/tierhub/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every user with roles. An empty table is reported as not found.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, core.NotFoundError("users")
	}

	if err := s.attachRoles(ctx, users); err != nil {
		return nil, err
	}

	return users, nil
}

// Get resolves a user by id or nametag and loads its roles.
func (s *Service) Get(ctx context.Context, p core.Param) (*User, error) {
	user, err := s.find(ctx, p)
	if err != nil {
		return nil, err
	}

	users := []User{*user}
	if err := s.attachRoles(ctx, users); err != nil {
		return nil, err
	}

	return &users[0], nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.Get(ctx, core.Param{ID: id})
}

func (s *Service) Update(ctx context.Context, p core.Param, req UpdateUserRequest) (*User, error) {
	user, err := s.find(ctx, p)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, user.ID, req.fields())
}

func (s *Service) UpdateMe(ctx context.Context, id int64, req UpdateMeRequest) (*User, error) {
	if _, err := s.find(ctx, core.Param{ID: id}); err != nil {
		return nil, err
	}

	return s.update(ctx, id, req.fields())
}

func (s *Service) update(ctx context.Context, id int64, fields UpdateFields) (*User, error) {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("nametag or email")
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, p core.Param) error {
	user, err := s.find(ctx, p)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, user.ID)
}

func (s *Service) find(ctx context.Context, p core.Param) (*User, error) {
	var (
		user *User
		err  error
	)
	if p.IsID() {
		user, err = s.repo.GetByID(ctx, p.ID)
	} else {
		user, err = s.repo.GetByNametag(ctx, p.Key)
	}

	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("user")
	}
	return user, err
}

func (s *Service) attachRoles(ctx context.Context, users []User) error {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	roles, err := s.repo.RolesForUsers(ctx, ids)
	if err != nil {
		return err
	}

	for i := range users {
		users[i].Roles = roles[users[i].ID]
	}

	return nil
}

// The methods below serve the auth flows and expose credentials. They are
// never used to build a public response.

func (s *Service) GetByIdentifier(ctx context.Context, identifier string) (*auth.UserInfo, error) {
	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) GetCredentialsByID(ctx context.Context, id int64) (*auth.UserInfo, error) {
	user, err := s.find(ctx, core.Param{ID: id})
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// CreateAccount stores a registration whose password is already hashed.
func (s *Service) CreateAccount(ctx context.Context, u auth.NewUser) (*auth.UserInfo, error) {
	if u.PasswordHash == "" {
		return nil, fmt.Errorf("create account: %w", core.ErrBadRequest)
	}

	user := &User{
		Username:       u.Username,
		Nametag:        u.Nametag,
		Email:          strings.ToLower(u.Email),
		PasswordHash:   u.PasswordHash,
		Status:         u.Status,
		LastConnection: u.LastConnection,
	}
	if user.Status == "" {
		user.Status = auth.StatusActive
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

func (s *Service) TouchLastConnection(ctx context.Context, id int64, at time.Time) error {
	return s.repo.TouchLastConnection(ctx, id, at)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:             u.ID,
		Username:       u.Username,
		Nametag:        u.Nametag,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Status:         u.Status,
		LastConnection: u.LastConnection,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
