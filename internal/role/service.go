// AngelaMos | 2026
// service.go

package role

import (
	"context"
	"errors"

	"github.com/carterperez-dev/tierhub/internal/auth"
	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/user"
)

// UserResolver finds the target of a role assignment by id or nametag.
type UserResolver interface {
	Get(ctx context.Context, p core.Param) (*user.User, error)
}

type Service struct {
	repo  Repository
	users UserResolver
}

func NewService(repo Repository, users UserResolver) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) List(ctx context.Context) ([]Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, core.NotFoundError("roles")
	}
	return roles, nil
}

// Get resolves a role by numeric id or libelle.
func (s *Service) Get(ctx context.Context, p core.Param) (*Role, error) {
	var (
		role *Role
		err  error
	)
	if p.IsID() {
		role, err = s.repo.GetByID(ctx, p.ID)
	} else {
		role, err = s.repo.GetByLibelle(ctx, p.Key)
	}

	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("role")
	}
	return role, err
}

func (s *Service) Create(ctx context.Context, req CreateRoleRequest) (*Role, error) {
	role := &Role{Libelle: req.Libelle}
	if err := s.repo.Create(ctx, role); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("libelle")
		}
		return nil, err
	}
	return role, nil
}

func (s *Service) Update(ctx context.Context, p core.Param, req UpdateRoleRequest) (*Role, error) {
	role, err := s.Get(ctx, p)
	if err != nil {
		return nil, err
	}

	if req.Libelle != nil {
		role.Libelle = *req.Libelle
	}

	if err := s.repo.Update(ctx, role); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("libelle")
		}
		return nil, err
	}
	return role, nil
}

func (s *Service) Delete(ctx context.Context, p core.Param) error {
	role, err := s.Get(ctx, p)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, role.ID)
}

// AssignToUser grants a role named by id or libelle and returns the user
// with its refreshed role set.
func (s *Service) AssignToUser(ctx context.Context, target core.Param, roleRef string) (*user.User, error) {
	u, role, err := s.resolvePair(ctx, target, roleRef)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Assign(ctx, u.ID, role.ID); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.BadRequestError("user already has role " + role.Libelle)
		}
		return nil, err
	}

	return s.users.Get(ctx, core.Param{ID: u.ID})
}

func (s *Service) RemoveFromUser(ctx context.Context, target core.Param, roleRef string) (*user.User, error) {
	u, role, err := s.resolvePair(ctx, target, roleRef)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Remove(ctx, u.ID, role.ID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("role assignment")
		}
		return nil, err
	}

	return s.users.Get(ctx, core.Param{ID: u.ID})
}

func (s *Service) resolvePair(ctx context.Context, target core.Param, roleRef string) (*user.User, *Role, error) {
	rp, err := core.ParseNameParam(roleRef)
	if err != nil {
		return nil, nil, err
	}

	u, err := s.users.Get(ctx, target)
	if err != nil {
		return nil, nil, err
	}

	role, err := s.Get(ctx, rp)
	if err != nil {
		return nil, nil, err
	}

	return u, role, nil
}

func (s *Service) RoleLabelsForUser(ctx context.Context, userID int64) ([]string, error) {
	return s.repo.LabelsForUser(ctx, userID)
}

func (s *Service) AssignDefaultRole(ctx context.Context, userID int64) error {
	role, err := s.repo.GetByLibelle(ctx, DefaultLabel)
	if err != nil {
		return err
	}
	return s.repo.Assign(ctx, userID, role.ID)
}

var _ auth.RoleProvider = (*Service)(nil)
