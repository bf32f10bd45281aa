// AngelaMos | 2026
// repository.go

package role

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id int64) (*Role, error)
	GetByLibelle(ctx context.Context, libelle string) (*Role, error)
	Create(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id int64) error
	LabelsForUser(ctx context.Context, userID int64) ([]string, error)
	Assign(ctx context.Context, userID, roleID int64) error
	Remove(ctx context.Context, userID, roleID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := r.db.SelectContext(ctx, &roles, `SELECT id, libelle FROM roles ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Role, error) {
	return r.getOne(ctx, `SELECT id, libelle FROM roles WHERE id = $1`, id)
}

func (r *repository) GetByLibelle(ctx context.Context, libelle string) (*Role, error) {
	return r.getOne(ctx, `SELECT id, libelle FROM roles WHERE libelle = $1`, libelle)
}

func (r *repository) getOne(ctx context.Context, query string, arg any) (*Role, error) {
	var role Role
	err := r.db.GetContext(ctx, &role, query, arg)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get role: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

func (r *repository) Create(ctx context.Context, role *Role) error {
	err := r.db.GetContext(ctx, &role.ID,
		`INSERT INTO roles (libelle) VALUES ($1) RETURNING id`, role.Libelle)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create role: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create role: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	err := core.ExecOne(ctx, r.db,
		`UPDATE roles SET libelle = $2 WHERE id = $1`, role.ID, role.Libelle)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("update role: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (r *repository) LabelsForUser(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT ro.libelle
		FROM user_roles ur
		JOIN roles ro ON ro.id = ur.id_role
		WHERE ur.id_user = $1
		ORDER BY ro.id`

	var labels []string
	if err := r.db.SelectContext(ctx, &labels, query, userID); err != nil {
		return nil, fmt.Errorf("load role labels: %w", err)
	}
	return labels, nil
}

func (r *repository) Assign(ctx context.Context, userID, roleID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (id_user, id_role) VALUES ($1, $2)`, userID, roleID)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("assign role: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

func (r *repository) Remove(ctx context.Context, userID, roleID int64) error {
	err := core.ExecOne(ctx, r.db,
		`DELETE FROM user_roles WHERE id_user = $1 AND id_role = $2`, userID, roleID)
	if err != nil {
		return fmt.Errorf("remove role: %w", err)
	}
	return nil
}
