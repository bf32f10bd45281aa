// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByNametag(ctx context.Context, nametag string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	Update(ctx context.Context, id int64, fields UpdateFields) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	TouchLastConnection(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	RolesForUsers(ctx context.Context, ids []int64) (map[int64][]core.RoleSummary, error)
}

const userColumns = `
	id, username, nametag, email, password_hash, status,
	last_connection, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (username, nametag, email, password_hash, status, last_connection)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.Username,
		user.Nametag,
		user.Email,
		user.PasswordHash,
		user.Status,
		user.LastConnection,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getOne(ctx, "get user", `WHERE id = $1`, id)
}

func (r *repository) GetByNametag(ctx context.Context, nametag string) (*User, error) {
	return r.getOne(ctx, "get user by nametag", `WHERE nametag = $1`, nametag)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getOne(ctx, "get user by email", `WHERE email = $1`, email)
}

// GetByIdentifier matches the nametag exactly or the email case-insensitively.
func (r *repository) GetByIdentifier(ctx context.Context, identifier string) (*User, error) {
	return r.getOne(ctx, "get user by identifier",
		`WHERE nametag = $1 OR email = LOWER($1) LIMIT 1`, identifier)
}

func (r *repository) getOne(ctx context.Context, op, where string, arg any) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + where

	var user User
	err := r.db.GetContext(ctx, &user, query, arg)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (r *repository) Update(ctx context.Context, id int64, f UpdateFields) error {
	query := `
		UPDATE users
		SET username   = COALESCE($2, username),
		    nametag    = COALESCE($3, nametag),
		    email      = COALESCE($4, email),
		    status     = COALESCE($5, status),
		    updated_at = NOW()
		WHERE id = $1`

	err := core.ExecOne(ctx, r.db, query, id, f.Username, f.Nametag, f.Email, f.Status)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *repository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, id, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (r *repository) TouchLastConnection(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE users SET last_connection = $2 WHERE id = $1`

	if err := core.ExecOne(ctx, r.db, query, id, at); err != nil {
		return fmt.Errorf("touch last connection: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	if err := core.ExecOne(ctx, r.db, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *repository) RolesForUsers(
	ctx context.Context,
	ids []int64,
) (map[int64][]core.RoleSummary, error) {
	query := `
		SELECT ur.id_user, ro.id, ro.libelle
		FROM user_roles ur
		JOIN roles ro ON ro.id = ur.id_role
		WHERE ur.id_user IN (?)
		ORDER BY ro.id`

	var rows []userRole
	if err := core.SelectIn(ctx, r.db, &rows, query, ids); err != nil {
		return nil, fmt.Errorf("load user roles: %w", err)
	}

	byUser := make(map[int64][]core.RoleSummary, len(ids))
	for _, row := range rows {
		byUser[row.UserID] = append(byUser[row.UserID], row.RoleSummary)
	}

	return byUser, nil
}
