// AngelaMos | 2026
// migrate.go

package core

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the idempotent schema and seeds the fixed role set. When
// reset is true every table is dropped first.
func Migrate(ctx context.Context, db *sqlx.DB, reset bool) error {
	files := []string{"schema.sql", "seed.sql"}
	if reset {
		files = append([]string{"drop.sql"}, files...)
	}

	return InTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, name := range files {
			if err := execFile(ctx, tx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func execFile(ctx context.Context, tx *sqlx.Tx, name string) error {
	raw, err := migrations.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}

	for _, stmt := range splitStatements(string(raw)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
