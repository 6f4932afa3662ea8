// Package migrations embeds the key/value schema for each SQL backend and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func (d Dialect) goose() goose.Dialect {
	if d == Postgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}

// gooseUpContext is a seam for tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Up applies every pending migration for dialect.
func Up(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(dialect.goose())); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}
	if err := gooseUpContext(ctx, db, string(dialect)); err != nil {
		return fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return nil
}
