package kv

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// MemoryDSN selects the non-persistent in-memory store.
const MemoryDSN = ":memory:"

// Backend reports which implementation a DSN selects.
func Backend(dsn string) string {
	switch {
	case dsn == MemoryDSN:
		return "memory"
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres"
	default:
		return "sqlite"
	}
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open returns the store selected by dsn, migrated and ready, along with a
// close function. A postgres:// URL selects PostgreSQL (pgx), ":memory:"
// the in-memory store, and anything else is taken as a SQLite file path.
func Open(ctx context.Context, dsn string) (Store, func() error, error) {
	switch Backend(dsn) {
	case "memory":
		return NewMemoryStore(), func() error { return nil }, nil

	case "postgres":
		db, err := sqlOpen("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		if err := migrations.Up(ctx, db, migrations.Postgres); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migration error: %w", err)
		}
		return NewPostgresRepository(db), db.Close, nil

	default:
		db, err := sqlOpen("sqlite", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		// SQLite has a single writer; one connection also keeps
		// transactions and plain reads on the same database.
		db.SetMaxOpenConns(1)
		if err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migration error: %w", err)
		}
		return NewSQLiteRepository(db), db.Close, nil
	}
}
