package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cakeshop/internal/dbx"
)

// queries holds the dialect-specific statements for the kv table.
type queries struct {
	get    string
	upsert string
	delete string
	list   string
	clear  string
}

var sqliteQueries = queries{
	get: `SELECT value FROM kv WHERE key = ?`,
	upsert: `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	delete: `DELETE FROM kv WHERE key = ?`,
	list:   `SELECT key, value FROM kv`,
	clear:  `DELETE FROM kv`,
}

var postgresQueries = queries{
	get: `SELECT value FROM kv WHERE key = $1`,
	upsert: `INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()`,
	delete: `DELETE FROM kv WHERE key = $1`,
	list:   `SELECT key, value FROM kv`,
	clear:  `DELETE FROM kv`,
}

// SQLRepository is a Store over a single kv table. The same type serves
// SQLite and PostgreSQL; only the statements differ.
type SQLRepository struct {
	db dbx.DBTX
	// conn is nil when the repository is bound to an open transaction.
	conn *sql.DB
	q    queries
}

func NewSQLiteRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, conn: db, q: sqliteQueries}
}

func NewPostgresRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, conn: db, q: postgresQueries}
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, r.q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, r.q.upsert, key, value); err != nil {
		return fmt.Errorf("failed to put kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, r.q.delete, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.q.clear); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, r.q.list)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}
	return result, nil
}

// Update runs fn inside a database transaction. Nested calls reuse the
// outer transaction.
func (r *SQLRepository) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	if r.conn == nil {
		return fn(ctx, r)
	}
	return dbx.WithTx(ctx, r.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &SQLRepository{db: tx, q: r.q})
	})
}
