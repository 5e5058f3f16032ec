// Package fsxsql stores files as rows of a single documents table. It works
// with both Postgres (lib/pq) and SQLite (modernc.org/sqlite) through sqlx.
package fsxsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Abraxas-365/jobboard/pkg/fsx"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	doc_key TEXT PRIMARY KEY,
	body    TEXT NOT NULL
)`

// SQLFileSystem implements fsx.FileSystem over a documents table
type SQLFileSystem struct {
	db *sqlx.DB
}

func NewSQLFileSystem(db *sqlx.DB) *SQLFileSystem {
	return &SQLFileSystem{db: db}
}

// EnsureSchema creates the documents table when it is missing
func (fs *SQLFileSystem) EnsureSchema(ctx context.Context) error {
	if _, err := fs.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (fs *SQLFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	var body string
	query := fs.db.Rebind(`SELECT body FROM documents WHERE doc_key = ?`)
	if err := fs.db.GetContext(ctx, &body, query, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select %s: %w", p, fsx.ErrNotExist)
		}
		return nil, fmt.Errorf("select %s: %w", p, err)
	}
	return []byte(body), nil
}

func (fs *SQLFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	query := fs.db.Rebind(`
		INSERT INTO documents (doc_key, body) VALUES (?, ?)
		ON CONFLICT (doc_key) DO UPDATE SET body = excluded.body`)
	if _, err := fs.db.ExecContext(ctx, query, p, string(data)); err != nil {
		return fmt.Errorf("upsert %s: %w", p, err)
	}
	return nil
}

func (fs *SQLFileSystem) Exists(ctx context.Context, p string) (bool, error) {
	var n int
	query := fs.db.Rebind(`SELECT COUNT(*) FROM documents WHERE doc_key = ?`)
	if err := fs.db.GetContext(ctx, &n, query, p); err != nil {
		return false, fmt.Errorf("count %s: %w", p, err)
	}
	return n > 0, nil
}

var _ fsx.FileSystem = (*SQLFileSystem)(nil)
