package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"release-notes-bot/internal/domain/model"
	"release-notes-bot/internal/domain/ports"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store is a SQLite-backed release notes store for local runs. Rows of the
// select query must be (product_name, release_note_type, description).
type Store struct {
	db     *sql.DB
	logger ports.Logger
}

var _ ports.ReleaseStore = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, logger ports.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps writers serialized and an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, logger: logger}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying handle, e.g. for seeding the source table.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Exec runs a statement and waits for it to complete.
func (s *Store) Exec(ctx context.Context, query string) error {
	res, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("exec query: %w", err)
	}
	if s.logger != nil {
		if n, err := res.RowsAffected(); err == nil {
			s.logger.Info(ctx, "sqlite statement completed", "rows_affected", n)
		}
	}
	return nil
}

// QueryProducts returns one single-note Product per row, in row order.
func (s *Store) QueryProducts(ctx context.Context, query string) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var name, noteType, description sql.NullString
		if err := rows.Scan(&name, &noteType, &description); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		products = append(products, model.Product{
			Name: name.String,
			ReleaseNotes: []model.ReleaseNote{{
				Type:        noteType.String,
				Description: description.String,
			}},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return products, nil
}
