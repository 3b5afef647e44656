package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"strings"

	"github.com/dmitrijs2005/jotsync/internal/client/migrations"
	"github.com/dmitrijs2005/jotsync/internal/filex"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the snapshot database at dsn, applies
// migrations and returns a ready store. The caller owns closing via Close.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory") {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db), nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
