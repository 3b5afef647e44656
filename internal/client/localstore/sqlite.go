package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jotsync/internal/client/models"
	"github.com/dmitrijs2005/jotsync/internal/dbx"
)

// noteKey is the fixed snapshot key the current note is stored under.
const noteKey = "note"

// SQLiteStore implements Store over a key/value snapshots table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a store bound to an already opened database. The
// schema is expected to be migrated (see Open).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func getValue(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return value, nil
}

func setValue(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set snapshot[%s]: %w", key, err)
	}
	return nil
}

// LoadNote decodes the persisted note snapshot. Absent snapshot is not an
// error: (nil, nil).
func (s *SQLiteStore) LoadNote(ctx context.Context) (*models.Note, error) {
	data, err := getValue(ctx, s.db, noteKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var note models.Note
	if err := json.Unmarshal(data, &note); err != nil {
		return nil, fmt.Errorf("failed to decode note snapshot: %w", err)
	}
	return &note, nil
}

// SaveNote serializes the note and replaces the snapshot wholesale.
func (s *SQLiteStore) SaveNote(ctx context.Context, note *models.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to encode note snapshot: %w", err)
	}
	return setValue(ctx, s.db, noteKey, data)
}

// GetValue reads a raw installation-scoped value, (nil, nil) when absent.
func (s *SQLiteStore) GetValue(ctx context.Context, key string) ([]byte, error) {
	return getValue(ctx, s.db, key)
}

// GetOrSetValue returns the value stored under key, or atomically stores and
// returns the value produced by gen when the key is absent. The
// read-then-write runs in one transaction so two concurrent callers cannot
// both generate.
func (s *SQLiteStore) GetOrSetValue(ctx context.Context, key string, gen func() []byte) ([]byte, error) {
	var result []byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		existing, err := getValue(ctx, tx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}
		result = gen()
		return setValue(ctx, tx, key, result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
