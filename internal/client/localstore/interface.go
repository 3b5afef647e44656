package localstore

import (
	"context"

	"github.com/dmitrijs2005/jotsync/internal/client/models"
)

// Store is the durable mirror of the in-memory note.
type Store interface {
	// LoadNote returns the persisted note snapshot, or (nil, nil) when no
	// snapshot has been written yet.
	LoadNote(ctx context.Context) (*models.Note, error)

	// SaveNote replaces the persisted snapshot with the given note.
	SaveNote(ctx context.Context, note *models.Note) error
}

// Reader is the read-only subset used by passive display surfaces.
type Reader interface {
	LoadNote(ctx context.Context) (*models.Note, error)
}
