package remote

import (
	"context"

	"github.com/dmitrijs2005/jotsync/internal/client/models"
)

// Client is the contract against the remote "notes" collection. Every
// operation is scoped by the owner id carried inside the note or passed
// explicitly.
type Client interface {
	// FetchLatest returns the most recently updated note of the owner, or
	// (nil, nil) when the owner has no record yet.
	FetchLatest(ctx context.Context, userId string) (*models.Note, error)

	// Insert creates a new record. Called only when the owner has none.
	Insert(ctx context.Context, note *models.Note) error

	// Upsert inserts or replaces the record sharing the note's id in one
	// server-side operation. Duplicate upserts of the same note are
	// idempotent.
	Upsert(ctx context.Context, note *models.Note) error
}
