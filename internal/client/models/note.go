// Package models defines the note entity shared by the local store, the
// remote client and the sync engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is the single synchronized document of an installation.
//
// JSON field names follow the remote "notes" collection (snake_case,
// ISO-8601 timestamps); the local snapshot codec uses the same shape so a
// record written by one surface can be read by any other.
//
// Invariants:
//   - Id and CreatedAt are assigned once and never reassigned.
//   - UpdatedAt is set by whichever party (local edit or remote fetch)
//     produced the most recent content mutation, so UpdatedAt >= CreatedAt.
//   - Exactly one live note exists per UserId.
type Note struct {
	Id        string    `json:"id"`
	UserId    string    `json:"user_id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote returns an empty note for the given owner with a fresh id and
// both timestamps set to now.
func NewNote(userId string) *Note {
	now := time.Now().UTC()
	return &Note{
		Id:        uuid.NewString(),
		UserId:    userId,
		Content:   "",
		UpdatedAt: now,
		CreatedAt: now,
	}
}

// SetContent replaces the note body and stamps UpdatedAt.
func (n *Note) SetContent(content string) {
	n.Content = content
	n.UpdatedAt = time.Now().UTC()
}
