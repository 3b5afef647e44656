package engine

import "time"

// State is a consistent read-only snapshot of the engine, handed to
// observers. Observers may see a stale snapshot while a push is
// outstanding, never a torn one.
type State struct {
	// Content is the current note body ("" until Initialize completes).
	Content string

	// Syncing is true while a push is in flight.
	Syncing bool

	// Connected reflects the outcome of the last remote operation.
	// Local-only mode (remote unconfigured) keeps it true.
	Connected bool

	// HasError is true when the last remote operation failed.
	HasError bool

	// LastError is the failure behind HasError, nil otherwise. Match with
	// errors.Is against the remote package sentinels.
	LastError error

	// LastUpdated is the note's updated_at, zero until a note is present.
	LastUpdated time.Time
}
