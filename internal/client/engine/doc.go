// Package engine implements the note synchronization engine.
//
// # Overview
//
// The engine owns the canonical in-memory note and coordinates the local
// snapshot store with the remote notes client:
//
//   - Initialize adopts the remote record (or creates one), falling back to
//     the local snapshot or a fresh empty note on any remote failure. After
//     Initialize the note is always present.
//   - ApplyLocalEdit replaces the note body, persists the snapshot locally
//     before returning, and (re)arms a debounced remote push. Bursts of
//     edits coalesce into a single push carrying the last body.
//   - ForceSyncNow cancels the pending debounce and pushes immediately.
//
// Reconciliation is wholesale last-write-wins at load time; there is no
// field-level merge and no conflict detection beyond "remote record exists".
// Two installations sharing an owner id will clobber each other at the
// storage layer; the later wall-clock write wins.
//
// # Concurrency
//
// All state transitions are serialized under one mutex. Network calls run
// outside the lock, so State reads never block on an outstanding push.
// At most one debounce handle is alive; arming always cancels the previous
// one first. An in-flight push is never cancelled by a new trigger — both
// complete, and the later response determines the recorded connectivity
// flags (the storage layer is an idempotent upsert by id, so duplicate
// pushes are safe).
//
// # Error Handling
//
// Remote failures never escape: they are converted into the observable
// connected/lastError pair. Local snapshot failures are logged and
// swallowed — a broken display cache must never block editing.
package engine
