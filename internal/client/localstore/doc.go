// Package localstore persists the durable snapshot of the current note plus
// small installation-scoped values (such as the installation id) in a local
// SQLite database.
//
// The database is a single key/value table; the note is stored as its JSON
// snapshot codec under a fixed key, the same snake_case/ISO-8601 shape the
// remote collection uses, so passive reader surfaces can decode it
// independently of this process.
//
// Writes are full-snapshot replacements (upsert by key). The store reports
// errors normally; whether a failed write is fatal is the caller's policy —
// the sync engine deliberately swallows save failures so a broken display
// cache never blocks editing.
package localstore
