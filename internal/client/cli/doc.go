// Package cli provides the interactive JotSync command-line client.
//
// It wires configuration, the local snapshot store, the remote notes client
// and the sync engine into an interactive REPL. The REPL is pure
// presentation glue: it reads commands, forwards content replacements to
// the engine and renders the observable engine state. It holds no sync
// state of its own.
//
// Key commands:
//   - show            — print the current note
//   - edit            — replace the note body (multi-line input)
//   - append <text>   — append a line to the note
//   - bold <text>     — append text wrapped in ** markers
//   - italic <text>   — append text wrapped in * markers
//   - sync            — force an immediate push
//   - status          — print connectivity and sync state
//
// The REPL is started via App.Run(ctx), which blocks until the user exits;
// leaving the surface forces a final sync so no debounced edit is dropped.
package cli
