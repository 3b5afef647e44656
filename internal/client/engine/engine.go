package engine

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/jotsync/internal/client/localstore"
	"github.com/dmitrijs2005/jotsync/internal/client/models"
	"github.com/dmitrijs2005/jotsync/internal/client/remote"
	"github.com/dmitrijs2005/jotsync/internal/logging"
)

// DefaultDebounceInterval is the quiet period after the last edit before
// the coalesced push fires.
const DefaultDebounceInterval = 1500 * time.Millisecond

// Engine is the synchronization state machine. Construct with New; the
// zero value is not usable.
type Engine struct {
	store    localstore.Store
	client   remote.Client // nil means remote access is not configured
	sched    Scheduler
	log      logging.Logger
	debounce time.Duration

	mu        sync.Mutex
	note      *models.Note
	syncing   bool
	connected bool
	lastErr   error
	pending   CancelFunc

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// New builds an engine. client may be nil for local-only mode, which is not
// an error condition. A non-positive debounce falls back to
// DefaultDebounceInterval.
func New(store localstore.Store, client remote.Client, sched Scheduler, log logging.Logger, debounce time.Duration) *Engine {
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}
	return &Engine{
		store:     store,
		client:    client,
		sched:     sched,
		log:       log,
		debounce:  debounce,
		connected: true,
		subs:      make(map[int]func(State)),
	}
}

// Initialize loads the note for the given owner. With remote access
// configured it adopts the latest remote record, inserting a fresh empty
// one when the owner has none; on any remote failure it falls back to the
// local snapshot or a fresh note and records the failure. The note is
// always present afterwards.
func (e *Engine) Initialize(ctx context.Context, userId string) {
	if e.client == nil {
		e.adoptFallback(ctx, userId, nil)
		return
	}

	note, err := e.client.FetchLatest(ctx, userId)
	if err == nil && note == nil {
		note = models.NewNote(userId)
		err = e.client.Insert(ctx, note)
	}
	if err != nil {
		e.log.Warn(ctx, "remote load failed, falling back to local snapshot", "user_id", userId, "error", err)
		e.adoptFallback(ctx, userId, err)
		return
	}

	e.saveSnapshot(ctx, note)

	e.mu.Lock()
	e.note = note
	e.connected = true
	e.lastErr = nil
	st := e.stateLocked()
	e.mu.Unlock()

	e.publish(st)
}

// adoptFallback installs the local snapshot, or a fresh empty note when
// none exists. cause, when non-nil, is the remote failure that forced the
// fallback; nil means local-only mode and leaves connectivity untouched.
func (e *Engine) adoptFallback(ctx context.Context, userId string, cause error) {
	note, err := e.store.LoadNote(ctx)
	if err != nil {
		e.log.Warn(ctx, "local snapshot unreadable", "error", err)
		note = nil
	}
	if note == nil {
		note = models.NewNote(userId)
		e.saveSnapshot(ctx, note)
	}

	e.mu.Lock()
	e.note = note
	if cause != nil {
		e.connected = false
		e.lastErr = cause
	}
	st := e.stateLocked()
	e.mu.Unlock()

	e.publish(st)
}

// ApplyLocalEdit replaces the note body. The snapshot is persisted before
// returning; the remote push is debounced, and repeated edits within the
// window collapse into one push carrying the last body. No-op until
// Initialize has installed a note.
func (e *Engine) ApplyLocalEdit(ctx context.Context, content string) {
	e.mu.Lock()
	if e.note == nil {
		e.mu.Unlock()
		return
	}
	e.note.SetContent(content)
	snapshot := *e.note

	if e.pending != nil {
		e.pending()
		e.pending = nil
	}
	if e.client != nil {
		e.pending = e.sched.Schedule(e.debounce, e.debouncedPush)
	}
	st := e.stateLocked()
	e.mu.Unlock()

	e.saveSnapshot(ctx, &snapshot)
	e.publish(st)
}

// ForceSyncNow cancels any pending debounce and pushes immediately,
// returning when the push has completed.
func (e *Engine) ForceSyncNow(ctx context.Context) {
	e.mu.Lock()
	if e.pending != nil {
		e.pending()
		e.pending = nil
	}
	e.mu.Unlock()

	e.pushNow(ctx)
}

// debouncedPush is the timer callback; it runs without a caller context.
func (e *Engine) debouncedPush() {
	e.pushNow(context.Background())
}

// pushNow upserts the current note. No-op when no note is present or
// remote access is not configured. Syncing is reset on every path; a
// failure only flips the observable flags — the locally persisted note is
// left untouched, and recovery waits for the next edit or explicit force.
func (e *Engine) pushNow(ctx context.Context) {
	e.mu.Lock()
	if e.note == nil || e.client == nil {
		e.mu.Unlock()
		return
	}
	e.syncing = true
	snapshot := *e.note
	st := e.stateLocked()
	e.mu.Unlock()

	e.publish(st)

	err := e.client.Upsert(ctx, &snapshot)

	e.mu.Lock()
	e.syncing = false
	if err != nil {
		e.connected = false
		e.lastErr = err
	} else {
		e.connected = true
		e.lastErr = nil
	}
	st = e.stateLocked()
	e.mu.Unlock()

	if err != nil {
		e.log.Warn(ctx, "push failed", "note_id", snapshot.Id, "error", err)
	} else {
		e.log.Debug(ctx, "push completed", "note_id", snapshot.Id)
	}
	e.publish(st)
}

// saveSnapshot mirrors the note to the local store. Failures are logged
// and swallowed: losing a display-cache write must never block editing.
func (e *Engine) saveSnapshot(ctx context.Context, note *models.Note) {
	if err := e.store.SaveNote(ctx, note); err != nil {
		e.log.Warn(ctx, "snapshot save failed", "note_id", note.Id, "error", err)
	}
}

// State returns a consistent snapshot of the observable engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	st := State{
		Syncing:   e.syncing,
		Connected: e.connected,
		HasError:  e.lastErr != nil,
		LastError: e.lastErr,
	}
	if e.note != nil {
		st.Content = e.note.Content
		st.LastUpdated = e.note.UpdatedAt
	}
	return st
}

// Subscribe registers fn to be called with a state snapshot after every
// committed transition. The returned function removes the subscription.
// fn runs on the transitioning goroutine and must not block.
func (e *Engine) Subscribe(fn func(State)) func() {
	e.subMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subMu.Unlock()

	return func() {
		e.subMu.Lock()
		delete(e.subs, id)
		e.subMu.Unlock()
	}
}

func (e *Engine) publish(st State) {
	e.subMu.Lock()
	fns := make([]func(State), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
