// Package widget implements the passive display surface: it re-reads the
// most recent local note snapshot on a timer and renders a preview. It
// never writes — the snapshot store is its only input, so it shows whatever
// the editor surface last persisted, even while that surface is offline.
package widget

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/jotsync/internal/client/localstore"
	"github.com/dmitrijs2005/jotsync/internal/logging"
)

// DefaultPollInterval matches the refresh cadence of the original widget
// timeline.
const DefaultPollInterval = 15 * time.Minute

// maxPreviewRunes bounds the rendered body so a long note stays glanceable.
const maxPreviewRunes = 280

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(46)

	titleStyle = lipgloss.NewStyle().Bold(true)

	timeStyle = lipgloss.NewStyle().Faint(true)

	placeholderStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Widget polls the snapshot store and renders the note.
type Widget struct {
	reader   localstore.Reader
	log      logging.Logger
	interval time.Duration
	out      io.Writer
}

// New builds a widget. A non-positive interval falls back to
// DefaultPollInterval.
func New(reader localstore.Reader, log logging.Logger, interval time.Duration, out io.Writer) *Widget {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Widget{reader: reader, log: log, interval: interval, out: out}
}

// Render reads the snapshot once and returns the framed preview. An absent
// or unreadable snapshot renders the placeholder — the widget must come up
// even before the editor has ever run.
func (w *Widget) Render(ctx context.Context) string {
	note, err := w.reader.LoadNote(ctx)
	if err != nil {
		w.log.Warn(ctx, "snapshot unreadable, rendering placeholder", "error", err)
		note = nil
	}

	title := titleStyle.Render("Jot")

	if note == nil {
		body := placeholderStyle.Render("No note yet — open the editor to start writing")
		return boxStyle.Render(title + "\n\n" + body)
	}

	body := Preview(note.Content, maxPreviewRunes)
	if body == "" {
		body = placeholderStyle.Render("(empty note)")
	}

	updated := timeStyle.Render("updated " + note.UpdatedAt.Local().Format(time.RFC822))
	return boxStyle.Render(title + "\n\n" + body + "\n\n" + updated)
}

// Run renders immediately, then re-renders on every tick until ctx is
// cancelled.
func (w *Widget) Run(ctx context.Context) {
	fmt.Fprintln(w.out, w.Render(ctx))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprintln(w.out, w.Render(ctx))
		}
	}
}

// Preview truncates s to at most max runes, collapsing the cut with an
// ellipsis. Trailing whitespace before the ellipsis is trimmed.
func Preview(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:max]), " \n\t") + "…"
}
