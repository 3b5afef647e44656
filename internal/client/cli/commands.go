package cli

import (
	"context"
	"os"
	"time"
)

// Show prints the current note body, or a placeholder when it is empty.
func (a *App) Show(ctx context.Context) error {
	st := a.engine.State()
	if st.Content == "" {
		printlnFn("(empty note)")
		return nil
	}
	printlnFn(st.Content)
	return nil
}

// Edit reads a multi-line replacement body and applies it as one edit.
func (a *App) Edit(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Enter the new note text", os.Stdout)
	if err != nil {
		return err
	}
	a.engine.ApplyLocalEdit(ctx, text)
	return nil
}

// Append adds a line to the end of the note. Keystroke-level edits arrive
// as whole-content replacements, so this goes through the same path.
func (a *App) Append(ctx context.Context, text string) error {
	if text == "" {
		printlnFn("Nothing to append")
		return nil
	}
	a.applyAppend(ctx, text)
	return nil
}

// AppendBold appends text wrapped in markdown bold markers.
func (a *App) AppendBold(ctx context.Context, text string) error {
	if text == "" {
		printlnFn("Nothing to append")
		return nil
	}
	a.applyAppend(ctx, WrapBold(text))
	return nil
}

// AppendItalic appends text wrapped in markdown italic markers.
func (a *App) AppendItalic(ctx context.Context, text string) error {
	if text == "" {
		printlnFn("Nothing to append")
		return nil
	}
	a.applyAppend(ctx, WrapItalic(text))
	return nil
}

func (a *App) applyAppend(ctx context.Context, line string) {
	content := a.engine.State().Content
	if content == "" {
		content = line
	} else {
		content = content + "\n" + line
	}
	a.engine.ApplyLocalEdit(ctx, content)
}

// Sync forces an immediate push and reports the outcome.
func (a *App) Sync(ctx context.Context) error {
	a.engine.ForceSyncNow(ctx)

	st := a.engine.State()
	if st.HasError {
		printlnFn("Sync failed:", st.LastError)
		return nil
	}
	printlnFn("Synced")
	return nil
}

// Status prints the observable engine state.
func (a *App) Status(ctx context.Context) error {
	st := a.engine.State()

	printlnFn("Connected:", st.Connected)
	printlnFn("Syncing:  ", st.Syncing)
	if st.HasError {
		printlnFn("Last error:", st.LastError)
	}
	if !st.LastUpdated.IsZero() {
		printlnFn("Updated:  ", st.LastUpdated.Local().Format(time.RFC822))
	}
	return nil
}

// statusLine renders the compact prompt indicator.
func (a *App) statusLine() string {
	st := a.engine.State()
	switch {
	case st.Syncing:
		return "(syncing)"
	case st.HasError:
		return "(offline)"
	case st.Connected:
		return "(ok)"
	default:
		return ""
	}
}
