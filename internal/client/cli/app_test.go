package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jotsync/internal/client/config"
	"github.com/dmitrijs2005/jotsync/internal/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = ":memory:"

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := NewApp(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.store.Close() })

	app.engine.Initialize(context.Background(), app.userId)
	return app
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestNewApp_LocalOnly_AssignsInstallationId(t *testing.T) {
	app := newTestApp(t)

	assert.NotEmpty(t, app.userId)
	assert.True(t, app.engine.State().Connected)
}

func TestAppendAndShow(t *testing.T) {
	app := newTestApp(t)
	printed := capturePrints(t)
	ctx := context.Background()

	require.NoError(t, app.Append(ctx, "first line"))
	require.NoError(t, app.Append(ctx, "second line"))
	require.NoError(t, app.Show(ctx))

	assert.Contains(t, *printed, "first line\nsecond line")
}

func TestAppendBoldAndItalic_WrapMarkers(t *testing.T) {
	app := newTestApp(t)
	capturePrints(t)
	ctx := context.Background()

	require.NoError(t, app.AppendBold(ctx, "loud"))
	require.NoError(t, app.AppendItalic(ctx, "quiet"))

	assert.Equal(t, "**loud**\n*quiet*", app.engine.State().Content)
}

func TestShow_EmptyNotePlaceholder(t *testing.T) {
	app := newTestApp(t)
	printed := capturePrints(t)

	require.NoError(t, app.Show(context.Background()))

	assert.Contains(t, *printed, "(empty note)")
}

func TestStatusLine_LocalOnly(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, "(ok)", app.statusLine())
}

func TestSync_LocalOnlyReportsSynced(t *testing.T) {
	app := newTestApp(t)
	printed := capturePrints(t)

	require.NoError(t, app.Sync(context.Background()))

	assert.Contains(t, *printed, "Synced")
}
