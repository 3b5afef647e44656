package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"supabase_url":         "https://json.supabase.co",
		"supabase_anon_key":    "json-key",
		"database_path":        "json.db",
		"debounce_interval":    "2s",
		"widget_poll_interval": "5m",
		"request_timeout":      "30s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://json.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "json-key", cfg.SupabaseAnonKey)
		assert.Equal(t, "json.db", cfg.DatabasePath)
		assert.Equal(t, 2*time.Second, cfg.DebounceInterval)
		assert.Equal(t, 5*time.Minute, cfg.WidgetPollInterval)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabasePath: "keep.db", DebounceInterval: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.DebounceInterval)
	})

	t.Run("partial JSON keeps earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"supabase_url": "https://partial.supabase.co",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://partial.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "jotsync.db", cfg.DatabasePath)
		assert.Equal(t, 1500*time.Millisecond, cfg.DebounceInterval)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
