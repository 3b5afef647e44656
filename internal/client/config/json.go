package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/jotsync/internal/flagx"
	"github.com/dmitrijs2005/jotsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "1500ms" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	SupabaseURL        string         `json:"supabase_url"`
	SupabaseAnonKey    string         `json:"supabase_anon_key"`
	DatabasePath       string         `json:"database_path"`
	DebounceInterval   timex.Duration `json:"debounce_interval"`
	WidgetPollInterval timex.Duration `json:"widget_poll_interval"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (flagx.JsonConfigFlags); an
// empty path means no JSON is loaded. Read or unmarshal errors panic —
// a config file that exists but cannot be parsed is a deployment mistake
// the caller should see immediately.
//
// Zero-valued JSON fields leave the corresponding Config field unchanged.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.SupabaseURL != "" {
		cfg.SupabaseURL = jc.SupabaseURL
	}
	if jc.SupabaseAnonKey != "" {
		cfg.SupabaseAnonKey = jc.SupabaseAnonKey
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DebounceInterval.Duration > 0 {
		cfg.DebounceInterval = time.Duration(jc.DebounceInterval.Duration)
	}
	if jc.WidgetPollInterval.Duration > 0 {
		cfg.WidgetPollInterval = time.Duration(jc.WidgetPollInterval.Duration)
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
