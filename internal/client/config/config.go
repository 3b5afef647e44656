package config

import "time"

// Config holds runtime settings for the JotSync client.
//
// Fields:
//   - SupabaseURL / SupabaseAnonKey: remote notes collection endpoint and
//     key; both empty selects local-only mode.
//   - DatabasePath: local snapshot database file, shared with passive
//     reader surfaces.
//   - DebounceInterval: quiet period after the last edit before a push.
//   - WidgetPollInterval: how often passive readers re-read the snapshot.
//   - RequestTimeout: transport timeout for remote requests.
type Config struct {
	SupabaseURL        string
	SupabaseAnonKey    string
	DatabasePath       string
	DebounceInterval   time.Duration
	WidgetPollInterval time.Duration
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SupabaseURL = ""
	c.SupabaseAnonKey = ""
	c.DatabasePath = "jotsync.db"
	c.DebounceInterval = 1500 * time.Millisecond
	c.WidgetPollInterval = 15 * time.Minute
	c.RequestTimeout = 10 * time.Second
}

// IsRemoteConfigured reports whether remote access can be used. False is
// local-only mode, not an error.
func (c *Config) IsRemoteConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally seeded from .env), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
