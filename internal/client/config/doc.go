// Package config loads runtime configuration for the JotSync client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (see parseEnv): SUPABASE_URL, SUPABASE_ANON_KEY, JOT_DB_PATH.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the hosted notes collection
//	-k string   API key (carried as apikey and bearer headers)
//	-d string   path to the local snapshot database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "1500ms" or integer nanoseconds:
//
//	{
//	  "supabase_url": "https://xyz.supabase.co",
//	  "supabase_anon_key": "...",
//	  "database_path": "jotsync.db",
//	  "debounce_interval": "1500ms",
//	  "widget_poll_interval": "15m",
//	  "request_timeout": "10s"
//	}
//
// Remote access is considered configured only when both the URL and the key
// are non-empty; an empty pair selects local-only mode, which is a normal
// operating mode rather than an error.
package config
