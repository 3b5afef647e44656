package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory seeds the environment first when present; a missing
// file is not an error.
//
// Recognized variables:
//
//	SUPABASE_URL       remote collection base URL
//	SUPABASE_ANON_KEY  API key
//	JOT_DB_PATH        local snapshot database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("SUPABASE_URL")); v != "" {
		cfg.SupabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")); v != "" {
		cfg.SupabaseAnonKey = v
	}
	if v := strings.TrimSpace(os.Getenv("JOT_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
}
