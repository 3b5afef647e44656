package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/jotsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the hosted notes collection
//	-k string   API key
//	-d string   path to the local snapshot database
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-k", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SupabaseURL, "u", cfg.SupabaseURL, "base URL of the hosted notes collection")
	fs.StringVar(&cfg.SupabaseAnonKey, "k", cfg.SupabaseAnonKey, "API key for the hosted notes collection")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local snapshot database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
