package config

import (
	"flag"
	"os"

	"github.com/raghhhava7/devclimate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-p int      history page size (default from Config)
//	-d string   local state database path (default from Config)
//	-l string   log level (default from Config)
//	-s string   city to search right after the dashboard opens
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d", "-l", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend server")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "history page size")
	fs.StringVar(&cfg.StatePath, "d", cfg.StatePath, "local state database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.StartupSearch, "s", cfg.StartupSearch, "city to search once the dashboard opens")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
