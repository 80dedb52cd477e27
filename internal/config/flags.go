package config

import (
	"flag"

	"github.com/dmitrijs2005/worklog/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are considered; the rest of args is ignored.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-t", "-d", "-l", "-v"}, "-nocolor", "-version")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "t", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file, - for stderr")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.NoColor, "nocolor", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print build data and exit")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
