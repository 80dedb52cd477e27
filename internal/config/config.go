package config

// Config holds runtime settings for the work log.
//
// Fields:
//   - DatabaseDriver: "sqlite" (default) or "pgx" for PostgreSQL.
//   - DatabaseDSN: file path for sqlite, connection string for pgx.
//   - LogFile: JSON log destination; "-" is stderr, "" disables logging.
//   - LogLevel: debug, info, warn or error.
//   - NoColor: disables colored terminal output.
//   - ShowVersion: print build data and exit (flag only).
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	LogFile        string
	LogLevel       string
	NoColor        bool
	ShowVersion    bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "worklog.db"
	c.LogFile = "worklog.log"
	c.LogLevel = "info"
	c.NoColor = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
