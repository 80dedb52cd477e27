// Package database opens the worklog store and brings its schema up to date.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/worklog/internal/common"
	"github.com/dmitrijs2005/worklog/internal/filex"
	"github.com/dmitrijs2005/worklog/internal/logging"
	"github.com/dmitrijs2005/worklog/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Driver is a database/sql driver name understood by Open.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "pgx"
)

// ParseDriver validates a configured driver name.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(s); d {
	case DriverSQLite, DriverPostgres:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedDriver, s)
	}
}

// gooseDialect maps a driver onto goose's dialect name and migration directory.
func (d Driver) gooseDialect() (string, string) {
	if d == DriverPostgres {
		return "postgres", migrations.PostgresDir
	}
	return "sqlite3", migrations.SQLiteDir
}

// RunMigrations applies all pending migrations for the given driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver Driver, logger logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseLogger{ctx: ctx, l: logger})

	dialect, dir := driver.gooseDialect()
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Open connects to the store and runs migrations.
func Open(ctx context.Context, driver Driver, dsn string, logger logging.Logger) (*sql.DB, error) {
	if _, err := ParseDriver(string(driver)); err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// One connection keeps ":memory:" databases alive across calls and the
	// app never issues concurrent statements anyway.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, db, driver, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info(ctx, "database ready", "driver", string(driver))
	return db, nil
}

// gooseLogger routes goose's printf-style output into the structured log so
// it never lands on the interactive screen.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
	os.Exit(1)
}
