package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/worklog/internal/config"
	"github.com/dmitrijs2005/worklog/internal/database"
	"github.com/dmitrijs2005/worklog/internal/logging"
	"github.com/dmitrijs2005/worklog/internal/repositories/entries"
	"github.com/dmitrijs2005/worklog/internal/services"
)

type App struct {
	entries services.EntryService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	screen  screen
	palette palette
	db      *sql.DB
}

// NewApp opens the configured store and wires the entry service to stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	driver, err := database.ParseDriver(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	logger = logger.With("session_id", uuid.NewString())

	db, err := database.Open(ctx, driver, c.DatabaseDSN, logger)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if c.NoColor {
		color.NoColor = true
	}

	repo := entries.NewSQLRepository(db, driver)
	svc := services.NewEntryService(repo, logger)

	a := newApp(svc, logger, os.Stdin, os.Stdout)
	a.db = db
	a.screen = newTerminalScreen(os.Stdout)
	return a, nil
}

// newApp builds an App over arbitrary streams. The screen is never cleared.
func newApp(svc services.EntryService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		entries: svc,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		screen:  noopScreen{},
		palette: newPalette(),
	}
}

// Run shows the main menu until the user quits or input ends. End of input is
// a normal exit; storage failures are logged and returned.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "session started")
	err := a.mainMenu(ctx)
	switch {
	case err == nil:
		a.logger.Info(ctx, "session finished")
		return nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(a.out)
		a.logger.Info(ctx, "input closed, session finished")
		return nil
	default:
		a.logger.Error(ctx, "session aborted", "error", err)
		return err
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
