package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/worklog/internal/buildinfo"
	"github.com/dmitrijs2005/worklog/internal/cli"
	"github.com/dmitrijs2005/worklog/internal/config"
	"github.com/dmitrijs2005/worklog/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "worklog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	if cfg.ShowVersion {
		buildinfo.PrintBuildData(os.Stdout)
		return nil
	}

	logger, closer, err := logging.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info(ctx, "starting worklog", append(buildinfo.Attrs(), "driver", cfg.DatabaseDriver)...)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
