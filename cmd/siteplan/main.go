package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avollmer/siteplan/internal/cli"
	"github.com/avollmer/siteplan/internal/cli/formatter"
	"github.com/avollmer/siteplan/internal/config"
	"github.com/avollmer/siteplan/internal/db"
	"github.com/avollmer/siteplan/internal/repository"
	"github.com/avollmer/siteplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.NoColor || !(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		formatter.DisableColor()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case logging is opt-in via SITEPLAN_LOG.
	var observers []service.UseCaseObserver
	if cfg.LogPath != "" {
		logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observers = append(observers, service.NewLogUseCaseObserver(logFile))
	}

	stores := repository.NewStores(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects: service.NewProjectService(stores.Projects),
		Export:   service.NewExportService(stores, observers...),
		Import:   service.NewImportService(uow, observers...),
		Copy:     service.NewCopyService(uow, observers...),
	}

	return cli.NewRootCmd(app).Execute()
}
