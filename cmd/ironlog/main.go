package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/ironlog/internal/cli"
	"github.com/alexanderramin/ironlog/internal/config"
	"github.com/alexanderramin/ironlog/internal/db"
	"github.com/alexanderramin/ironlog/internal/logging"
	"github.com/alexanderramin/ironlog/internal/repository"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	logger, logCloser := logging.Setup(logging.SetupParams{
		File:      cfg.Log.File,
		Level:     cfg.Log.Level,
		Stderr:    cfg.Log.Stderr,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	})
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewStateStore(
		repository.NewSQLiteKVRepo(database),
		repository.WithUnitOfWork(db.NewSQLiteUnitOfWork(database)),
	)

	state, report, err := service.LoadState(ctx, store, time.Now(), uuid.NewString)
	if err != nil {
		return fmt.Errorf("loading saved data: %w", err)
	}
	if report.RepairedWorkouts || report.ClearedActiveID != "" || len(report.Defaulted) > 0 {
		logger.Info("state loaded with repairs",
			"repaired_workouts", report.RepairedWorkouts,
			"cleared_active_id", report.ClearedActiveID,
			"defaulted", report.Defaulted)
	}

	opts := []service.Option{service.WithObserver(service.NewLogUseCaseObserver(logger))}
	app := &cli.App{
		Workouts:     service.NewWorkoutService(state, store, opts...),
		Timer:        service.NewTimerService(state, store, opts...),
		Notes:        service.NewNoteService(state, store, opts...),
		Settings:     service.NewSettingsService(state, store, opts...),
		Backups:      service.NewBackupService(state, store, cfg.BackupDir, opts...),
		PollInterval: cfg.Timer.PollInterval,
		Bell:         cfg.Timer.Bell,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.Execute(ctx, cli.NewRootCmd(app), os.Args[1:])
}
