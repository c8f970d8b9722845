package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avikram/semtrack/internal/cli"
	"github.com/avikram/semtrack/internal/cli/formatter"
	"github.com/avikram/semtrack/internal/db"
	"github.com/avikram/semtrack/internal/repository"
	"github.com/avikram/semtrack/internal/schedule"
	"github.com/avikram/semtrack/internal/state"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env next to the binary can set any SEMTRACK_* variable.
	// Missing files are fine; the environment wins over the file.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.semtrack/semtrack.db
	dbPath := os.Getenv("SEMTRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".semtrack", "semtrack.db")
	}

	source := schedule.Source{
		URL:  os.Getenv("SEMTRACK_SCHEDULE_URL"),
		Path: os.Getenv("SEMTRACK_SCHEDULE_FILE"),
	}
	if source.URL == "" && source.Path == "" {
		return fmt.Errorf("no schedule source: set SEMTRACK_SCHEDULE_URL or SEMTRACK_SCHEDULE_FILE")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	// Fetch the schedule up front; every command needs it.
	ctx := context.Background()
	var stopSpinner func()
	if interactive && source.Path == "" {
		stopSpinner = formatter.StartSpinner("Fetching schedule...")
	}
	sched, err := source.Load(ctx)
	if stopSpinner != nil {
		stopSpinner()
	}
	if err != nil {
		return err
	}

	prefs := repository.NewSQLitePreferenceRepo(database)

	app := &cli.App{
		Schedule: sched,
		Records:  schedule.Flatten(sched),
		State:    state.Load(ctx, prefs, sched),
		Source:   source,
	}
	app.IsInteractive = func() bool { return interactive }

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
