package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/afontana/shopfloor/internal/cli"
	"github.com/afontana/shopfloor/internal/config"
	"github.com/afontana/shopfloor/internal/db"
	"github.com/afontana/shopfloor/internal/repository"
	"github.com/afontana/shopfloor/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config path: env var or default ~/.shopfloor/config.yaml
	configPath := os.Getenv("SHOPFLOOR_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configPath = filepath.Join(home, ".shopfloor", "config.yaml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// SHOPFLOOR_DB overrides the configured database path.
	dbPath := cfg.Database.Path
	if env := os.Getenv("SHOPFLOOR_DB"); env != "" {
		dbPath = env
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	lineRepo := repository.NewSQLiteOrderLineRepo(database)
	seqRepo := repository.NewSQLiteSequenceRepo(database)

	// Wire services
	capacity := cfg.ToRegistry()
	orders := service.NewOrderService(lineRepo, seqRepo)
	plans := service.NewPlanService(lineRepo, orders, capacity, cfg.Policy(), cfg.Scheduling.HorizonDays)

	app := &cli.App{
		Orders:      orders,
		Plans:       plans,
		Capacity:    capacity,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
