package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pathsense/internal/cli"
	"github.com/alexanderramin/pathsense/internal/cli/formatter"
	"github.com/alexanderramin/pathsense/internal/config"
	"github.com/alexanderramin/pathsense/internal/db"
	"github.com/alexanderramin/pathsense/internal/repository"
	"github.com/alexanderramin/pathsense/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.DescribeError(err))
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	isTerminal := func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	formatter.SetColorEnabled(cfg.UseColor(isTerminal()))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	tracker := service.NewTrackerService(
		repository.NewSQLiteCareerPathRepo(database),
		repository.NewSQLiteSessionStateRepo(database),
		db.NewSQLiteUnitOfWork(database),
		observer,
	)

	app := &cli.App{
		Tracker:     tracker,
		Observer:    observer,
		DefaultUser: cfg.User,
		IsTerminal:  isTerminal,
	}

	return cli.NewRootCmd(app).Execute()
}
