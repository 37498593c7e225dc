package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmcalloway/proforma/internal/cli"
	"github.com/jmcalloway/proforma/internal/db"
	"github.com/jmcalloway/proforma/internal/repository"
	"github.com/jmcalloway/proforma/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.proforma/proforma.db
	dbPath := os.Getenv("PROFORMA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".proforma", "proforma.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	itemRepo := repository.NewSQLiteBudgetItemRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)

	// Wire unit of work for the transactional write-back
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("PROFORMA_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Timeline: service.NewTimelineService(projectRepo, itemRepo, milestoneRepo, depRepo, uow, observers...),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
