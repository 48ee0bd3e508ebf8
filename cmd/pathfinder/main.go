package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pathfinderhq/pathfinder/internal/catalog"
	"github.com/pathfinderhq/pathfinder/internal/cli"
	"github.com/pathfinderhq/pathfinder/internal/db"
	"github.com/pathfinderhq/pathfinder/internal/normalize"
	"github.com/pathfinderhq/pathfinder/internal/repository"
	"github.com/pathfinderhq/pathfinder/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pathfinder/pathfinder.db
	dbPath := os.Getenv("PATHFINDER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pathfinder", "pathfinder.db")
	}

	// Load and validate the catalog once; an integrity violation is fatal.
	cat, err := catalog.LoadOrDefault(os.Getenv("PATHFINDER_CATALOG"))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	consultationRepo := repository.NewSQLiteConsultationRepo(database)
	normalizer := normalize.NewKeywordNormalizer(cat.Synonyms)

	var observer service.AnswerObserver
	if os.Getenv("PATHFINDER_LOG_ANSWERS") != "" {
		observer = service.NewLogAnswerObserver(os.Stderr)
	}

	app := &cli.App{
		Advisor: service.NewAdvisorService(cat, normalizer, consultationRepo, observer),
		Careers: service.NewCareerService(cat),
		History: service.NewHistoryService(consultationRepo),
		Catalog: cat,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
