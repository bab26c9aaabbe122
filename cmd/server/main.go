package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pepshop/pepshop-api/internal/config"
	"github.com/pepshop/pepshop-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command and exit: up, down, status")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and the database, applies
// pending migrations and starts the HTTP server. A non-empty migrateCmd
// runs that migration command instead of serving.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("failed to close database", "error", err)
			}
		}()
		return runMigrations(db, migrateCmd, log)
	}

	if err := runMigrations(db, "up", log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.newRouter())
}
