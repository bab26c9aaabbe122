package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/pepshop/pepshop-api/migrations"
)

// runMigrations executes the embedded goose migrations against the open
// database handle. The "up" command also runs automatically at startup.
func runMigrations(db *sql.DB, command string, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&slogGooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
	if err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	return nil
}

// slogGooseLogger adapts goose's logger to slog.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...), slog.String("component", "goose"))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...), slog.String("component", "goose"))
}
