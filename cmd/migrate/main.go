// Command migrate manages the site's Postgres schema and seed data.
//
//	migrate up       apply pending migrations
//	migrate status   list migrations and whether they are applied
//	migrate seed     insert the planned offerings into an empty trips table
//
// DATABASE_URL selects the database; a .env file is read when present.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
