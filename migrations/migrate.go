// Package migrations embeds the goose SQL migrations for the local cache
// database. The cache schema is strictly versioned: SQLite cannot alter the
// primary key of an existing table, so any key-shape change is expressed as
// one migration that drops the affected table and a subsequent one that
// recreates it.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
