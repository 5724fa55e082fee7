// Package migrations embeds the database schema and applies it with goose.
// Each supported database/sql driver has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql client/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a database handle.
	ErrNilDB = errors.New("db is nil")
	// ErrUnsupportedDriver is returned for drivers without migrations.
	ErrUnsupportedDriver = errors.New("unsupported driver")
)

// dialects maps a database/sql driver name to the goose dialect and the
// directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"pgx":     {dialect: "pgx", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite3"},
}

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	return up(db, d.dialect, d.dir)
}

// MigrateClient applies the schema of the terminal client's SQLite session
// store.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", "client")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
