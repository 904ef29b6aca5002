// Package migration manages the SQLite store schema. Migrations are applied
// in version order inside a transaction and recorded so a newer binary can
// upgrade an older store file in place.
package migration

import (
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// Migration represents a single schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// StoreMigrations is the schema history of the shared widget store.
var StoreMigrations = []Migration{
	{
		Version: 1,
		Name:    "create_widget_store",
		SQL: `CREATE TABLE IF NOT EXISTS widget_store (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	},
}

// Runner applies pending migrations to a store database
type Runner struct {
	db         *sql.DB
	migrations []Migration
}

// NewRunner creates a migration runner for the given database
func NewRunner(db *sql.DB, migrations []Migration) *Runner {
	return &Runner{db: db, migrations: migrations}
}

// Run applies all pending migrations in version order.
func (r *Runner) Run() error {
	if err := r.ensureVersionTable(); err != nil {
		return err
	}

	current, err := r.currentVersion()
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		if m.Version > current {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, m := range pending {
		if err := r.apply(m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
	}
	return nil
}

func (r *Runner) ensureVersionTable() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

func (r *Runner) currentVersion() (int, error) {
	var version sql.NullInt64
	err := r.db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}

func (r *Runner) apply(m Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	_, err = tx.Exec(
		`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
		m.Version, m.Name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}
