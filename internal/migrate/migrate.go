// Package migrate applies SQL migrations to a SQLite database.
package migrate

import (
	"cmp"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ErikKalkoken/go-set"
)

// MigrateFS is a filesystem with the migration files in a folder called "migrations".
type MigrateFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

// Run applies all unapplied migrations.
func Run(db *sql.DB, migrations MigrateFS) error {
	if err := createMigrationTracking(db); err != nil {
		return fmt.Errorf("migration tracking: %w", err)
	}
	if err := applyNewMigrations(db, migrations); err != nil {
		return err
	}
	return nil
}

var createMigrationTrackingSQL = `
CREATE TABLE IF NOT EXISTS migrations(
	id INTEGER PRIMARY KEY NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	name TEXT NOT NULL,
	UNIQUE (name)
);`

func createMigrationTracking(db *sql.DB) error {
	_, err := db.Exec(createMigrationTrackingSQL)
	return err
}

func recordMigration(tx *sql.Tx, name string) error {
	_, err := tx.Exec(`INSERT INTO migrations(name) VALUES(?);`, name)
	return err
}

func listMigrationNames(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM migrations ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

type migration struct {
	name     string
	filename string
}

// applyNewMigrations applies any new migrations in alphabetical order.
// Each migration runs in it's own transaction.
func applyNewMigrations(db *sql.DB, migrations MigrateFS) error {
	names, err := listMigrationNames(db)
	if err != nil {
		return err
	}
	applied := set.Of(names...)
	c, err := migrations.ReadDir("migrations")
	if err != nil {
		return err
	}
	unapplied := make([]migration, 0)
	for _, entry := range c {
		fn := entry.Name()
		ext := filepath.Ext(fn)
		if ext != ".sql" {
			continue
		}
		name := strings.TrimSuffix(fn, ext)
		if applied.Contains(name) {
			continue
		}
		unapplied = append(unapplied, migration{name: name, filename: fn})
	}
	if len(unapplied) == 0 {
		slog.Info("No new migrations to apply")
		return nil
	}
	slog.Info("Applying new migrations", "count", len(unapplied))
	slices.SortFunc(unapplied, func(a migration, b migration) int {
		return cmp.Compare(a.name, b.name)
	})
	for _, m := range unapplied {
		p := fmt.Sprintf("migrations/%s", m.filename) // FS uses slashes on all platforms incl. Windows
		data, err := migrations.ReadFile(p)
		if err != nil {
			return err
		}
		if err := applyMigration(db, m.name, string(data)); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		slog.Info("Successfully applied new migration", "name", m.name)
	}
	return nil
}

func applyMigration(db *sql.DB, name, query string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(query); err != nil {
		return err
	}
	if err := recordMigration(tx, name); err != nil {
		return err
	}
	return tx.Commit()
}
