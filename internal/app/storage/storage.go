// Package storage contains the logic for storing application data into a local SQLite database.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Storage provides access to the database.
// Writes go through dbRW, which is limited to a single connection.
type Storage struct {
	dbRO *sql.DB
	dbRW *sql.DB
}

// New returns a new storage object.
func New(dbRW *sql.DB, dbRO *sql.DB) *Storage {
	st := &Storage{dbRO: dbRO, dbRW: dbRW}
	return st
}

// InitDB initializes the database and returns a read-write and a read-only connection pool.
// It applies any new migrations.
func InitDB(dsn string) (dbRW *sql.DB, dbRO *sql.DB, err error) {
	v := url.Values{}
	v.Add("_fk", "on")
	v.Add("_journal_mode", "WAL")
	v.Add("_synchronous", "normal")
	v.Add("_busy_timeout", "5000")
	v.Add("_txlock", "immediate")
	dsnRW := fmt.Sprintf("%s?%s", dsn, v.Encode())
	slog.Debug("Connecting to sqlite", "dsn", dsnRW)
	dbRW, err = sql.Open("sqlite3", dsnRW)
	if err != nil {
		return nil, nil, fmt.Errorf("open RW database %s: %w", dsn, err)
	}
	dbRW.SetMaxOpenConns(1)
	if err := ApplyMigrations(dbRW); err != nil {
		dbRW.Close()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}
	v.Set("mode", "ro")
	v.Del("_txlock")
	dsnRO := fmt.Sprintf("%s?%s", dsn, v.Encode())
	dbRO, err = sql.Open("sqlite3", dsnRO)
	if err != nil {
		dbRW.Close()
		return nil, nil, fmt.Errorf("open RO database %s: %w", dsn, err)
	}
	slog.Info("Connected to database")
	return dbRW, dbRO, nil
}

// ApplyMigrations applies all new migrations to a database.
func ApplyMigrations(db *sql.DB) error {
	return migrate.Run(db, migrationsFS)
}

// convertGetError converts a not found error into the app's not found error.
// All other errors are passed through.
func convertGetError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return app.ErrNotFound
	}
	return err
}
