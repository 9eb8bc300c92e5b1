// Package testutil contains utilities for writing tests.
package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ErikKalkoken/go-set"

	"github.com/edbuddy/edbuddy/internal/app/storage"
)

// NewDBInMemory creates and returns a database in memory for tests.
// Important: This variant is not suitable for DB code that runs in goroutines.
func NewDBInMemory() (*sql.DB, *storage.Storage, Factory) {
	// in-memory DB for faster running tests
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		panic(err)
	}
	// every new connection would open a new empty in-memory database
	db.SetMaxOpenConns(1)
	if err := storage.ApplyMigrations(db); err != nil {
		panic(err)
	}
	st := storage.New(db, db)
	factory := NewFactory(st)
	return db, st, factory
}

// NewDBOnDisk creates and returns a new temporary database on disk for tests.
// The database is automatically removed once the tests have concluded.
func NewDBOnDisk(t testing.TB) (*sql.DB, *storage.Storage, Factory) {
	// real DB for more thorough tests
	p := filepath.Join(t.TempDir(), "edbuddy_test.sqlite")
	dbRW, dbRO, err := storage.InitDB("file:" + p)
	if err != nil {
		panic(err)
	}
	t.Cleanup(func() {
		dbRO.Close()
	})
	st := storage.New(dbRW, dbRO)
	factory := NewFactory(st)
	return dbRW, st, factory
}

// MustTruncateTables is like [TruncateTables] but will panic on any error.
func MustTruncateTables(dbRW *sql.DB) {
	err := TruncateTables(dbRW)
	if err != nil {
		panic(err)
	}
}

// TruncateTables will purge data from all data tables. This is meant for tests.
func TruncateTables(dbRW *sql.DB) error {
	_, err := dbRW.Exec("PRAGMA foreign_keys = 0")
	if err != nil {
		return err
	}
	sql := `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT IN ('migrations', 'sqlite_sequence')`
	rows, err := dbRW.Query(sql)
	if err != nil {
		return err
	}
	var tables set.Set[string]
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables.Add(name)
	}
	rows.Close()
	for n := range tables.All() {
		sql := fmt.Sprintf("DELETE FROM %s;", n)
		_, err := dbRW.Exec(sql)
		if err != nil {
			return err
		}
	}
	for n := range tables.All() {
		sql := fmt.Sprintf("DELETE FROM SQLITE_SEQUENCE WHERE name='%s'", n)
		_, err := dbRW.Exec(sql)
		if err != nil {
			return err
		}
	}
	_, err = dbRW.Exec("PRAGMA foreign_keys = 1")
	if err != nil {
		return err
	}
	return nil
}
