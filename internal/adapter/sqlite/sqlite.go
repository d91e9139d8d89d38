// Package sqlite implements the record store on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bmitracker/internal/domain"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// created_at is stored as fixed-width UTC text so that lexical order matches
// chronological order.
const timeLayout = "2006-01-02T15:04:05.000000Z"

//go:embed migrations/*.sql
var migrations embed.FS

// DB wraps a *sql.DB and implements domain.RecordRepository.
type DB struct {
	sql *sql.DB
}

var _ domain.RecordRepository = (*DB)(nil)

// Open opens (creating if needed) the database file at path and runs
// migrations.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := path
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, storageErr("open", err)
			}
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	s, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storageErr("open", err)
	}
	// One process, one connection. This also keeps an in-memory database
	// alive for the lifetime of the handle.
	s.SetMaxOpenConns(1)
	s.SetMaxIdleConns(1)
	s.SetConnMaxLifetime(0)
	s.SetConnMaxIdleTime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.PingContext(pingCtx); err != nil {
		_ = s.Close()
		return nil, storageErr("ping", err)
	}

	if err := migrateUp(s); err != nil {
		_ = s.Close()
		return nil, storageErr("migrate", err)
	}
	return &DB{sql: s}, nil
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sql.Close()
}

func migrateUp(s *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	// m.Close would close the shared *sql.DB.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: sqlite %s: %w", domain.ErrStorage, op, err)
}
