// Package sqlitestore keeps blobs in a single-table SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/listkeeper/internal/store"
)

// FileName is the database file created inside the data directory.
const FileName = "listkeeper.sqlite"

// DB is a store.Blob backed by SQLite.
type DB struct {
	db  *sql.DB
	ctx context.Context
}

// Open opens (or creates) the database in dir.
func Open(ctx context.Context, dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return OpenFile(ctx, filepath.Join(dir, FileName))
}

// OpenFile opens the database at path. ":memory:" works for tests.
func OpenFile(ctx context.Context, path string) (*DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &DB{db: db, ctx: ctx}, nil
}

func (d *DB) Get(key string) ([]byte, error) {
	var v []byte
	err := d.db.QueryRowContext(d.ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("select: %w", err)
	}
	return v, nil
}

// Set upserts in one statement, so the row flips from old to new atomically.
func (d *DB) Set(key string, value []byte) error {
	_, err := d.db.ExecContext(d.ctx, `
		INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (d *DB) Close() error { return d.db.Close() }
