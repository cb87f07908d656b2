// Package storage provides the local persistent key-value store
// backing the catalog. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies; values are opaque blobs keyed by logical
// names (the catalog layers JSON on top).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// KV is a durable key-value store over a single SQLite table.
type KV struct {
	db *sql.DB
}

// Open creates or opens the store at the given path.
// It expands a leading ~, creates parent directories and runs
// the schema migration.
func Open(path string) (*KV, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	kv := &KV{db: db}

	if err := kv.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return kv, nil
}

// migrate creates the schema if it doesn't exist.
func (k *KV) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`
	_, err := k.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (k *KV) Close() error {
	if k.db != nil {
		return k.db.Close()
	}
	return nil
}

// Get returns the value stored under key, or (nil, false, nil) when
// the key is absent.
func (k *KV) Get(key string) ([]byte, bool, error) {
	return get(k.db, key)
}

// Has reports whether a value exists under key.
func (k *KV) Has(key string) (bool, error) {
	_, ok, err := get(k.db, key)
	return ok, err
}

// Put stores value under key, replacing any previous value.
func (k *KV) Put(key string, value []byte) error {
	return put(k.db, key, value)
}

// Delete removes the value under key. Deleting an absent key is not
// an error.
func (k *KV) Delete(key string) error {
	return del(k.db, key)
}

// Tx is a read-modify-write transaction over the store. Writes only
// become visible when the Update callback returns nil; any error rolls
// everything back, so a failed operation leaves stored state unchanged.
type Tx struct {
	tx *sql.Tx
}

// Get returns the value stored under key within the transaction.
func (t *Tx) Get(key string) ([]byte, bool, error) {
	return get(t.tx, key)
}

// Has reports whether a value exists under key within the transaction.
func (t *Tx) Has(key string) (bool, error) {
	_, ok, err := get(t.tx, key)
	return ok, err
}

// Put stores value under key within the transaction.
func (t *Tx) Put(key string, value []byte) error {
	return put(t.tx, key, value)
}

// Delete removes the value under key within the transaction.
func (t *Tx) Delete(key string) error {
	return del(t.tx, key)
}

// Update runs fn inside a transaction, committing on nil and rolling
// back on error or panic.
func (k *KV) Update(fn func(tx *Tx) error) error {
	tx, err := k.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	done := false
	defer func() {
		if !done {
			tx.Rollback() //nolint:errcheck // Rollback after failure is best-effort
		}
	}()

	if err := fn(&Tx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit transaction: %w", err)
	}
	done = true
	return nil
}

// querier is the shared subset of *sql.DB and *sql.Tx used below.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func get(q querier, key string) ([]byte, bool, error) {
	var value []byte
	err := q.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

func put(q querier, key string, value []byte) error {
	_, err := q.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %q: %w", key, err)
	}
	return nil
}

func del(q querier, key string) error {
	if _, err := q.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete key %q: %w", key, err)
	}
	return nil
}
