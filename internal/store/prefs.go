// Package store provides the SQLite-backed key-value store for persisted preferences.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Prefs is a small string key-value store kept in a SQLite database.
type Prefs struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "benzconfig")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "benzconfig")
}

// DefaultPath returns the default database location.
func DefaultPath() string {
	return filepath.Join(DataDir(), "prefs.db")
}

// Open opens or creates the preferences database at the given path.
func Open(dbPath string) (*Prefs, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Prefs{db: db}, nil
}

// Close closes the database.
func (p *Prefs) Close() error {
	return p.db.Close()
}

// Get returns the value stored under key. ok is false when the key is absent.
func (p *Prefs) Get(key string) (value string, ok bool, err error) {
	err = p.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetMany writes all values in a single transaction.
func (p *Prefs) SetMany(values map[string]string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range values {
		_, err = tx.Exec(`INSERT OR REPLACE INTO prefs (key, value, updated_at)
			VALUES (?, ?, ?)`, k, v, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes the given keys. Missing keys are ignored.
func (p *Prefs) Delete(keys ...string) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, k := range keys {
		if _, err := tx.Exec("DELETE FROM prefs WHERE key = ?", k); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// All returns every stored key and value.
func (p *Prefs) All() (map[string]string, error) {
	rows, err := p.db.Query("SELECT key, value FROM prefs")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		result[k] = v
	}
	return result, rows.Err()
}
