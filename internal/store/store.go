// Package store caches fetched ontology documents in a local SQLite
// database keyed by a hash of the source descriptor.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DocumentCache stores raw ontology text between runs so that repeated
// loads avoid the network.
type DocumentCache struct {
	db     *sql.DB
	path   string
	closed atomic.Bool
}

// DefaultDir returns the default cache directory (~/.soli/cache).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".soli", "cache")
	}
	return filepath.Join(home, ".soli", "cache")
}

// Open opens (or creates) the document cache under dir.
func Open(dir string) (*DocumentCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	dbPath := filepath.Join(dir, "soli.db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	c := &DocumentCache{db: db, path: dbPath}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return c, nil
}

func (c *DocumentCache) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		descriptor TEXT NOT NULL,
		body TEXT NOT NULL,
		fetched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_documents_fetched ON documents(fetched_at DESC);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Close releases the underlying database. Further operations return
// ErrClosed; closing twice is a no-op.
func (c *DocumentCache) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.db.Close()
}

// Key hashes a source descriptor into a stable cache key.
func Key(descriptor string) string {
	sum := sha256.Sum256([]byte(descriptor))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached document for a source descriptor, or a
// NotFoundError if the descriptor has never been stored.
func (c *DocumentCache) Get(ctx context.Context, descriptor string) (string, error) {
	if c.closed.Load() {
		return "", ErrClosed
	}

	var body string
	err := c.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE key = ?`, Key(descriptor),
	).Scan(&body)
	if err == sql.ErrNoRows {
		return "", &NotFoundError{Key: descriptor}
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return body, nil
}

// Put stores or replaces the cached document for a source descriptor.
func (c *DocumentCache) Put(ctx context.Context, descriptor, body string) error {
	if c.closed.Load() {
		return ErrClosed
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO documents (key, descriptor, body, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, Key(descriptor), descriptor, body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Delete removes the cached document for a source descriptor.
func (c *DocumentCache) Delete(ctx context.Context, descriptor string) error {
	if c.closed.Load() {
		return ErrClosed
	}

	_, err := c.db.ExecContext(ctx,
		`DELETE FROM documents WHERE key = ?`, Key(descriptor))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}
