// Package store is a local SQLite cache of fetched KGML documents. KEGG's
// REST service is rate-limited, so the kegg client consults this cache
// before going to the network. Only raw documents are cached; built graphs
// are never persisted.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CachedPathway is one cached document record.
type CachedPathway struct {
	PathwayID   string `json:"pathway_id"`
	Content     []byte `json:"-"`
	ContentHash string `json:"content_hash"`
	FetchedAt   string `json:"fetched_at"`
}

// Store wraps the SQLite database holding cached pathway documents.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the cache database at the given path and
// initialises the schema.
func New(dbPath string) (*Store, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging cache database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("running cache migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores (or replaces) a fetched document.
func (s *Store) Put(ctx context.Context, pathwayID string, content []byte) error {
	hash := sha256.Sum256(content)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pathways (pathway_id, content, content_hash, fetched_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(pathway_id) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, pathwayID, content, hex.EncodeToString(hash[:]))
	if err != nil {
		return fmt.Errorf("caching pathway %q: %w", pathwayID, err)
	}
	return nil
}

// Get returns a cached document, or ok=false when the pathway has never
// been fetched.
func (s *Store) Get(ctx context.Context, pathwayID string) (content []byte, ok bool, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT content FROM pathways WHERE pathway_id = ?`, pathwayID)
	if err := row.Scan(&content); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cached pathway %q: %w", pathwayID, err)
	}
	return content, true, nil
}

// Delete removes a cached document. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, pathwayID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM pathways WHERE pathway_id = ?`, pathwayID); err != nil {
		return fmt.Errorf("deleting cached pathway %q: %w", pathwayID, err)
	}
	return nil
}

// List returns all cached records (without content) ordered by pathway id.
func (s *Store) List(ctx context.Context) ([]CachedPathway, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT pathway_id, content_hash, fetched_at
		FROM pathways ORDER BY pathway_id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing cached pathways: %w", err)
	}
	defer rows.Close()

	var out []CachedPathway
	for rows.Next() {
		var p CachedPathway
		if err := rows.Scan(&p.PathwayID, &p.ContentHash, &p.FetchedAt); err != nil {
			return nil, fmt.Errorf("scanning cached pathway row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
