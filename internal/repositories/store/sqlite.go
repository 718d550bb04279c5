package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/matchqueue/internal/models"
	_ "modernc.org/sqlite"
)

const (
	documentName = "store"

	createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
	name TEXT PRIMARY KEY,
	body BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
)`

	selectDocument = `SELECT body FROM documents WHERE name = ?`

	upsertDocument = `INSERT INTO documents (name, body) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET body = excluded.body,
	updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`
)

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	// Path of the database file, or ":memory:"
	Path string
}

// SQLiteRepository implements the Repository interface with one row in a SQLite table
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database and creates the documents table
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(createDocumentsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load reads the aggregate row, returning an empty aggregate when there is none
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Store, error) {
	var body []byte
	err := r.db.QueryRowContext(ctx, selectDocument, documentName).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	return decode(body)
}

// Save upserts the aggregate row
func (r *SQLiteRepository) Save(ctx context.Context, input *SaveInput) error {
	data, err := encode(input)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, upsertDocument, documentName, data); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	return nil
}
