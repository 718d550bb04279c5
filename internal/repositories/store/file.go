package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/matchqueue/internal/models"
)

// DefaultFilePath is the document the bot keeps its state in
const DefaultFilePath = "dados.json"

// FileConfig holds configuration for the JSON file store
type FileConfig struct {
	// Path of the JSON document
	Path string
}

// fileRepository implements the Repository interface with a JSON document on disk
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed store
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	path := cfg.Path
	if path == "" {
		path = DefaultFilePath
	}

	return &fileRepository{
		path: filepath.Clean(path),
	}, nil
}

// Load reads the document, returning an empty aggregate when the file does not exist
func (r *fileRepository) Load(ctx context.Context) (*models.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	return decode(data)
}

// Save writes the document to a temporary file and renames it into place,
// so readers see either the old or the new document.
func (r *fileRepository) Save(ctx context.Context, input *SaveInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(input)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}

	return nil
}
