package store

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Backends understood by Open
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown store backend")

// OpenConfig selects and configures one backend
type OpenConfig struct {
	Backend string

	// FilePath is used by the file backend
	FilePath string

	// Redis connection, used by the redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	// SQLitePath is used by the sqlite backend
	SQLitePath string
}

// Open builds the configured repository. The returned close function
// releases the backend's connections and is never nil.
func Open(cfg *OpenConfig) (Repository, func() error, error) {
	noop := func() error { return nil }

	if cfg == nil {
		return nil, noop, errors.New("config cannot be nil")
	}

	switch cfg.Backend {
	case BackendFile:
		repo, err := NewFile(&FileConfig{Path: cfg.FilePath})
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo, err := NewRedis(&RedisConfig{RedisClient: client, Key: cfg.RedisKey})
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return repo, client.Close, nil

	case BackendSQLite:
		repo, err := NewSQLite(&SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, noop, err
		}
		return repo, repo.Close, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
