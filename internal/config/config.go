package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/repositories/store"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendFile   = store.BackendFile
	BackendRedis  = store.BackendRedis
	BackendSQLite = store.BackendSQLite
)

// HealthDisabled turns the health endpoint off when used as HEALTH_ADDR
const HealthDisabled = "off"

// ErrInvalidConfig is returned when a value parses but makes no sense
var ErrInvalidConfig = errors.New("invalid config")

// Config is the process configuration read from the environment
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// StaffIDs may create and remove panels
	StaffIDs []string `env:"STAFF_IDS" envSeparator:","`

	// Discord categories the match channels are created under
	StumbleCategoryID  string `env:"STUMBLE_CATEGORY_ID"`
	ValorantCategoryID string `env:"VALORANT_CATEGORY_ID"`

	FeePerEntrant models.Money `env:"FEE_PER_ENTRANT" envDefault:"1.00"`
	MaxCapacity   int          `env:"MAX_CAPACITY" envDefault:"128"`

	StoreBackend  string `env:"STORE_BACKEND" envDefault:"file"`
	StoreFile     string `env:"STORE_FILE" envDefault:"dados.json"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisKey      string `env:"REDIS_KEY" envDefault:"matchqueue:store"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"matchqueue.db"`

	HealthAddr string `env:"HEALTH_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// Presentation
	IconURL string `env:"ICON_URL"`
	PixKey  string `env:"PIX_KEY"`
}

// Load reads the optional dotenv files (".env" when none are given) and
// parses the environment. Variables already set in the process win over
// dotenv values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that parse but cannot be used
func (c *Config) Validate() error {
	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	switch c.StoreBackend {
	case BackendFile, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown STORE_BACKEND %q", ErrInvalidConfig, c.StoreBackend)
	}

	if c.FeePerEntrant < 0 {
		return fmt.Errorf("%w: FEE_PER_ENTRANT must not be negative", ErrInvalidConfig)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	staff := c.StaffIDs[:0]
	for _, id := range c.StaffIDs {
		if id = strings.TrimSpace(id); id != "" {
			staff = append(staff, id)
		}
	}
	c.StaffIDs = staff

	return nil
}

// SlogLevel converts LOG_LEVEL into a slog level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// HealthEnabled reports whether the health endpoint should listen
func (c *Config) HealthEnabled() bool {
	return c.HealthAddr != HealthDisabled
}

// CategoryParent returns the Discord category for match channels of an activity
func (c *Config) CategoryParent(category models.ActivityCategory) string {
	switch category {
	case models.CategoryStumble:
		return c.StumbleCategoryID
	case models.CategoryValorant:
		return c.ValorantCategoryID
	}
	return ""
}

// StoreConfig selects the persistence backend for store.Open
func (c *Config) StoreConfig() *store.OpenConfig {
	return &store.OpenConfig{
		Backend:       c.StoreBackend,
		FilePath:      c.StoreFile,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisKey:      c.RedisKey,
		SQLitePath:    c.SQLitePath,
	}
}
