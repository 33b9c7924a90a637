package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	BotToken    string        `envconfig:"BOT_TOKEN" required:"true"`
	PollTimeout time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	SeedFile    string        `envconfig:"SEED_FILE"`
	Database    DatabaseConfig
	Session     SessionConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	Name           string        `envconfig:"DB_NAME" default:"wordtrainer"`
	User           string        `envconfig:"DB_USER" default:"wordtrainer"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConnections int           `envconfig:"DB_MAX_CONNECTIONS" default:"25"`
	Timeout        time.Duration `envconfig:"STORE_TIMEOUT" default:"5s"`
}

// SessionConfig holds in-memory session settings
type SessionConfig struct {
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.MaxConnections <= 0 {
		return fmt.Errorf("DB_MAX_CONNECTIONS must be > 0")
	}
	if c.Database.Timeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be > 0")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be > 0")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
