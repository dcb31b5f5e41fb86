// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-deals/syria-flight-deals/internal/domain"
	"github.com/flight-deals/syria-flight-deals/internal/infrastructure/logger"
)

// Dataset drivers.
const (
	DatasetDriverFile  = "file"
	DatasetDriverMongo = "mongo"
)

// Cache drivers.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   logger.Config
	App       AppConfig
	SearchAPI SearchAPIConfig
	Dataset   DatasetConfig
	Cache     CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// HubAirport anchors the from/to trip types of the dataset search
	HubAirport string `env:"HUB_AIRPORT" envDefault:"DAM"`

	// ExploreAirports are summarized on the explore entry page
	ExploreAirports []string `env:"EXPLORE_AIRPORTS" envDefault:"DAM,ALP" envSeparator:","`
}

// SearchAPIConfig holds the live flight search API settings.
// An empty APIKey is allowed: live endpoints then answer with a misconfiguration error.
type SearchAPIConfig struct {
	APIKey        string        `env:"SEARCHAPI_API_KEY"`
	BaseURL       string        `env:"SEARCHAPI_BASE_URL" envDefault:"https://www.searchapi.io/api/v1/search"`
	Timeout       time.Duration `env:"SEARCHAPI_TIMEOUT" envDefault:"15s"`
	RatePerSecond float64       `env:"SEARCHAPI_RATE_PER_SECOND" envDefault:"5"`
	RetryAttempts int           `env:"SEARCHAPI_RETRY_ATTEMPTS" envDefault:"3"`
}

// DatasetConfig selects and configures the flight dataset store.
type DatasetConfig struct {
	Driver        string `env:"DATASET_DRIVER" envDefault:"file"`
	File          string `env:"DATASET_FILE" envDefault:"data/flights.json"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"flight_deals"`
}

// CacheConfig selects and configures the query cache.
type CacheConfig struct {
	Driver        string        `env:"CACHE_DRIVER" envDefault:"memory"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string        `env:"REDIS_KEY_PREFIX" envDefault:"flight-deals:"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	normalize(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func normalize(cfg *Config) {
	cfg.App.HubAirport = strings.ToUpper(strings.TrimSpace(cfg.App.HubAirport))
	for i, code := range cfg.App.ExploreAirports {
		cfg.App.ExploreAirports[i] = strings.ToUpper(strings.TrimSpace(code))
	}
	cfg.Dataset.Driver = strings.ToLower(strings.TrimSpace(cfg.Dataset.Driver))
	cfg.Cache.Driver = strings.ToLower(strings.TrimSpace(cfg.Cache.Driver))
	cfg.SearchAPI.APIKey = strings.TrimSpace(cfg.SearchAPI.APIKey)
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}
	if !domain.IsAirportCode(cfg.App.HubAirport) {
		return fmt.Errorf("HUB_AIRPORT must be a 3-letter airport code, got %q", cfg.App.HubAirport)
	}
	for _, code := range cfg.App.ExploreAirports {
		if !domain.IsAirportCode(code) {
			return fmt.Errorf("EXPLORE_AIRPORTS must be 3-letter airport codes, got %q", code)
		}
	}

	if cfg.SearchAPI.BaseURL == "" {
		return fmt.Errorf("SEARCHAPI_BASE_URL must not be empty")
	}
	if cfg.SearchAPI.Timeout <= 0 {
		return fmt.Errorf("SEARCHAPI_TIMEOUT must be positive")
	}
	if cfg.SearchAPI.RatePerSecond < 0 {
		return fmt.Errorf("SEARCHAPI_RATE_PER_SECOND must not be negative")
	}
	if cfg.SearchAPI.RetryAttempts < 1 || cfg.SearchAPI.RetryAttempts > 10 {
		return fmt.Errorf("SEARCHAPI_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.SearchAPI.RetryAttempts)
	}

	switch cfg.Dataset.Driver {
	case DatasetDriverFile:
		if cfg.Dataset.File == "" {
			return fmt.Errorf("DATASET_FILE is required when DATASET_DRIVER=file")
		}
	case DatasetDriverMongo:
		if cfg.Dataset.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when DATASET_DRIVER=mongo")
		}
		if cfg.Dataset.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE is required when DATASET_DRIVER=mongo")
		}
	default:
		return fmt.Errorf("DATASET_DRIVER must be one of: file, mongo; got %q", cfg.Dataset.Driver)
	}

	switch cfg.Cache.Driver {
	case CacheDriverMemory:
	case CacheDriverRedis:
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_DRIVER=redis")
		}
		if cfg.Cache.RedisDB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative")
		}
	default:
		return fmt.Errorf("CACHE_DRIVER must be one of: memory, redis; got %q", cfg.Cache.Driver)
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LiveSearchEnabled reports whether a search API key is configured.
func (c *Config) LiveSearchEnabled() bool {
	return c.SearchAPI.APIKey != ""
}
