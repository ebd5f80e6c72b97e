package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	LLM      LLMConfig
	Store    StoreConfig
	Report   ReportConfig
	Geocoder GeocoderConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LLMConfig configures the text generation client
type LLMConfig struct {
	APIKey      string
	BaseURL     string // empty uses the OpenAI default
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// StoreConfig selects and tunes the report store
type StoreConfig struct {
	Driver        string // memory, redis
	RedisURL      string
	TTL           time.Duration
	MaxEntries    int
	SweepInterval time.Duration
}

// ReportConfig controls rendered report documents
type ReportConfig struct {
	PageSize string // A4, Letter
	FontSize float64
	Author   string
}

// GeocoderConfig configures birthplace lookups
type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.cosmicmatch")

	setDefaults(v)

	// Read from environment variables, e.g. COSMICMATCH_LLM_APIKEY
	v.SetEnvPrefix("COSMICMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("llm.apikey", "")
	v.SetDefault("llm.baseurl", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.8)
	v.SetDefault("llm.maxtokens", 1800)
	v.SetDefault("llm.timeout", 90*time.Second)

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.redisurl", "")
	v.SetDefault("store.ttl", 24*time.Hour)
	v.SetDefault("store.maxentries", 1000)
	v.SetDefault("store.sweepinterval", time.Minute)

	v.SetDefault("report.pagesize", "A4")
	v.SetDefault("report.fontsize", 11)
	v.SetDefault("report.author", "CosmicMatch")

	v.SetDefault("geocoder.baseurl", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.useragent", "cosmicmatch/1.0")
}

// Validate checks values that have no safe fallback
func (c *Config) Validate() error {
	switch strings.ToLower(c.Store.Driver) {
	case "memory":
	case "redis":
		if c.Store.RedisURL == "" {
			return errors.New("store.redisurl is required when store.driver is redis")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.TTL <= 0 {
		return fmt.Errorf("store.ttl must be positive, got %s", c.Store.TTL)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
