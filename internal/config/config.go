// Package config provides configuration management for the social data service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Database backend identifiers.
const (
	// BackendMongo stores documents in MongoDB.
	BackendMongo = "mongo"
	// BackendMemory stores documents in process memory (development only).
	BackendMemory = "memory"
)

// Config holds all configuration for the social data service.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `mapstructure:"server"`
	// Database contains document-store settings.
	Database DatabaseConfig `mapstructure:"database"`
	// Logging contains structured logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
	// Metrics contains Prometheus metrics exposure settings.
	Metrics MetricsConfig `mapstructure:"metrics"`
	// RateLimit contains API rate limiting settings.
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host is the address to bind the server to (default: 0.0.0.0).
	Host string `mapstructure:"host"`
	// HTTPPort is the HTTP server port (default: 8080).
	HTTPPort int `mapstructure:"http_port"`
	// ReadTimeout is the maximum duration for reading the request body.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the maximum duration for writing the response.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// IdleTimeout is the maximum duration to keep idle connections open.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPAddress returns the host:port string for the HTTP server.
func (c *ServerConfig) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

// DatabaseConfig holds document-store configuration.
type DatabaseConfig struct {
	// Backend selects the store implementation: "mongo" or "memory".
	Backend string `mapstructure:"backend"`
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri"`
	// Name is the database name.
	Name string `mapstructure:"name"`
	// ConnectTimeout is the maximum time to wait when dialing the database.
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// LoggingConfig holds structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Format is the output format (json, console).
	Format string `mapstructure:"format"`
	// Output is the output destination (stdout, stderr).
	Output string `mapstructure:"output"`
	// AddSource adds source file and line number to log entries.
	AddSource bool `mapstructure:"add_source"`
}

// MetricsConfig holds Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served.
	Enabled bool `mapstructure:"enabled"`
	// Port is the metrics server port (default: 9091).
	Port int `mapstructure:"port"`
}

// RateLimitConfig holds API rate limiting configuration.
type RateLimitConfig struct {
	// Enabled controls whether request rate limiting is applied.
	Enabled bool `mapstructure:"enabled"`
	// RequestsPerSecond is the sustained request rate allowed per client.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	// Burst is the maximum burst size allowed per client.
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("SOCIALDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if present
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/social-data-service")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use env vars and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	switch c.Database.Backend {
	case BackendMongo:
		if c.Database.URI == "" {
			return errors.New("database.uri is required for the mongo backend")
		}
		if c.Database.Name == "" {
			return errors.New("database.name is required for the mongo backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown database.backend: %q", c.Database.Backend)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("metrics.port out of range: %d", c.Metrics.Port)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("rate_limit.requests_per_second must be positive")
	}

	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("database.backend", BackendMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "social_data")
	v.SetDefault("database.connect_timeout", "10s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.add_source", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9091)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
}
