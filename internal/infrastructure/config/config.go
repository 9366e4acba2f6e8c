package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Templates TemplatesConfig
	Archive   ArchiveConfig
}

// ServerConfig holds HTTP server configuration. The command surface is only
// meant for the local desktop shell, so it binds to loopback by default.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORSConfig lists the webview origins allowed to call the command surface.
type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ORIGINS" default:"tauri://localhost,http://tauri.localhost,http://localhost:1420"`
}

// TemplatesConfig locates the template store.
// An empty DocumentsDir means the platform documents directory.
type TemplatesConfig struct {
	ProductName  string `envconfig:"FA_PRODUCT_NAME" default:"FileArchitect"`
	DocumentsDir string `envconfig:"FA_DOCUMENTS_DIR"`
	Subdir       string `envconfig:"FA_TEMPLATES_SUBDIR" default:"Templates"`
}

// ArchiveConfig bounds archive extraction. Zero means unlimited.
type ArchiveConfig struct {
	MaxEntries int `envconfig:"FA_ARCHIVE_MAX_ENTRIES" default:"0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "127.0.0.1",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"tauri://localhost", "http://tauri.localhost", "http://localhost:1420"},
		},
		Templates: TemplatesConfig{
			ProductName: "FileArchitect",
			Subdir:      "Templates",
		},
		Archive: ArchiveConfig{
			MaxEntries: 0,
		},
	}
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
