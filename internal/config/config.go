package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Upstream database configuration
	Notion NotionConfig

	// Cross-origin configuration
	CORS CORSConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// NotionConfig holds the upstream database settings.
// APIKey may be empty at startup; requests are rejected until it is set.
type NotionConfig struct {
	APIKey     string
	DatabaseID string
	APIVersion string
	BaseURL    string
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string
	AllowedHeaders []string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// defaultAllowedHeaders are the headers sent by the web client and its hosting SDK.
var defaultAllowedHeaders = []string{
	"authorization",
	"x-client-info",
	"apikey",
	"content-type",
	"x-supabase-client-platform",
	"x-supabase-client-platform-version",
	"x-supabase-client-runtime",
	"x-supabase-client-runtime-version",
}

// Load reads configuration from an optional config.yaml under configPath,
// then applies environment overrides. An empty configPath skips the file.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flat env names used by the hosting platform
	bindings := map[string]string{
		"server.port":        "PORT",
		"notion.api_key":     "NOTION_API_KEY",
		"notion.database_id": "NOTION_DATABASE_ID",
		"notion.api_version": "NOTION_API_VERSION",
		"notion.base_url":    "NOTION_BASE_URL",
		"log.level":          "LOG_LEVEL",
		"log.format":         "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Notion: NotionConfig{
			APIKey:     strings.TrimSpace(v.GetString("notion.api_key")),
			DatabaseID: v.GetString("notion.database_id"),
			APIVersion: v.GetString("notion.api_version"),
			BaseURL:    strings.TrimRight(v.GetString("notion.base_url"), "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
			AllowedHeaders: v.GetStringSlice("cors.allowed_headers"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("notion.database_id", "30b5bbbcdf1780298c67e585f3c49cdc")
	v.SetDefault("notion.api_version", "2022-06-28")
	v.SetDefault("notion.base_url", "https://api.notion.com/v1")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_headers", defaultAllowedHeaders)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	if c.Notion.BaseURL == "" {
		return fmt.Errorf("NOTION_BASE_URL is required")
	}
	if c.Notion.APIVersion == "" {
		return fmt.Errorf("NOTION_API_VERSION is required")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port <= 0 {
		return fmt.Errorf("PORT must be a positive integer, got %q", c.Server.Port)
	}
	return nil
}

// HasCredential reports whether the upstream API key is configured
func (c *NotionConfig) HasCredential() bool {
	return c.APIKey != ""
}
