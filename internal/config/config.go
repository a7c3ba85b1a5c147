// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Browser BrowserConfig
	Webhook WebhookConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`

	// WriteTimeout must outlast the browser task timeout, since a
	// synchronous search holds the connection for the whole pipeline.
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"6m"`

	// ShutdownTaskWait bounds how long graceful shutdown waits for
	// in-flight deferred searches before giving up on them.
	ShutdownTaskWait time.Duration `env:"SERVER_SHUTDOWN_TASK_WAIT" envDefault:"30s"`
}

// OpenAIConfig holds settings for the intent extraction model.
type OpenAIConfig struct {
	APIKey        string `env:"OPENAI_API_KEY"`
	Model         string `env:"OPENAI_MODEL" envDefault:"gpt-4.1"`
	MaxToolRounds int    `env:"OPENAI_MAX_TOOL_ROUNDS" envDefault:"5"`
}

// BrowserConfig holds settings for the browser automation service.
type BrowserConfig struct {
	BaseURL      string        `env:"BROWSER_AGENT_URL" envDefault:"https://api.browser-use.com"`
	APIKey       string        `env:"BROWSER_AGENT_API_KEY"`
	PollInterval time.Duration `env:"BROWSER_AGENT_POLL_INTERVAL" envDefault:"3s"`

	// TaskTimeout bounds a single browser search task end to end.
	TaskTimeout time.Duration `env:"BROWSER_AGENT_TASK_TIMEOUT" envDefault:"5m"`
}

// WebhookConfig holds settings for deferred result delivery.
type WebhookConfig struct {
	DeliveryTimeout time.Duration `env:"WEBHOOK_DELIVERY_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

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

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.ShutdownTaskWait <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TASK_WAIT must be positive")
	}

	// Credentials are required to reach the extraction model and the
	// browser automation service.
	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.OpenAI.Model == "" {
		return fmt.Errorf("OPENAI_MODEL must not be empty")
	}
	if cfg.OpenAI.MaxToolRounds < 1 {
		return fmt.Errorf("OPENAI_MAX_TOOL_ROUNDS must be at least 1, got %d", cfg.OpenAI.MaxToolRounds)
	}
	if cfg.Browser.APIKey == "" {
		return fmt.Errorf("BROWSER_AGENT_API_KEY is required")
	}
	if cfg.Browser.BaseURL == "" {
		return fmt.Errorf("BROWSER_AGENT_URL must not be empty")
	}
	if cfg.Browser.PollInterval <= 0 {
		return fmt.Errorf("BROWSER_AGENT_POLL_INTERVAL must be positive")
	}
	if cfg.Browser.TaskTimeout <= 0 {
		return fmt.Errorf("BROWSER_AGENT_TASK_TIMEOUT must be positive")
	}

	// Polling slower than the task timeout would never observe completion
	if cfg.Browser.PollInterval >= cfg.Browser.TaskTimeout {
		return fmt.Errorf("BROWSER_AGENT_POLL_INTERVAL (%s) should be less than BROWSER_AGENT_TASK_TIMEOUT (%s)",
			cfg.Browser.PollInterval, cfg.Browser.TaskTimeout)
	}

	// A synchronous search writes its response only after the browser task
	// ends; a shorter write timeout would sever every such connection
	if cfg.Server.WriteTimeout <= cfg.Browser.TaskTimeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) should be greater than BROWSER_AGENT_TASK_TIMEOUT (%s)",
			cfg.Server.WriteTimeout, cfg.Browser.TaskTimeout)
	}

	if cfg.Webhook.DeliveryTimeout <= 0 {
		return fmt.Errorf("WEBHOOK_DELIVERY_TIMEOUT must be positive")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
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
