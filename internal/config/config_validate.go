// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Database drivers
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateRegistration(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateLLM(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.AllowReset && strings.EqualFold(c.Server.Environment, "production") {
		return fmt.Errorf("ALLOW_RESET_DB cannot be enabled when ENVIRONMENT=production")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverDuckDB, DriverPostgres, c.Database.Driver)
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative, got %d", c.Database.Threads)
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be non-negative, got %d", c.Database.MaxOpenConns)
	}
	return nil
}

func (c *Config) validateRegistration() error {
	if c.Registration.MaxAttempts < 1 {
		return fmt.Errorf("REGISTRATION_MAX_ATTEMPTS must be at least 1, got %d", c.Registration.MaxAttempts)
	}
	if c.Registration.RetryBackoff < 0 {
		return fmt.Errorf("REGISTRATION_RETRY_BACKOFF must be non-negative, got %v", c.Registration.RetryBackoff)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.TopK < 1 {
		return fmt.Errorf("RECOMMEND_TOP_K must be positive, got %d", c.Recommend.TopK)
	}
	if c.Recommend.MaxConcurrency < 1 {
		return fmt.Errorf("RECOMMEND_MAX_CONCURRENCY must be positive, got %d", c.Recommend.MaxConcurrency)
	}
	return nil
}

// validateLLM validates the model API settings. An empty API key is allowed:
// the server starts and the model-backed endpoints fail with an upstream error.
func (c *Config) validateLLM() error {
	if err := validateHTTPURL(c.LLM.BaseURL, "OPENAI_BASE_URL"); err != nil {
		return err
	}
	if c.LLM.EmbeddingModel == "" {
		return fmt.Errorf("OPENAI_EMBEDDING_MODEL is required")
	}
	if c.LLM.ChatModel == "" {
		return fmt.Errorf("OPENAI_CHAT_MODEL is required")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %v", c.LLM.Temperature)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %v", c.LLM.Timeout)
	}
	if c.LLM.BreakerFailureThreshold == 0 {
		return fmt.Errorf("LLM_BREAKER_FAILURE_THRESHOLD must be positive")
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.Topic == "" {
		return fmt.Errorf("EVENTS_TOPIC is required when EVENTS_ENABLED=true")
	}
	if c.Events.NATSURL != "" && !strings.HasPrefix(c.Events.NATSURL, "nats://") &&
		!strings.HasPrefix(c.Events.NATSURL, "tls://") {
		return fmt.Errorf("EVENTS_NATS_URL must use nats:// or tls:// scheme, got %q", c.Events.NATSURL)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.Security.BcryptCost)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled", "":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
