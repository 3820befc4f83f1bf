// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	db, err := database.New(&cfg.Database)
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	Registration RegistrationConfig `koanf:"registration"`
	Recommend    RecommendConfig    `koanf:"recommend"`
	LLM          LLMConfig          `koanf:"llm"`
	Events       EventsConfig       `koanf:"events"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	AllowReset  bool          `koanf:"allow_reset"` // Expose POST /reset_db (drops all data)
	CORSOrigins []string      `koanf:"cors_origins"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds relational store settings.
type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // "duckdb" or "postgres"
	Path         string `koanf:"path"`   // DuckDB file path or ":memory:"
	DSN          string `koanf:"dsn"`    // Postgres connection string
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)
	MaxOpenConns int    `koanf:"max_open_conns"`
}

// RegistrationConfig controls the optimistic retry used when concurrent
// registrations collide on the same event row.
type RegistrationConfig struct {
	MaxAttempts  int           `koanf:"max_attempts"`
	RetryBackoff time.Duration `koanf:"retry_backoff"`
}

// RecommendConfig holds similarity ranking settings
type RecommendConfig struct {
	TopK           int `koanf:"top_k"`
	MaxConcurrency int `koanf:"max_concurrency"` // Parallel embedding requests per ranking call
}

// LLMConfig holds settings for the OpenAI-compatible embedding and chat API.
type LLMConfig struct {
	BaseURL        string        `koanf:"base_url"`
	APIKey         string        `koanf:"api_key"`
	EmbeddingModel string        `koanf:"embedding_model"`
	ChatModel      string        `koanf:"chat_model"`
	Temperature    float64       `koanf:"temperature"`
	Timeout        time.Duration `koanf:"timeout"`

	// Circuit breaker
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
	BreakerInterval         time.Duration `koanf:"breaker_interval"`
	BreakerMaxRequests      uint32        `koanf:"breaker_max_requests"`
}

// EventsConfig holds membership event stream settings. An empty NATSURL
// selects the in-process gochannel transport.
type EventsConfig struct {
	Enabled bool   `koanf:"enabled"`
	NATSURL string `koanf:"nats_url"`
	Topic   string `koanf:"topic"`
}

// SecurityConfig holds credential hashing and authorization settings
type SecurityConfig struct {
	BcryptCost int          `koanf:"bcrypt_cost"`
	Casbin     CasbinConfig `koanf:"casbin"`
}

// CasbinConfig points at optional model/policy files that replace the
// embedded defaults.
type CasbinConfig struct {
	ModelPath  string `koanf:"model_path"`
	PolicyPath string `koanf:"policy_path"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads the configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
