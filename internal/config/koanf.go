// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/connect4good/config.yaml",
	"/etc/connect4good/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			AllowReset:  false,
			CORSOrigins: []string{"*"},
			Environment: "development",
		},
		Database: DatabaseConfig{
			Driver:       DriverDuckDB,
			Path:         "/data/connect4good.duckdb",
			DSN:          "",
			MaxMemory:    "1GB",
			Threads:      0,
			MaxOpenConns: 0, // 0 = driver-specific default
		},
		Registration: RegistrationConfig{
			MaxAttempts:  5,
			RetryBackoff: 10 * time.Millisecond,
		},
		Recommend: RecommendConfig{
			TopK:           5,
			MaxConcurrency: 4,
		},
		LLM: LLMConfig{
			BaseURL:                 "https://api.openai.com/v1",
			APIKey:                  "",
			EmbeddingModel:          "text-embedding-3-small",
			ChatModel:               "gpt-3.5-turbo-0125",
			Temperature:             0.5,
			Timeout:                 30 * time.Second,
			BreakerFailureThreshold: 5,
			BreakerTimeout:          30 * time.Second,
			BreakerInterval:         60 * time.Second,
			BreakerMaxRequests:      1,
		},
		Events: EventsConfig{
			Enabled: true,
			NATSURL: "",
			Topic:   "connect4good.membership",
		},
		Security: SecurityConfig{
			BcryptCost: 12,
			Casbin: CasbinConfig{
				ModelPath:  "",
				PolicyPath: "",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":      "server.port",
	"http_host":      "server.host",
	"http_timeout":   "server.timeout",
	"allow_reset_db": "server.allow_reset",
	"cors_origins":   "server.cors_origins",
	"environment":    "server.environment",

	// Database mappings
	"db_driver":         "database.driver",
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"database_url":      "database.dsn",
	"db_max_open_conns": "database.max_open_conns",

	// Registration mappings
	"registration_max_attempts":  "registration.max_attempts",
	"registration_retry_backoff": "registration.retry_backoff",

	// Recommendation mappings
	"recommend_top_k":           "recommend.top_k",
	"recommend_max_concurrency": "recommend.max_concurrency",

	// Language model mappings
	"openai_api_key":                "llm.api_key",
	"openai_base_url":               "llm.base_url",
	"openai_embedding_model":        "llm.embedding_model",
	"openai_chat_model":             "llm.chat_model",
	"openai_temperature":            "llm.temperature",
	"llm_timeout":                   "llm.timeout",
	"llm_breaker_failure_threshold": "llm.breaker_failure_threshold",
	"llm_breaker_timeout":           "llm.breaker_timeout",
	"llm_breaker_interval":          "llm.breaker_interval",
	"llm_breaker_max_requests":      "llm.breaker_max_requests",

	// Membership event mappings
	"events_enabled":  "events.enabled",
	"events_nats_url": "events.nats_url",
	"events_topic":    "events.topic",

	// Security mappings
	"bcrypt_cost":        "security.bcrypt_cost",
	"casbin_model_path":  "security.casbin.model_path",
	"casbin_policy_path": "security.casbin.policy_path",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - OPENAI_API_KEY -> llm.api_key
//
// Unmapped keys return an empty string, which koanf skips.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
