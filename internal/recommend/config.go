// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package recommend

import "fmt"

// Config controls ranking.
type Config struct {
	// TopK is the number of events returned.
	TopK int `json:"top_k"`

	// MaxConcurrency bounds parallel embedding requests per call.
	MaxConcurrency int `json:"max_concurrency"`
}

// DefaultConfig returns the default ranking configuration.
func DefaultConfig() Config {
	return Config{
		TopK:           5,
		MaxConcurrency: 4,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be positive, got %d", c.MaxConcurrency)
	}
	return nil
}
