// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// pocketnotes application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// News holds settings for the remote news endpoint integration.
	News News `envPrefix:"NEWS_"`

	// Location holds settings for the location sampler and history export.
	Location Location `envPrefix:"LOCATION_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite key-value store.
type DB struct {
	// DSN is the SQLite file path backing the key-value store
	// (e.g. "pocketnotes.db"). An empty DSN selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// News holds settings for the remote news REST endpoint.
type News struct {
	// BaseURL is the root of the news API (e.g. "https://newsapi.org").
	// Env: NEWS_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the news endpoint access key. Must be kept confidential.
	// Env: NEWS_API_KEY
	APIKey string `env:"API_KEY"`

	// Domains is the fixed comma-separated domain filter applied to every
	// query (e.g. "techcrunch.com").
	// Env: NEWS_DOMAINS
	Domains string `env:"DOMAINS"`

	// PageSize is the number of articles requested per page.
	// Env: NEWS_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// RequestTimeout bounds a single outbound news request (e.g. "15s").
	// Env: NEWS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Location holds settings for the location sampler.
type Location struct {
	// ExportDir is the directory location history CSV exports are
	// written to.
	// Env: LOCATION_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`

	// BridgeTimeout bounds a single call into the device location bridge
	// (e.g. "5s").
	// Env: LOCATION_BRIDGE_TIMEOUT
	BridgeTimeout time.Duration `env:"BRIDGE_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RateLimitCooldown is how long the news rate-limit flag stays set
	// before the cooldown worker clears it (e.g. "5m").
	// Env: WORKERS_RATE_LIMIT_COOLDOWN
	RateLimitCooldown time.Duration `env:"RATE_LIMIT_COOLDOWN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
