// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for rstools.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, an optional JSON file, and built-in defaults.
//
// Connection flags supplied on the command line take precedence over all of
// these; they are applied by the CLI layer on top of the merged config.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds the report server connection settings.
	Server Server `envPrefix:"SERVER_"`

	// Cache holds the local catalog cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Profiles holds the connection profile store settings.
	Profiles Profiles `envPrefix:"PROFILES_"`

	// Workers holds background refresh job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the environment.
	// Populated via the RSTOOLS_CONFIG environment variable or --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running binary.
	// Env: RSTOOLS_APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds the report server connection settings.
type Server struct {
	// ReportServerURI is the base URI of the report server web service,
	// e.g. "http://reports.example.com/ReportServer".
	// Env: RSTOOLS_SERVER_REPORT_SERVER_URI
	ReportServerURI string `env:"REPORT_SERVER_URI"`

	// Username and Password are the basic-auth credentials. Leave both
	// empty for anonymous access.
	// Env: RSTOOLS_SERVER_USERNAME / RSTOOLS_SERVER_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds a single web-service round trip (e.g. "30s").
	// Env: RSTOOLS_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds the local catalog cache settings.
type Cache struct {
	// Path is the SQLite database file backing the cache.
	// Env: RSTOOLS_CACHE_PATH
	Path string `env:"PATH"`

	// Folders lists the catalog folders the refresh job keeps cached.
	// Env: RSTOOLS_CACHE_FOLDERS (comma-separated)
	Folders []string `env:"FOLDERS" envSeparator:","`

	// TTL is how long a cached folder listing is considered fresh.
	// Env: RSTOOLS_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Profiles holds the connection profile store settings.
type Profiles struct {
	// Path is the JSON file holding saved connection profiles.
	// Env: RSTOOLS_PROFILES_PATH
	Path string `env:"PATH"`
}

// Workers holds background refresh job settings.
type Workers struct {
	// RefreshInterval is how often the cache refresh job re-lists the
	// configured folders when running in watch mode.
	// Env: RSTOOLS_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the rstools configuration
// from all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1 or jsonPath)
//  3. Built-in defaults
//
// jsonPath, when non-empty, overrides the JSON file location from the
// environment. Returns a fully populated *StructuredConfig or an error if any
// source fails to load or the final config fails validation.
func GetStructuredConfig(jsonPath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON(jsonPath).
		withDefaults().
		build()
}

// defaults returns the built-in fallback configuration. File locations live
// under the user config dir so the tool works without any setup.
func defaults() *StructuredConfig {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "rstools")

	return &StructuredConfig{
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Cache: Cache{
			Path: filepath.Join(dir, "catalog.db"),
			TTL:  time.Hour,
		},
		Profiles: Profiles{
			Path: filepath.Join(dir, "profiles.json"),
		},
		Workers: Workers{
			RefreshInterval: 10 * time.Minute,
		},
	}
}
