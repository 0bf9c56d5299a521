// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// The server URI is deliberately not required here: it may arrive later via
// command-line flags or a named profile, and commands that need a connection
// fail with a clear error at connect time.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Cache.Path == "" || cfg.Cache.TTL < 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Profiles.Path == "" {
		return ErrInvalidProfileConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
