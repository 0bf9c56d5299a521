package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid connection settings
	// (for example, a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates invalid catalog cache settings
	// (for example, an empty database path or negative TTL).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidProfileConfigs indicates invalid profile store settings
	// (for example, an empty store path).
	ErrInvalidProfileConfigs = errors.New("invalid profiles configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
