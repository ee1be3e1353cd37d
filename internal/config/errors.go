package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidNewsConfigs indicates invalid news endpoint settings
	// (for example, a missing API key).
	ErrInvalidNewsConfigs = errors.New("invalid news configuration")
	// ErrInvalidLocationConfigs indicates invalid location settings
	// (for example, an empty export directory).
	ErrInvalidLocationConfigs = errors.New("invalid location configuration")
)
