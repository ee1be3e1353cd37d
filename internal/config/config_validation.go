// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Storage is deliberately not validated: an empty DSN selects the
// in-memory key-value store, which is a supported mode.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.News.APIKey == "" {
		return ErrInvalidNewsConfigs
	}

	if cfg.Location.ExportDir == "" {
		return ErrInvalidLocationConfigs
	}

	return nil
}
