package store

import (
	"context"
	"fmt"

	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer, together with the key-value adapter
// they share.
type Storages struct {
	// KV is the shared persistence adapter. Exposed so the application
	// can close it on shutdown.
	KV KeyValue

	// Users is the registered-account and current-session repository.
	Users UserRepository

	// Notes is the per-identity note collection repository.
	Notes NotesRepository

	// Profiles is the per-identity profile image repository.
	Profiles ProfileRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the SQLite-backed key-value store at cfg.DB.DSN (creating the
//     database file if it does not yet exist) and runs pending schema
//     migrations; an empty DSN selects the in-memory store instead.
//  2. Constructs a [Storages] value wiring every repository to the shared
//     adapter.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var kv KeyValue
	if cfg.DB.DSN == "" {
		kv = NewMemoryKeyValue()
	} else {
		var err error
		kv, err = NewSQLiteKeyValue(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	}

	return &Storages{
		KV:       kv,
		Users:    NewUserRepository(kv, logger),
		Notes:    NewNotesRepository(kv, logger),
		Profiles: NewProfileRepository(kv, logger),
	}, nil
}
