package store

import (
	"context"

	"github.com/notesapp/pocketnotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValue is the persistence adapter every repository reads and writes
// through: an async, string-keyed, string-valued storage medium. Values are
// JSON-encoded text. A Set of a single key is atomic: the new value is
// either fully visible or not at all.
type KeyValue interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying storage medium.
	Close() error
}

// UserRepository persists the registered-account table and the
// current-session slot.
type UserRepository interface {
	// RegisteredUsers returns every credential record, in registration
	// order. A missing table reads as an empty slice.
	RegisteredUsers(ctx context.Context) ([]models.Credential, error)
	// SaveRegisteredUsers overwrites the whole registered-account table.
	SaveRegisteredUsers(ctx context.Context, users []models.Credential) error
	// CurrentUser returns the identity in the current-session slot, or
	// ErrNoCurrentUser when signed out.
	CurrentUser(ctx context.Context) (models.User, error)
	// SetCurrentUser writes the credential-free identity to the
	// current-session slot.
	SetCurrentUser(ctx context.Context, user models.User) error
	// ClearCurrentUser empties the current-session slot.
	ClearCurrentUser(ctx context.Context) error
}

// NotesRepository persists one note collection per identity as a single
// JSON blob under a key derived from the identity id.
type NotesRepository interface {
	// Notes returns the collection for identityID in insertion order.
	// A missing collection reads as an empty slice.
	Notes(ctx context.Context, identityID string) ([]models.Note, error)
	// SaveNotes overwrites the whole collection for identityID.
	SaveNotes(ctx context.Context, identityID string, notes []models.Note) error
}

// ProfileRepository persists the per-identity profile image payload.
type ProfileRepository interface {
	ProfileImage(ctx context.Context, identityID string) (string, error)
	SaveProfileImage(ctx context.Context, identityID string, image string) error
	DeleteProfileImage(ctx context.Context, identityID string) error
}
