package service

import (
	"context"

	"github.com/notesapp/pocketnotes/models"
)

// SessionService manages the registered-account table and the single
// current session. At most one identity is signed in at a time; the
// session survives restarts through the current-session storage slot.
type SessionService interface {
	// Register creates a new account and signs it in.
	//
	// Returns the credential-free identity or:
	//   - ErrInvalidInput if email, password or name fail validation.
	//   - ErrDuplicateAccount if the email is already registered
	//     (case-insensitive); the account table is left untouched.
	Register(ctx context.Context, email, password, name string) (models.User, error)

	// Authenticate signs an existing account in.
	//
	// Returns the identity or:
	//   - ErrInvalidInput if email or password is empty or malformed.
	//   - ErrAccountNotFound if no account matches the email.
	//   - ErrInvalidCredential if the password does not match.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// CurrentIdentity returns the signed-in identity, or nil when signed
	// out. The returned value is a copy; mutating it has no effect.
	CurrentIdentity() *models.User

	// EndSession signs the current identity out. Registered accounts and
	// their notes remain persisted. Signing out while signed out is a no-op.
	EndSession(ctx context.Context) error
}

// NotesService manages per-identity note collections. All operations are
// scoped by a caller-supplied identity id; no session check happens here.
type NotesService interface {
	List(ctx context.Context, identityID string) ([]models.Note, error)
	Add(ctx context.Context, identityID, title, content string) (models.Note, error)
	Update(ctx context.Context, identityID, noteID, title, content string) (models.Note, error)
	Delete(ctx context.Context, identityID, noteID string) error
}

// ProfileService manages the per-identity profile image payload.
type ProfileService interface {
	// Image returns the stored image payload, or "" when none is set.
	Image(ctx context.Context, identityID string) (string, error)
	SaveImage(ctx context.Context, identityID, image string) error
	RemoveImage(ctx context.Context, identityID string) error
}
