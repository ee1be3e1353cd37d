package models

// User represents an authenticated identity: an account record with every
// credential field stripped. This is the only user shape the rest of the
// application is allowed to see after authentication, and the only shape
// ever written to the current-session storage slot.
type User struct {
	// ID is the unique identifier of the account, assigned at registration.
	ID string `json:"id"`

	// Email is the unique account email, stored lowercased and trimmed.
	// Uniqueness is enforced case-insensitively at registration time.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the RFC 3339 timestamp of account creation.
	CreatedAt string `json:"createdAt"`
}

// Credential is the registered-account record: a User plus the stored
// password hash. It lives only inside the registered-accounts table and
// must never leave the session service.
type Credential struct {
	User

	// PasswordHash is the bcrypt hash of the account password. The
	// plaintext password is never persisted.
	PasswordHash string `json:"password"`
}

// Identity returns the credential-free view of the account.
func (c Credential) Identity() User {
	return c.User
}
