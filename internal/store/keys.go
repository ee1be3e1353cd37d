package store

// Storage key layout. Every component reads and writes through these keys;
// the per-identity keys derive a namespace from the identity id so that no
// two identities' data can collide.
const (
	keyCurrentUser     = "currentUser"
	keyRegisteredUsers = "registeredUsers"

	notesKeyPrefix        = "notes_"
	profileImageKeyPrefix = "profileImage_"
)

// NotesKey returns the storage key holding identityID's note collection.
func NotesKey(identityID string) string {
	return notesKeyPrefix + identityID
}

// ProfileImageKey returns the storage key holding identityID's profile
// image payload.
func ProfileImageKey(identityID string) string {
	return profileImageKeyPrefix + identityID
}
