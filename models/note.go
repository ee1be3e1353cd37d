package models

// Note is a single entry in an identity's note collection.
type Note struct {
	// ID uniquely identifies the note within its owner's collection.
	ID string `json:"id"`

	// Title is the note headline. An empty title is stored as "Untitled".
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// CreatedAt is fixed at creation (RFC 3339).
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is refreshed on every content mutation (RFC 3339).
	// Equal to CreatedAt until the first edit.
	UpdatedAt string `json:"updatedAt"`
}
