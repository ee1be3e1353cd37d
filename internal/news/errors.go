package news

import "errors"

var (
	// ErrSuperseded means a newer request was issued while this one was in
	// flight; its response was discarded and the feed was not touched.
	ErrSuperseded = errors.New("news request superseded by a newer one")

	// ErrNoMorePages means the feed has reached the end of the result set.
	ErrNoMorePages = errors.New("no more news pages to load")
)
