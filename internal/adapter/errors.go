package adapter

import "errors"

var (
	// ErrRateLimited means the endpoint returned 429 and further requests
	// should be held back until the cooldown clears.
	ErrRateLimited = errors.New("news endpoint rate limit exceeded")

	// ErrUnauthorized means the API key was missing or rejected (401).
	ErrUnauthorized = errors.New("news endpoint rejected the api key")

	// ErrForbidden means the key is valid but not allowed this request (403).
	ErrForbidden = errors.New("news endpoint forbade the request")

	// ErrClient covers any other 4xx response.
	ErrClient = errors.New("news request rejected")

	// ErrServer covers 5xx responses.
	ErrServer = errors.New("news endpoint failed")

	// ErrTimeout means the request exceeded its deadline before a
	// response arrived.
	ErrTimeout = errors.New("news request timed out")

	// ErrNetwork means the request never produced an HTTP response.
	ErrNetwork = errors.New("news endpoint unreachable")
)
