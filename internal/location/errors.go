package location

import "errors"

var (
	// ErrPermissionDenied means the user refused location access.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrNoData means an export was requested with an empty history.
	ErrNoData = errors.New("no location data to export")

	// ErrNoProvider means no positioning source is available on this
	// platform.
	ErrNoProvider = errors.New("no location provider available")
)
