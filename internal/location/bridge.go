package location

import (
	"context"

	"github.com/notesapp/pocketnotes/models"
)

//go:generate mockgen -source=bridge.go -destination=../mock/bridge_mock.go -package=mock

// PermissionStatus is the outcome of a location permission request.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
	// PermissionBlocked means the user denied permanently; asking again
	// is pointless until they change it in system settings.
	PermissionBlocked PermissionStatus = "blocked"
)

// Bridge is the device location provider. Implementations wrap whatever
// positioning source is available (GPS hardware, a network provider, a
// simulator) and already resolve competing providers to the
// better-accuracy reading before handing samples over.
type Bridge interface {
	// CheckPermissions reports whether location access is currently granted.
	CheckPermissions(ctx context.Context) (bool, error)

	// RequestPermissions asks the user for location access.
	RequestPermissions(ctx context.Context) (PermissionStatus, error)

	// CurrentLocation resolves a single on-demand position fix.
	CurrentLocation(ctx context.Context) (models.LocationSample, error)

	// StartUpdates begins continuous position delivery on the channel
	// returned by Updates.
	StartUpdates(ctx context.Context) error

	// StopUpdates halts continuous delivery. The Updates channel is
	// closed once delivery has fully stopped.
	StopUpdates(ctx context.Context) error

	// Updates is the continuous sample stream. The same channel is
	// returned on every call.
	Updates() <-chan models.LocationSample
}
