package location

import (
	"context"

	"github.com/notesapp/pocketnotes/models"
)

// noopBridge is the stand-in Bridge for builds without a positioning
// source. Permissions are always granted, the stream never delivers and
// on-demand fixes fail with ErrNoProvider.
type noopBridge struct {
	updates chan models.LocationSample
}

func NewNoopBridge() Bridge {
	return &noopBridge{updates: make(chan models.LocationSample)}
}

func (b *noopBridge) CheckPermissions(_ context.Context) (bool, error) {
	return true, nil
}

func (b *noopBridge) RequestPermissions(_ context.Context) (PermissionStatus, error) {
	return PermissionGranted, nil
}

func (b *noopBridge) CurrentLocation(_ context.Context) (models.LocationSample, error) {
	return models.LocationSample{}, ErrNoProvider
}

func (b *noopBridge) StartUpdates(_ context.Context) error {
	return nil
}

func (b *noopBridge) StopUpdates(_ context.Context) error {
	return nil
}

func (b *noopBridge) Updates() <-chan models.LocationSample {
	return b.updates
}
