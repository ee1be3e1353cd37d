// Package location tracks the device position: a distance-filtered sample
// history over a device bridge, with CSV export.
package location

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/models"
)

const (
	// minDistanceMeters is the movement threshold below which a
	// continuous update is considered noise and dropped.
	minDistanceMeters = 50.0

	// earthRadiusMeters is the mean Earth radius used by the haversine
	// distance.
	earthRadiusMeters = 6371000.0

	dateTimeLayout = "2006-01-02 15:04:05"

	defaultBridgeTimeout = 5 * time.Second
)

// Sampler filters the bridge's continuous position stream down to
// meaningful movement and keeps the accepted samples as an in-memory
// history. Start and Stop are idempotent; at most one subscription to the
// bridge stream exists at a time.
type Sampler struct {
	bridge        Bridge
	exportDir     string
	bridgeTimeout time.Duration
	logger        *logger.Logger

	mu           sync.Mutex
	running      bool
	cancel       context.CancelFunc
	lastAccepted *models.LocationSample
	history      []models.LocationRecord
}

func NewSampler(bridge Bridge, cfg config.Location, logger *logger.Logger) *Sampler {
	if cfg.BridgeTimeout <= 0 {
		cfg.BridgeTimeout = defaultBridgeTimeout
	}

	return &Sampler{
		bridge:        bridge,
		exportDir:     cfg.ExportDir,
		bridgeTimeout: cfg.BridgeTimeout,
		logger:        logger,
	}
}

// Start checks (and if needed requests) location permission, starts the
// bridge's continuous delivery and subscribes to it. Calling Start while
// already running is a no-op.
func (s *Sampler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.ensurePermission(ctx); err != nil {
		return err
	}

	if err := s.bridge.StartUpdates(ctx); err != nil {
		s.logger.Err(err).Str("func", "Sampler.Start").Msg("bridge failed to start continuous updates")
		return fmt.Errorf("start location updates: %w", err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	// a concurrent Start may have won the race while permissions were
	// being resolved
	if s.running {
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.running = true
	s.cancel = cancel
	s.mu.Unlock()

	go s.consume(streamCtx)

	return nil
}

// Stop halts continuous delivery. Calling Stop while stopped is a no-op.
func (s *Sampler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	cancel()

	ctx, cancelTimeout := context.WithTimeout(context.Background(), s.bridgeTimeout)
	defer cancelTimeout()

	if err := s.bridge.StopUpdates(ctx); err != nil {
		s.logger.Err(err).Str("func", "Sampler.Stop").Msg("bridge failed to stop continuous updates")
		return fmt.Errorf("stop location updates: %w", err)
	}

	return nil
}

// Running reports whether the sampler is consuming the bridge stream.
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Current resolves a single on-demand position fix and records it.
func (s *Sampler) Current(ctx context.Context) (models.LocationSample, error) {
	if err := s.ensurePermission(ctx); err != nil {
		return models.LocationSample{}, err
	}

	fixCtx, cancel := context.WithTimeout(ctx, s.bridgeTimeout)
	defer cancel()

	sample, err := s.bridge.CurrentLocation(fixCtx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Sampler.Current").Msg("bridge failed to resolve current location")
		return models.LocationSample{}, fmt.Errorf("resolve current location: %w", err)
	}

	s.mu.Lock()
	s.recordLocked(sample)
	s.mu.Unlock()

	return sample, nil
}

// Accept applies the movement filter to candidate. The sample is recorded
// and becomes the new reference point iff it is the first one seen or it
// lies at least 50 meters from the previously accepted sample.
func (s *Sampler) Accept(candidate models.LocationSample) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastAccepted != nil {
		distance := haversineMeters(
			s.lastAccepted.Latitude, s.lastAccepted.Longitude,
			candidate.Latitude, candidate.Longitude,
		)
		if distance < minDistanceMeters {
			return false
		}
	}

	s.recordLocked(candidate)

	return true
}

// History returns a copy of the accepted records, oldest first.
func (s *Sampler) History() []models.LocationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LocationRecord, len(s.history))
	copy(out, s.history)

	return out
}

func (s *Sampler) HistoryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.history)
}

func (s *Sampler) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.lastAccepted = nil
}

// consume drains the bridge stream until the context is cancelled or the
// bridge closes the channel.
func (s *Sampler) consume(ctx context.Context) {
	updates := s.bridge.Updates()

	for {
		select {
		case <-ctx.Done():
			return
		case sample, ok := <-updates:
			if !ok {
				return
			}
			s.Accept(sample)
		}
	}
}

// ensurePermission resolves the permission state, asking the user when
// access is not yet granted.
func (s *Sampler) ensurePermission(ctx context.Context) error {
	granted, err := s.bridge.CheckPermissions(ctx)
	if err != nil {
		return fmt.Errorf("check location permission: %w", err)
	}
	if granted {
		return nil
	}

	status, err := s.bridge.RequestPermissions(ctx)
	if err != nil {
		return fmt.Errorf("request location permission: %w", err)
	}
	if status != PermissionGranted {
		s.logger.Warn().Str("func", "Sampler.ensurePermission").Str("status", string(status)).Msg("location permission refused")
		return ErrPermissionDenied
	}

	return nil
}

// recordLocked appends sample to the history and makes it the reference
// point for the movement filter. Caller holds s.mu.
func (s *Sampler) recordLocked(sample models.LocationSample) {
	if sample.Timestamp == 0 {
		sample.Timestamp = time.Now().UnixMilli()
	}

	s.lastAccepted = &sample
	s.history = append(s.history, models.LocationRecord{
		LocationSample: sample,
		DateTime:       time.UnixMilli(sample.Timestamp).Format(dateTimeLayout),
	})
}

// haversineMeters is the great-circle distance between two coordinates.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRadians := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
