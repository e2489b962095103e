// Package enrich fills the form's environmental fields from the device
// location via concurrent weather and reverse-geocoding lookups.
package enrich

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Krithish69/Agriculture-Prediction/internal/form"
	"github.com/Krithish69/Agriculture-Prediction/pkg/geocode"
	"github.com/Krithish69/Agriculture-Prediction/pkg/weather"
)

// Status messages shown while an enrichment attempt runs.
const (
	StatusUnsupported    = "Geolocation is not supported on this device."
	StatusLocating       = "Locating..."
	StatusFetching       = "Fetching weather & location details..."
	StatusUpdated        = "Data updated successfully!"
	StatusFetchFailed    = "Failed to fetch data."
	StatusLocationFailed = "Unable to retrieve location. Please allow permissions."
)

// Service merges location-derived weather data into the form store.
type Service struct {
	store   *form.Store
	weather weather.Client
	geocode geocode.Client
	locator Locator

	clearDelay time.Duration

	// seq tags every attempt; a completion whose tag is no longer the
	// latest is stale and must not touch the store.
	seq atomic.Uint64
}

// Option configures the Service.
type Option func(*Service)

// WithClearDelay overrides how long a terminal status message lingers.
func WithClearDelay(d time.Duration) Option {
	return func(s *Service) {
		s.clearDelay = d
	}
}

// New creates an enrichment Service. A nil locator models an environment
// without a location capability.
func New(store *form.Store, wc weather.Client, gc geocode.Client, locator Locator, opts ...Option) *Service {
	s := &Service{
		store:      store,
		weather:    wc,
		geocode:    gc,
		locator:    locator,
		clearDelay: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enrich acquires coordinates, fetches current weather and the place name
// concurrently, and applies both to the store in one atomic step. All
// outcomes are reported through the store's status line, which clears
// itself after the configured delay. Enrich returns once the attempt is
// terminal; only the status clear runs after it.
func (s *Service) Enrich(ctx context.Context) {
	attempt := s.seq.Add(1)
	log := zap.L().With(
		zap.String("attempt_id", uuid.NewString()),
		zap.Uint64("attempt_seq", attempt),
	)

	if s.locator == nil {
		log.Warn("location capability unavailable")
		s.finish(attempt, StatusUnsupported)
		return
	}

	s.store.SetLocationStatus(StatusLocating)
	s.store.SetLocationName("")

	coords, err := s.locator.Locate(ctx)
	if err != nil {
		log.Warn("coordinate acquisition failed", zap.Error(err))
		s.finish(attempt, StatusLocationFailed)
		return
	}

	s.store.SetLocationStatus(StatusFetching)
	log.Info("coordinates acquired",
		zap.Float64("lat", coords.Latitude),
		zap.Float64("lon", coords.Longitude),
	)

	cond, place, err := s.fetch(ctx, coords)
	if err != nil {
		log.Warn("enrichment fetch failed", zap.Error(err))
		s.finish(attempt, StatusFetchFailed)
		return
	}

	// Atomic merge: weather fields, place label and status land in one
	// store update, or not at all when a newer attempt has started.
	if !s.latest(attempt) {
		log.Debug("discarding stale enrichment result")
		return
	}
	s.store.Update(func(snap *form.Snapshot) {
		if cond.HasCurrent {
			snap.Fields.Temperature = formatValue(cond.Temperature)
			snap.Fields.Humidity = formatValue(cond.Humidity)
			// Rain readings of zero must not clobber a manually
			// entered rainfall value.
			if cond.Rain > 0 {
				snap.Fields.Rainfall = formatValue(cond.Rain)
			}
		}
		snap.LocationName = place.Label()
		snap.LocationStatus = StatusUpdated
	})
	s.scheduleClear(StatusUpdated)
	log.Info("enrichment applied", zap.String("place", place.Label()))
}

// fetch issues the weather and reverse-geocode requests concurrently and
// waits for both before returning.
func (s *Service) fetch(ctx context.Context, coords Coordinates) (*weather.Conditions, *geocode.Place, error) {
	var (
		cond  *weather.Conditions
		place *geocode.Place
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.weather.Current(gctx, coords.Latitude, coords.Longitude)
		if err != nil {
			return eris.Wrap(err, "enrich: weather")
		}
		cond = c
		return nil
	})
	g.Go(func() error {
		p, err := s.geocode.Reverse(gctx, coords.Latitude, coords.Longitude)
		if err != nil {
			return eris.Wrap(err, "enrich: reverse geocode")
		}
		place = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return cond, place, nil
}

// finish writes a terminal status for the attempt and schedules its clear.
func (s *Service) finish(attempt uint64, status string) {
	if !s.latest(attempt) {
		return
	}
	s.store.SetLocationStatus(status)
	s.scheduleClear(status)
}

// scheduleClear blanks the status line after the clear delay. Fire and
// forget: never awaited, not cancellable. The conditional clear keeps an
// old timer from wiping a newer attempt's status.
func (s *Service) scheduleClear(status string) {
	time.AfterFunc(s.clearDelay, func() {
		s.store.ClearLocationStatus(status)
	})
}

func (s *Service) latest(attempt uint64) bool {
	return s.seq.Load() == attempt
}

// formatValue renders a fetched reading as form field text.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
