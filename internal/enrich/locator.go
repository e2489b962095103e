package enrich

import (
	"context"

	"github.com/rotisserie/eris"
)

// ErrUnavailable indicates coordinates could not be acquired (permission
// denied, timeout, provider failure).
var ErrUnavailable = eris.New("enrich: unable to acquire coordinates")

// Coordinates is a device position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator acquires the device's coordinates. A nil Locator on the
// Service means the capability does not exist at all.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context) (Coordinates, error)

// Locate calls the wrapped function.
func (f LocatorFunc) Locate(ctx context.Context) (Coordinates, error) {
	return f(ctx)
}

// StaticLocator returns fixed coordinates, typically from flags or config.
type StaticLocator struct {
	Coords Coordinates
}

// Locate returns the configured coordinates.
func (l StaticLocator) Locate(_ context.Context) (Coordinates, error) {
	return l.Coords, nil
}
