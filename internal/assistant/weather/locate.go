package weather

import "context"

// Locator supplies the user's coordinates. Runtimes without a geolocation
// capability use FixedLocator as the failover.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// FixedLocator always reports the same coordinates.
type FixedLocator struct {
	Lat float64
	Lon float64
}

func (f FixedLocator) Locate(context.Context) (float64, float64, error) {
	return f.Lat, f.Lon, nil
}

// DefaultLocation is central Bengaluru, the fixed default when geolocation is
// unavailable.
var DefaultLocation = FixedLocator{Lat: 12.9716, Lon: 77.5946}
