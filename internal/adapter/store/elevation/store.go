package elevation

// Store provides observer elevation lookups for requests that do not
// carry their own elevation.
type Store interface {
	// ElevationAt returns the surface elevation in meters above sea level
	// for a lat/lon location. Ocean cells report zero (the sea surface),
	// not the sea floor.
	ElevationAt(lat, lon float64) (float64, error)

	// Close releases any resources held by the store.
	Close() error
}
