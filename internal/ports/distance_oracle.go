package ports

// Contract for looking up the flight distance between two delivery zones.
//
// Implementations are backed by a precomputed symmetric matrix loaded before
// scheduling begins, so lookups are pure: no I/O, no errors. Zone 0 is the
// warehouse. Callers must only pass zone ids covered by the loaded matrix;
// out-of-range ids are a caller contract violation.
type DistanceOracle interface {
	// Return the distance in kilometers between the centers of the two zones.
	Distance(origin, destination int) float64
}
