package ports

import "context"

// Port: a boundary for loading the zone distance matrix from a data source.
// The matrix is read once at startup; the core only ever sees the resulting
// DistanceOracle.
type MatrixRepository interface {
	// Return the full square matrix of zone distances in kilometers,
	// indexed [origin][destination].
	LoadMatrix(ctx context.Context) ([][]float64, error)
}
