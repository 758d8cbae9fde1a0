package distance

import (
	"errors"
	"fmt"
)

// Matrix is the in-memory DistanceOracle: a precomputed square grid of zone
// distances in kilometers, loaded once before scheduling begins. Lookups are
// pure; validity of the grid is established at construction time, which is
// where ingestion's responsibility for malformed input ends.
type Matrix struct {
	cells [][]float64
}

// NewMatrix validates and wraps a square grid. The grid must be symmetric
// with a zero diagonal and no negative entries; zone 0 is the warehouse.
func NewMatrix(cells [][]float64) (*Matrix, error) {
	n := len(cells)
	if n == 0 {
		return nil, errors.New("distance matrix: grid is empty")
	}

	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("distance matrix: row %d has %d cells, want %d", i, len(row), n)
		}
		if row[i] != 0 {
			return nil, fmt.Errorf("distance matrix: diagonal cell (%d,%d) = %v, want 0", i, i, row[i])
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("distance matrix: negative distance %v at (%d,%d)", v, i, j)
			}
			if cells[j][i] != v {
				return nil, fmt.Errorf("distance matrix: asymmetric at (%d,%d): %v vs %v", i, j, v, cells[j][i])
			}
		}
	}

	return &Matrix{cells: cells}, nil
}

// Zones returns the number of zones covered, including the warehouse.
func (m *Matrix) Zones() int { return len(m.cells) }

// Distance returns the kilometers between the centers of the two zones.
// Out-of-range zone ids are a caller contract violation.
func (m *Matrix) Distance(origin, destination int) float64 {
	return m.cells[origin][destination]
}
