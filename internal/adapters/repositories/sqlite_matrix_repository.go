package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the MatrixRepository port. Distances are
// stored as sparse (origin, destination) pairs and reassembled into the dense
// grid the in-memory oracle wants.
type SqliteMatrixRepository struct{ DB *sql.DB }

func NewSqliteMatrixRepository(db *sql.DB) *SqliteMatrixRepository {
	return &SqliteMatrixRepository{DB: db}
}

func (s *SqliteMatrixRepository) LoadMatrix(ctx context.Context) ([][]float64, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite matrix repository: DB is nil")
	}

	var zones int
	countQuery := `SELECT COUNT(DISTINCT origin) FROM zone_distances;`
	if err := s.DB.QueryRowContext(ctx, countQuery).Scan(&zones); err != nil {
		return nil, fmt.Errorf("load matrix: count zones: %w", err)
	}
	if zones == 0 {
		return nil, errors.New("load matrix: zone_distances table is empty")
	}

	cells := make([][]float64, zones)
	for i := range cells {
		cells[i] = make([]float64, zones)
	}

	query := `SELECT origin, destination, distance_km FROM zone_distances;`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load matrix: query zone_distances table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var origin, destination int
		var km float64
		if err := rows.Scan(&origin, &destination, &km); err != nil {
			return nil, fmt.Errorf("load matrix: scan row: %w", err)
		}
		if origin < 0 || origin >= zones || destination < 0 || destination >= zones {
			return nil, fmt.Errorf("load matrix: cell (%d,%d) outside %d-zone grid", origin, destination, zones)
		}
		cells[origin][destination] = km
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load matrix: row iteration: %w", err)
	}

	return cells, nil
}
