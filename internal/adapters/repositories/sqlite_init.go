package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"drone-dispatch-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		zone INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		customer_id INTEGER NOT NULL,
		subscriber INTEGER NOT NULL DEFAULT 0,
		fragile INTEGER NOT NULL DEFAULT 0,
		hazardous INTEGER NOT NULL DEFAULT 0,
		perishable INTEGER NOT NULL DEFAULT 0
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS zone_distances (
		origin INTEGER NOT NULL,
		destination INTEGER NOT NULL,
		distance_km REAL NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_timestamp
	ON orders(timestamp, order_id);
	`

	statements := []string{
		createOrdersQuery,
		createDistancesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the orders table from an in-memory slice, typically loaded from
// the CSV feed. Existing rows with the same order id are replaced.
func SeedOrders(db *sql.DB, orders []*domain.Order) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO orders (
		order_id,
		timestamp,
		zone,
		weight,
		customer_id,
		subscriber,
		fragile,
		hazardous,
		perishable
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		_, err := stmt.Exec(o.OrderID, o.Timestamp, o.Zone, o.Weight, o.CustomerID,
			o.Subscriber, o.Fragile, o.Hazardous, o.Perishable)
		if err != nil {
			return fmt.Errorf("seed orders: insert order_id=%d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}

// Populate the zone_distances table from a dense matrix.
func SeedDistances(db *sql.DB, cells [][]float64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed distances: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO zone_distances (origin, destination, distance_km)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed distances: prepare insert: %w", err)
	}
	defer stmt.Close()

	for origin, row := range cells {
		for destination, km := range row {
			if _, err := stmt.Exec(origin, destination, km); err != nil {
				return fmt.Errorf("seed distances: insert (%d,%d): %w", origin, destination, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed distances: commit tx: %w", err)
	}

	return nil
}
