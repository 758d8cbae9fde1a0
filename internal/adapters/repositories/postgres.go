package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"drone-dispatch-service/internal/domain"
)

// Postgres-backed implementations of the OrderRepository and MatrixRepository
// ports, sharing one connection pool. The schema mirrors the SQLite one; only
// the placeholder style differs.
type PostgresRepository struct{ DB *sql.DB }

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (p *PostgresRepository) InitSchema(ctx context.Context) error {
	if p.DB == nil {
		return errors.New("postgres repository: DB is nil")
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			order_id BIGINT PRIMARY KEY,
			timestamp BIGINT NOT NULL,
			zone INT NOT NULL,
			weight INT NOT NULL,
			customer_id INT NOT NULL,
			subscriber BOOLEAN NOT NULL DEFAULT FALSE,
			fragile BOOLEAN NOT NULL DEFAULT FALSE,
			hazardous BOOLEAN NOT NULL DEFAULT FALSE,
			perishable BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS zone_distances (
			origin INT NOT NULL,
			destination INT NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (origin, destination)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_timestamp
		ON orders(timestamp, order_id);`,
	}

	for i, stmt := range statements {
		if _, err := p.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}
	return nil
}

func (p *PostgresRepository) SeedOrders(ctx context.Context, orders []*domain.Order) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (
		order_id, timestamp, zone, weight, customer_id,
		subscriber, fragile, hazardous, perishable
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (order_id) DO UPDATE SET
		timestamp = EXCLUDED.timestamp,
		zone = EXCLUDED.zone,
		weight = EXCLUDED.weight,
		customer_id = EXCLUDED.customer_id,
		subscriber = EXCLUDED.subscriber,
		fragile = EXCLUDED.fragile,
		hazardous = EXCLUDED.hazardous,
		perishable = EXCLUDED.perishable;
	`
	for _, o := range orders {
		_, err := tx.ExecContext(ctx, query, o.OrderID, o.Timestamp, o.Zone, o.Weight,
			o.CustomerID, o.Subscriber, o.Fragile, o.Hazardous, o.Perishable)
		if err != nil {
			return fmt.Errorf("seed orders: insert order_id=%d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}
	return nil
}

func (p *PostgresRepository) SeedDistances(ctx context.Context, cells [][]float64) error {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed distances: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO zone_distances (origin, destination, distance_km)
	VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE SET
		distance_km = EXCLUDED.distance_km;
	`
	for origin, row := range cells {
		for destination, km := range row {
			if _, err := tx.ExecContext(ctx, query, origin, destination, km); err != nil {
				return fmt.Errorf("seed distances: insert (%d,%d): %w", origin, destination, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed distances: commit tx: %w", err)
	}
	return nil
}

func (p *PostgresRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if p.DB == nil {
		return nil, errors.New("postgres repository: DB is nil")
	}

	query := `
	SELECT
		order_id, timestamp, zone, weight, customer_id,
		subscriber, fragile, hazardous, perishable
	FROM orders
	ORDER BY timestamp, order_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		err := rows.Scan(&o.OrderID, &o.Timestamp, &o.Zone, &o.Weight, &o.CustomerID,
			&o.Subscriber, &o.Fragile, &o.Hazardous, &o.Perishable)
		if err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

func (p *PostgresRepository) LoadMatrix(ctx context.Context) ([][]float64, error) {
	if p.DB == nil {
		return nil, errors.New("postgres repository: DB is nil")
	}

	var zones int
	countQuery := `SELECT COUNT(DISTINCT origin) FROM zone_distances;`
	if err := p.DB.QueryRowContext(ctx, countQuery).Scan(&zones); err != nil {
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
	rows, err := p.DB.QueryContext(ctx, query)
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
