package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"drone-dispatch-service/internal/domain"
)

// SQLite-backed implementation of the OrderRepository port.
type SqliteOrderRepository struct{ DB *sql.DB }

func NewSqliteOrderRepository(db *sql.DB) *SqliteOrderRepository {
	return &SqliteOrderRepository{DB: db}
}

// Return all pending orders, oldest first.
func (s *SqliteOrderRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite order repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		timestamp,
		zone,
		weight,
		customer_id,
		subscriber,
		fragile,
		hazardous,
		perishable
	FROM orders
	ORDER BY timestamp, order_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
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
