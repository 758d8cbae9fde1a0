package ports

import (
	"context"

	"drone-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving pending Order records from a data source.
type OrderRepository interface {
	// Retrieve all orders awaiting scheduling, in submission order.
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
