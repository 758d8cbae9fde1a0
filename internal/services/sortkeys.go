package services

import (
	"fmt"
	"slices"

	"drone-dispatch-service/internal/domain"
)

// SortField identifies one component of a configurable composite sort key.
// The comparison harness takes a list of fields instead of ad hoc key
// functions, keeping dispatch configurations a closed, typed set.
type SortField string

const (
	SortByPriorityScore SortField = "priority_score"
	SortByDeliveryZone  SortField = "delivery_zone"
	SortByTimestamp     SortField = "timestamp"
	SortByWeight        SortField = "weight"
	SortByOrderID       SortField = "order_id"
)

// ParseSortField maps a config/wire token to its SortField.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByPriorityScore, SortByDeliveryZone, SortByTimestamp, SortByWeight, SortByOrderID:
		return SortField(s), nil
	}
	return "", fmt.Errorf("parse sort field: unknown field %q", s)
}

func fieldValue(o *domain.Order, f SortField) int64 {
	switch f {
	case SortByPriorityScore:
		return int64(o.PriorityScore())
	case SortByDeliveryZone:
		return int64(o.Zone)
	case SortByTimestamp:
		return o.Timestamp
	case SortByWeight:
		return int64(o.Weight)
	case SortByOrderID:
		return int64(o.OrderID)
	}
	return 0
}

// OrderComparator composes the given fields into a single comparator,
// most significant field first. The order id is always the final tiebreak,
// so the resulting ordering is total and repeated runs stay byte-identical.
func OrderComparator(fields []SortField) func(x, y *domain.Order) int {
	return func(x, y *domain.Order) int {
		for _, f := range fields {
			vx, vy := fieldValue(x, f), fieldValue(y, f)
			if vx < vy {
				return -1
			}
			if vx > vy {
				return 1
			}
		}
		if x.OrderID != y.OrderID {
			if x.OrderID < y.OrderID {
				return -1
			}
			return 1
		}
		return 0
	}
}

// SortOrders sorts in place by the composite key.
func SortOrders(orders []*domain.Order, fields []SortField) {
	slices.SortFunc(orders, OrderComparator(fields))
}
