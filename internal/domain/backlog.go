package domain

import (
	"fmt"
	"slices"
)

// Backlog holds the orders not yet assigned to any trip.
//
// It is passed explicitly into whichever trip builder is active, so the
// partition invariant — every order lives in the backlog or in exactly one
// trip, never both — is enforced at the single point where orders change
// hands (Remove).
type Backlog struct {
	orders []*Order
}

func NewBacklog(orders []*Order) *Backlog {
	b := &Backlog{orders: make([]*Order, len(orders))}
	copy(b.orders, orders)
	return b
}

func (b *Backlog) Len() int { return len(b.orders) }

// Pending returns a copy of the remaining orders in backlog order.
func (b *Backlog) Pending() []*Order {
	out := make([]*Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Oldest returns the earliest-submitted order, or nil when the backlog is
// empty. Equal timestamps fall back to the lowest order id for determinism.
func (b *Backlog) Oldest() *Order {
	var oldest *Order
	for _, o := range b.orders {
		if oldest == nil ||
			o.Timestamp < oldest.Timestamp ||
			(o.Timestamp == oldest.Timestamp && o.OrderID < oldest.OrderID) {
			oldest = o
		}
	}
	return oldest
}

// SortByTimestamp orders the backlog by submission time, oldest first.
func (b *Backlog) SortByTimestamp() {
	slices.SortFunc(b.orders, func(x, y *Order) int {
		if x.Timestamp != y.Timestamp {
			if x.Timestamp < y.Timestamp {
				return -1
			}
			return 1
		}
		return x.OrderID - y.OrderID
	})
}

// InZone returns the backlog orders destined for the given zone,
// preserving backlog order.
func (b *Backlog) InZone(zone int) []*Order {
	var out []*Order
	for _, o := range b.orders {
		if o.Zone == zone {
			out = append(out, o)
		}
	}
	return out
}

// Remove hands the given orders off to a trip. It fails if any order is not
// present, which would mean the order is already owned by another trip or
// was never submitted.
func (b *Backlog) Remove(orders []*Order) error {
	for _, o := range orders {
		idx := slices.Index(b.orders, o)
		if idx < 0 {
			return fmt.Errorf("remove from backlog: order %d is not in the backlog", o.OrderID)
		}
		b.orders = slices.Delete(b.orders, idx, idx+1)
	}
	return nil
}

// Add returns orders to the backlog (e.g. after a packing pass that could
// not place them).
func (b *Backlog) Add(orders ...*Order) {
	b.orders = append(b.orders, orders...)
}
