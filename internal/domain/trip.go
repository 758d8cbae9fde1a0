package domain

// Represents one complete flight: warehouse → orders in sequence → warehouse.
// The sequence order is significant — it is the actual flight plan chosen by
// a trip builder. A Trip is produced once and never mutated afterwards,
// except by the delivery-draining process that consumes it.
type Trip struct {
	TripID string
	Orders []*Order
}

func (t *Trip) Empty() bool { return len(t.Orders) == 0 }

// Total payload weight in grams at takeoff.
func (t *Trip) TotalWeight() int {
	total := 0
	for _, o := range t.Orders {
		total += o.Weight
	}
	return total
}

func (t *Trip) HasFragile() bool {
	for _, o := range t.Orders {
		if o.Fragile {
			return true
		}
	}
	return false
}

func (t *Trip) HasHazardous() bool {
	for _, o := range t.Orders {
		if o.Hazardous {
			return true
		}
	}
	return false
}
