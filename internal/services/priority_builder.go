package services

import (
	"slices"

	"github.com/google/uuid"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// Builds one trip per pass over the current priority frontier.
//
// The most urgent candidate anchors the trip: its customer's whole order is
// attempted first so multi-item orders travel together when capacity allows,
// and its fragile/hazardous nature fixes the trip's exclusion class — fragile
// and hazardous cargo never share a flight.
type PriorityTripBuilder struct {
	oracle ports.DistanceOracle
	energy EnergyModel
}

func NewPriorityTripBuilder(oracle ports.DistanceOracle, energy EnergyModel) *PriorityTripBuilder {
	return &PriorityTripBuilder{oracle: oracle, energy: energy}
}

// BuildMostOptimalTrip assembles a trip from the caller-supplied candidate
// list. Orders that violate the exclusion class or have no feasible position
// are skipped, never aborting the pass. The returned sequence is the
// simulator's committed order — the positions that maximize remaining
// charge — not the processing order.
func (b *PriorityTripBuilder) BuildMostOptimalTrip(candidates []*domain.Order) *domain.Trip {
	trip := &domain.Trip{TripID: uuid.NewString()}
	if len(candidates) == 0 {
		return trip
	}

	sim := NewBatterySimulator(b.oracle, b.energy)
	defer sim.Clear()

	byUrgency := make([]*domain.Order, len(candidates))
	copy(byUrgency, candidates)
	slices.SortFunc(byUrgency, compareUrgency)

	// The single most urgent order fixes the exclusion class for the trip's
	// lifetime; it is never relaxed. When the anchor carries neither flag,
	// the class still locks as soon as an accepted order does, so fragile
	// and hazardous cargo can never end up sharing the flight.
	anchor := byUrgency[0]
	excludeHazardous := anchor.Fragile
	excludeFragile := anchor.Hazardous

	placed := make(map[*domain.Order]bool, len(byUrgency))
	tryInsert := func(o *domain.Order) {
		if placed[o] {
			return
		}
		if (excludeHazardous && o.Hazardous) || (excludeFragile && o.Fragile) {
			return
		}
		if pos := sim.FindBestOrderPosition(o); pos >= 0 {
			sim.AddOrder(o, pos)
			placed[o] = true
			excludeHazardous = excludeHazardous || o.Fragile
			excludeFragile = excludeFragile || o.Hazardous
		}
	}

	// The anchor customer's group first, in urgency order.
	for _, o := range byUrgency {
		if o.CustomerID == anchor.CustomerID {
			tryInsert(o)
		}
	}

	// Then the rest: most urgent first, heaviest first within a tie.
	rest := make([]*domain.Order, 0, len(byUrgency))
	for _, o := range byUrgency {
		if o.CustomerID != anchor.CustomerID {
			rest = append(rest, o)
		}
	}
	slices.SortFunc(rest, func(x, y *domain.Order) int {
		if c := compareUrgencyKey(x, y); c != 0 {
			return c
		}
		if x.Weight != y.Weight {
			return y.Weight - x.Weight
		}
		return x.OrderID - y.OrderID
	})
	for _, o := range rest {
		tryInsert(o)
	}

	trip.Orders = sim.Orders()
	return trip
}

// compareUrgencyKey compares the urgency tuple (perishable, subscriber,
// timestamp); lower sorts first. Returns 0 on a full tie.
func compareUrgencyKey(x, y *domain.Order) int {
	if x.Perishable != y.Perishable {
		if x.Perishable {
			return -1
		}
		return 1
	}
	if x.Subscriber != y.Subscriber {
		if x.Subscriber {
			return -1
		}
		return 1
	}
	if x.Timestamp != y.Timestamp {
		if x.Timestamp < y.Timestamp {
			return -1
		}
		return 1
	}
	return 0
}

// compareUrgency is compareUrgencyKey made total with the order id tiebreak.
func compareUrgency(x, y *domain.Order) int {
	if c := compareUrgencyKey(x, y); c != 0 {
		return c
	}
	return x.OrderID - y.OrderID
}
