package services

import (
	"slices"

	"github.com/google/uuid"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// Builds one trip at a time from the oldest orders of a single zone.
//
// Phase 1 appends orders in timestamp order for FIFO fairness, checking
// feasibility at the current tail only. The first order that no longer fits,
// and everything submitted after it, becomes the overflow set; phase 2
// retries the overflow heaviest-first to soak up whatever battery and weight
// margin remains before the next trip.
type ZoneTripBuilder struct {
	oracle ports.DistanceOracle
	energy EnergyModel
}

func NewZoneTripBuilder(oracle ports.DistanceOracle, energy EnergyModel) *ZoneTripBuilder {
	return &ZoneTripBuilder{oracle: oracle, energy: energy}
}

// BuildTrip assembles a trip from the backlog orders destined for the given
// zone. The backlog is assumed pre-sorted by ascending timestamp. The
// returned trip is empty when no candidate fits; interpreting that is the
// scheduler's job.
func (b *ZoneTripBuilder) BuildTrip(backlog *domain.Backlog, zone int) *domain.Trip {
	sim := NewBatterySimulator(b.oracle, b.energy)
	defer sim.Clear()

	candidates := backlog.InZone(zone)

	// Phase 1: FIFO tail appends until the first order that does not fit.
	var overflow []*domain.Order
	for i, o := range candidates {
		if !tailFeasible(sim, o) {
			overflow = candidates[i:]
			break
		}
		sim.AddOrder(o, sim.Len())
	}

	// Phase 2: heaviest overflow first, anywhere a position remains.
	heavyFirst := make([]*domain.Order, len(overflow))
	copy(heavyFirst, overflow)
	slices.SortFunc(heavyFirst, func(x, y *domain.Order) int {
		if x.Weight != y.Weight {
			return y.Weight - x.Weight
		}
		return x.OrderID - y.OrderID
	})

	for _, o := range heavyFirst {
		if pos := sim.FindBestOrderPosition(o); pos >= 0 {
			sim.AddOrder(o, pos)
		}
	}

	return &domain.Trip{TripID: uuid.NewString(), Orders: sim.Orders()}
}

// tailFeasible reports whether appending the order at the current tail keeps
// the full-charge simulation alive. Phase 1 deliberately never scans other
// positions: FIFO order is the point.
func tailFeasible(sim *BatterySimulator, o *domain.Order) bool {
	trial := append(sim.Orders(), o)
	_, ok := sim.RunTrip(trial, true)
	return ok
}
