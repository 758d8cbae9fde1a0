package services

import (
	"errors"
	"slices"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// Reported when the live drone runs out of charge mid-flight during real
// delivery. Trip construction can never trigger it: builders only accept
// orders whose simulated trip stays non-negative from a full charge.
var ErrBatteryDepleted = errors.New("drone battery depleted during delivery")

const warehouseZone = 0

// BatterySimulator owns a drone's committed order sequence and battery level.
//
// Trip builders construct one simulator per build call and use it as scratch
// space: FindBestOrderPosition probes candidate insertions against a full
// charge, AddOrder commits one, and Clear resets the sequence so state never
// leaks from one trip attempt into the next. The delivery path reuses the
// same type with its live, partially discharged battery.
type BatterySimulator struct {
	oracle ports.DistanceOracle
	energy EnergyModel

	orders []*domain.Order
	charge float64
}

func NewBatterySimulator(oracle ports.DistanceOracle, energy EnergyModel) *BatterySimulator {
	return &BatterySimulator{oracle: oracle, energy: energy, charge: 1.0}
}

func (s *BatterySimulator) Len() int { return len(s.orders) }

// Charge returns the stored battery level in [0, 1].
func (s *BatterySimulator) Charge() float64 { return s.charge }

// Orders returns a copy of the committed sequence.
func (s *BatterySimulator) Orders() []*domain.Order {
	out := make([]*domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// AddOrder commits an order into the sequence at the given index. The caller
// has already validated feasibility via FindBestOrderPosition.
func (s *BatterySimulator) AddOrder(o *domain.Order, position int) {
	s.orders = slices.Insert(s.orders, position, o)
}

// Clear empties the committed sequence so the simulator can be reused as
// scratch space without allocating a new one.
func (s *BatterySimulator) Clear() { s.orders = nil }

// Recharge resets the stored battery level to a full charge.
func (s *BatterySimulator) Recharge() { s.charge = 1.0 }

// RunTrip simulates flying the given sequence: warehouse → each order's zone
// in turn → warehouse. It returns the final battery level and true, or 0 and
// false as soon as the battery would die, including on the return leg. The
// starting level is a full charge when fromFullCharge is set, otherwise the
// simulator's stored level.
func (s *BatterySimulator) RunTrip(orders []*domain.Order, fromFullCharge bool) (float64, bool) {
	charge := s.charge
	if fromFullCharge {
		charge = 1.0
	}

	payload := 0
	for _, o := range orders {
		payload += o.Weight
	}

	prev := warehouseZone
	for _, o := range orders {
		charge -= s.energy.FractionRequired(float64(payload), s.oracle.Distance(prev, o.Zone))
		if charge < 0 {
			return 0, false
		}
		payload -= o.Weight
		prev = o.Zone
	}

	// Return leg to the warehouse with an empty payload.
	charge -= s.energy.FractionRequired(0, s.oracle.Distance(prev, warehouseZone))
	if charge < 0 {
		return 0, false
	}
	return charge, true
}

// FindBestOrderPosition tries inserting the candidate at every index of the
// committed sequence, simulating the resulting trip from a full charge, and
// returns the index whose simulation ends with the most battery remaining.
// Ties go to the lowest index for determinism. Returns -1 when every
// position depletes.
func (s *BatterySimulator) FindBestOrderPosition(candidate *domain.Order) int {
	bestPos := -1
	bestCharge := -1.0

	trial := make([]*domain.Order, 0, len(s.orders)+1)
	for pos := 0; pos <= len(s.orders); pos++ {
		trial = trial[:0]
		trial = append(trial, s.orders[:pos]...)
		trial = append(trial, candidate)
		trial = append(trial, s.orders[pos:]...)

		remaining, ok := s.RunTrip(trial, true)
		if !ok {
			continue
		}
		if remaining > bestCharge {
			bestCharge = remaining
			bestPos = pos
		}
	}
	return bestPos
}

// Deliver flies the committed sequence on the drone's stored charge. On
// success the remaining level becomes the new stored level and the sequence
// is drained. On depletion the sequence is left intact and
// ErrBatteryDepleted is returned; recovery is the caller's decision.
func (s *BatterySimulator) Deliver() error {
	remaining, ok := s.RunTrip(s.orders, false)
	if !ok {
		return ErrBatteryDepleted
	}
	s.charge = remaining
	s.orders = nil
	return nil
}
