package services

import (
	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// TripReport carries the per-trip values needed for reporting: order count,
// total flight distance, and the battery fraction a full-charge flight
// consumes. They are derived by replaying the oracle and energy model over
// the trip's sequence, not stored redundantly by the core.
type TripReport struct {
	TripID          string
	OrderCount      int
	TotalDistanceKm float64
	BatteryUsed     float64
}

// BuildTripReport replays one trip from a full charge at the warehouse,
// including the return leg.
func BuildTripReport(oracle ports.DistanceOracle, energy EnergyModel, trip *domain.Trip) TripReport {
	payload := trip.TotalWeight()
	prev := warehouseZone
	distance := 0.0
	used := 0.0

	for _, o := range trip.Orders {
		leg := oracle.Distance(prev, o.Zone)
		distance += leg
		used += energy.FractionRequired(float64(payload), leg)
		payload -= o.Weight
		prev = o.Zone
	}

	leg := oracle.Distance(prev, warehouseZone)
	distance += leg
	used += energy.FractionRequired(0, leg)

	return TripReport{
		TripID:          trip.TripID,
		OrderCount:      len(trip.Orders),
		TotalDistanceKm: distance,
		BatteryUsed:     used,
	}
}
