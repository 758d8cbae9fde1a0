package services

import (
	"fmt"

	"drone-dispatch-service/internal/domain"
)

// DeliveryResult records the outcome of draining one trip.
type DeliveryResult struct {
	Trip            *domain.Trip
	RemainingCharge float64
	Failed          bool
}

// DeliverAll drains the packed trips through the delivery drone, strictly in
// packing order: trip k+1 is never attempted until trip k has fully
// delivered. The drone flies each trip on its stored charge and is recharged
// only after a successful one. Depletion mid-flight is fatal — draining
// aborts immediately and every later trip is left undelivered; whether to
// recharge and resume is the caller's policy decision.
func (s *Scheduler) DeliverAll() ([]DeliveryResult, error) {
	results := make([]DeliveryResult, 0, len(s.trips))

	for i, trip := range s.trips {
		for _, o := range trip.Orders {
			s.drone.AddOrder(o, s.drone.Len())
		}

		if err := s.drone.Deliver(); err != nil {
			results = append(results, DeliveryResult{Trip: trip, Failed: true})
			return results, fmt.Errorf("deliver trips: trip %d of %d: %w", i+1, len(s.trips), err)
		}

		results = append(results, DeliveryResult{Trip: trip, RemainingCharge: s.drone.Charge()})
		s.drone.Recharge()
	}
	return results, nil
}
