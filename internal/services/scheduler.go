package services

import (
	"container/heap"
	"fmt"
	"log"

	"github.com/google/uuid"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
)

// Policy selects which trip builder drives trip packing.
type Policy string

const (
	PolicyZone     Policy = "zone"
	PolicyPriority Policy = "priority"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyZone, PolicyPriority:
		return Policy(s), nil
	}
	return "", fmt.Errorf("parse policy: unknown policy %q", s)
}

// Scheduler drives a trip builder to exhaustion over the order backlog,
// producing a sequence of trips, and later drains those trips through the
// delivery drone.
//
// Scheduling degrades, never throws: when no trip can be formed the loop
// halts and the remaining orders stay in the backlog, queryable via
// Unscheduled. Only in-flight battery depletion during real delivery is a
// hard failure.
type Scheduler struct {
	oracle  ports.DistanceOracle
	energy  EnergyModel
	backlog *domain.Backlog
	trips   []*domain.Trip
	drone   *BatterySimulator
}

func NewScheduler(oracle ports.DistanceOracle, energy EnergyModel, orders []*domain.Order) *Scheduler {
	return &Scheduler{
		oracle:  oracle,
		energy:  energy,
		backlog: domain.NewBacklog(orders),
		drone:   NewBatterySimulator(oracle, energy),
	}
}

func (s *Scheduler) Trips() []*domain.Trip { return s.trips }

// Unscheduled returns the orders no packing pass could place.
func (s *Scheduler) Unscheduled() []*domain.Order { return s.backlog.Pending() }

// PackTrips partitions the backlog into trips using the given policy. Each
// iteration strictly shrinks the backlog, so packing terminates in at most
// one iteration per order.
func (s *Scheduler) PackTrips(policy Policy) ([]*domain.Trip, error) {
	switch policy {
	case PolicyZone:
		return s.packByZone()
	case PolicyPriority:
		return s.packByPriority()
	default:
		return nil, fmt.Errorf("pack trips: unknown policy %q", policy)
	}
}

// packByZone repeatedly serves the zone of the oldest pending order.
func (s *Scheduler) packByZone() ([]*domain.Trip, error) {
	builder := NewZoneTripBuilder(s.oracle, s.energy)

	for s.backlog.Len() > 0 {
		s.backlog.SortByTimestamp()
		zone := s.backlog.Oldest().Zone

		trip := builder.BuildTrip(s.backlog, zone)
		if trip.Empty() {
			log.Printf("pack trips: policy=zone zone=%d dead end, unscheduled=%d", zone, s.backlog.Len())
			break
		}

		if err := s.backlog.Remove(trip.Orders); err != nil {
			return nil, fmt.Errorf("pack trips: %w", err)
		}
		s.trips = append(s.trips, trip)
	}
	return s.trips, nil
}

// packByPriority drains a priority queue of the whole backlog into the
// optimal builder, one trip per pass, requeueing whatever a pass could not
// place. A pass that places nothing is a dead end: packing stops rather than
// retrying with relaxed constraints, and the frontier stays unscheduled.
func (s *Scheduler) packByPriority() ([]*domain.Trip, error) {
	builder := NewPriorityTripBuilder(s.oracle, s.energy)

	queue := orderQueue(s.backlog.Pending())
	heap.Init(&queue)

	for queue.Len() > 0 {
		frontier := make([]*domain.Order, 0, queue.Len())
		for queue.Len() > 0 {
			frontier = append(frontier, heap.Pop(&queue).(*domain.Order))
		}

		trip := builder.BuildMostOptimalTrip(frontier)
		if trip.Empty() {
			log.Printf("pack trips: policy=priority dead end, unscheduled=%d", len(frontier))
			break
		}

		if err := s.backlog.Remove(trip.Orders); err != nil {
			return nil, fmt.Errorf("pack trips: %w", err)
		}
		s.trips = append(s.trips, trip)

		placed := make(map[*domain.Order]bool, len(trip.Orders))
		for _, o := range trip.Orders {
			placed[o] = true
		}
		for _, o := range frontier {
			if !placed[o] {
				heap.Push(&queue, o)
			}
		}
	}
	return s.trips, nil
}

// PackBySortKeys is the comparison-harness packing pass: pending orders are
// ranked by the composite key and each pass inserts whatever fits, most
// significant key first. The fragile/hazardous exclusion locks as soon as an
// accepted order carries either flag.
func (s *Scheduler) PackBySortKeys(fields []SortField) ([]*domain.Trip, error) {
	sim := NewBatterySimulator(s.oracle, s.energy)
	defer sim.Clear()

	for s.backlog.Len() > 0 {
		pending := s.backlog.Pending()
		SortOrders(pending, fields)

		sim.Clear()
		var excludeFragile, excludeHazardous bool
		accepted := 0
		for _, o := range pending {
			if (excludeHazardous && o.Hazardous) || (excludeFragile && o.Fragile) {
				continue
			}
			pos := sim.FindBestOrderPosition(o)
			if pos < 0 {
				continue
			}
			sim.AddOrder(o, pos)
			excludeHazardous = excludeHazardous || o.Fragile
			excludeFragile = excludeFragile || o.Hazardous
			accepted++
		}

		if accepted == 0 {
			log.Printf("pack trips: policy=sort-keys dead end, unscheduled=%d", s.backlog.Len())
			break
		}

		trip := &domain.Trip{TripID: uuid.NewString(), Orders: sim.Orders()}
		if err := s.backlog.Remove(trip.Orders); err != nil {
			return nil, fmt.Errorf("pack trips: %w", err)
		}
		s.trips = append(s.trips, trip)
	}
	return s.trips, nil
}

// Priority queue over pending orders. The order id is the final tiebreak, so
// the ordering is total even when every other field ties.
type orderQueue []*domain.Order

func (q orderQueue) Len() int { return len(q) }

func (q orderQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if pa, pb := a.PriorityScore(), b.PriorityScore(); pa != pb {
		return pa < pb
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	if a.Zone != b.Zone {
		return a.Zone < b.Zone
	}
	return a.OrderID < b.OrderID
}

func (q orderQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *orderQueue) Push(x any) { *q = append(*q, x.(*domain.Order)) }

func (q *orderQueue) Pop() any {
	old := *q
	n := len(old)
	o := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return o
}
