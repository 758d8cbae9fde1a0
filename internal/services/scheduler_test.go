package services

import (
	"testing"

	"drone-dispatch-service/internal/domain"
)

func TestSchedulerZonePolicyServesOldestZoneFirst(t *testing.T) {
	orders := []*domain.Order{
		{OrderID: 1, Timestamp: 0, Zone: 1, Weight: 100},
		{OrderID: 2, Timestamp: 1, Zone: 2, Weight: 100},
	}

	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)
	trips, err := sched.PackTrips(PolicyZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trips) != 2 {
		t.Fatalf("trips = %d, want 2", len(trips))
	}
	if got := tripIDs(trips[0]); len(got) != 1 || got[0] != 1 {
		t.Fatalf("first trip = %v, want [1]", got)
	}
	if got := tripIDs(trips[1]); len(got) != 1 || got[0] != 2 {
		t.Fatalf("second trip = %v, want [2]", got)
	}
	if n := len(sched.Unscheduled()); n != 0 {
		t.Fatalf("unscheduled = %d, want 0", n)
	}
}

func TestSchedulerZonePolicyHaltsOnDeadEnd(t *testing.T) {
	// The oldest order fits nowhere, so the pass is a dead end: nothing is
	// dropped, everything stays queryable as unscheduled.
	orders := []*domain.Order{
		{OrderID: 1, Timestamp: 0, Zone: 1, Weight: 5000},
		{OrderID: 2, Timestamp: 1, Zone: 2, Weight: 100},
	}

	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)
	trips, err := sched.PackTrips(PolicyZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trips) != 0 {
		t.Fatalf("trips = %d, want 0", len(trips))
	}
	if n := len(sched.Unscheduled()); n != 2 {
		t.Fatalf("unscheduled = %d, want 2", n)
	}
}

func TestSchedulerPriorityPolicySeparatesFragileAndHazardous(t *testing.T) {
	orders := []*domain.Order{
		{OrderID: 1, Timestamp: 0, Zone: 1, Weight: 100, CustomerID: 1, Fragile: true},
		{OrderID: 2, Timestamp: 1, Zone: 1, Weight: 100, CustomerID: 2, Hazardous: true},
	}

	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)
	trips, err := sched.PackTrips(PolicyPriority)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trips) != 2 {
		t.Fatalf("trips = %d, want 2", len(trips))
	}
	for _, trip := range trips {
		if trip.HasFragile() && trip.HasHazardous() {
			t.Fatalf("trip %v mixes fragile and hazardous cargo", tripIDs(trip))
		}
	}
	if n := len(sched.Unscheduled()); n != 0 {
		t.Fatalf("unscheduled = %d, want 0", n)
	}
}

func schedulerFixtureOrders() []*domain.Order {
	return []*domain.Order{
		{OrderID: 1, Timestamp: 3, Zone: 1, Weight: 900, CustomerID: 1, Subscriber: true},
		{OrderID: 2, Timestamp: 0, Zone: 2, Weight: 700, CustomerID: 2, Perishable: true},
		{OrderID: 3, Timestamp: 5, Zone: 1, Weight: 1200, CustomerID: 1},
		{OrderID: 4, Timestamp: 1, Zone: 2, Weight: 400, CustomerID: 3, Fragile: true},
		{OrderID: 5, Timestamp: 2, Zone: 1, Weight: 600, CustomerID: 4, Hazardous: true},
		{OrderID: 6, Timestamp: 4, Zone: 2, Weight: 1000, CustomerID: 2},
	}
}

func TestSchedulerPartitionInvariant(t *testing.T) {
	for _, policy := range []Policy{PolicyZone, PolicyPriority} {
		orders := schedulerFixtureOrders()
		sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)
		trips, err := sched.PackTrips(policy)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", policy, err)
		}

		seen := map[int]int{}
		for _, trip := range trips {
			for _, o := range trip.Orders {
				seen[o.OrderID]++
			}
		}
		for _, o := range sched.Unscheduled() {
			seen[o.OrderID]++
		}

		for _, o := range orders {
			if seen[o.OrderID] != 1 {
				t.Fatalf("%s: order %d appears %d times, want exactly once", policy, o.OrderID, seen[o.OrderID])
			}
		}
		if len(seen) != len(orders) {
			t.Fatalf("%s: %d distinct orders accounted for, want %d", policy, len(seen), len(orders))
		}
	}
}

func TestSchedulerDeterminism(t *testing.T) {
	for _, policy := range []Policy{PolicyZone, PolicyPriority} {
		run := func() [][]int {
			sched := NewScheduler(testOracle(t), DefaultEnergyModel(), schedulerFixtureOrders())
			trips, err := sched.PackTrips(policy)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", policy, err)
			}
			partition := make([][]int, 0, len(trips))
			for _, trip := range trips {
				partition = append(partition, tripIDs(trip))
			}
			return partition
		}

		first, second := run(), run()
		if len(first) != len(second) {
			t.Fatalf("%s: trip counts differ: %d vs %d", policy, len(first), len(second))
		}
		for i := range first {
			if len(first[i]) != len(second[i]) {
				t.Fatalf("%s: trip %d lengths differ: %v vs %v", policy, i, first[i], second[i])
			}
			for j := range first[i] {
				if first[i][j] != second[i][j] {
					t.Fatalf("%s: trip %d differs: %v vs %v", policy, i, first[i], second[i])
				}
			}
		}
	}
}

func TestSchedulerTermination(t *testing.T) {
	orders := schedulerFixtureOrders()
	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)
	trips, err := sched.PackTrips(PolicyPriority)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) > len(orders) {
		t.Fatalf("%d trips from %d orders", len(trips), len(orders))
	}
}

func TestSchedulerPackBySortKeys(t *testing.T) {
	orders := schedulerFixtureOrders()
	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)

	trips, err := sched.PackBySortKeys([]SortField{SortByPriorityScore, SortByDeliveryZone, SortByTimestamp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) == 0 {
		t.Fatal("expected at least one trip")
	}

	sim := NewBatterySimulator(testOracle(t), DefaultEnergyModel())
	for _, trip := range trips {
		if trip.HasFragile() && trip.HasHazardous() {
			t.Fatalf("trip %v mixes fragile and hazardous cargo", tripIDs(trip))
		}
		if _, ok := sim.RunTrip(trip.Orders, true); !ok {
			t.Fatalf("trip %v depletes from a full charge", tripIDs(trip))
		}
	}

	total := 0
	for _, trip := range trips {
		total += len(trip.Orders)
	}
	if total+len(sched.Unscheduled()) != len(orders) {
		t.Fatalf("orders accounted for = %d, want %d", total+len(sched.Unscheduled()), len(orders))
	}
}

func TestSchedulerDeliverAll(t *testing.T) {
	orders := []*domain.Order{
		{OrderID: 1, Timestamp: 0, Zone: 1, Weight: 100},
		{OrderID: 2, Timestamp: 1, Zone: 2, Weight: 100},
	}

	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), orders)
	if _, err := sched.PackTrips(PolicyZone); err != nil {
		t.Fatalf("packing failed: %v", err)
	}

	results, err := sched.DeliverAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for i, res := range results {
		if res.Failed {
			t.Fatalf("trip %d failed", i+1)
		}
		if res.RemainingCharge <= 0 || res.RemainingCharge >= 1 {
			t.Fatalf("trip %d remaining charge = %v, want in (0,1)", i+1, res.RemainingCharge)
		}
	}
}

func TestSchedulerUnknownPolicy(t *testing.T) {
	sched := NewScheduler(testOracle(t), DefaultEnergyModel(), nil)
	if _, err := sched.PackTrips(Policy("nearest")); err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if _, err := ParsePolicy("nearest"); err == nil {
		t.Fatal("expected parse error for unknown policy")
	}
}
