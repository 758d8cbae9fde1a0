package domain

import "testing"

func TestBacklogRemoveEnforcesOwnership(t *testing.T) {
	a := &Order{OrderID: 1, Timestamp: 0, Zone: 1, Weight: 100}
	b := &Order{OrderID: 2, Timestamp: 1, Zone: 2, Weight: 200}
	c := &Order{OrderID: 3, Timestamp: 2, Zone: 1, Weight: 300}

	backlog := NewBacklog([]*Order{a, b, c})

	if err := backlog.Remove([]*Order{b}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backlog.Len() != 2 {
		t.Fatalf("len = %d, want 2", backlog.Len())
	}

	// Removing the same order twice must fail: it is owned by a trip now.
	if err := backlog.Remove([]*Order{b}); err == nil {
		t.Fatal("expected error removing order twice, got nil")
	}

	backlog.Add(b)
	if backlog.Len() != 3 {
		t.Fatalf("len after re-add = %d, want 3", backlog.Len())
	}
}

func TestBacklogOldestBreaksTiesByOrderID(t *testing.T) {
	a := &Order{OrderID: 7, Timestamp: 5}
	b := &Order{OrderID: 3, Timestamp: 5}
	c := &Order{OrderID: 9, Timestamp: 6}

	backlog := NewBacklog([]*Order{a, b, c})

	oldest := backlog.Oldest()
	if oldest == nil || oldest.OrderID != 3 {
		t.Fatalf("oldest = %+v, want order 3", oldest)
	}
}

func TestBacklogSortByTimestamp(t *testing.T) {
	orders := []*Order{
		{OrderID: 1, Timestamp: 9},
		{OrderID: 2, Timestamp: 1},
		{OrderID: 3, Timestamp: 4},
	}

	backlog := NewBacklog(orders)
	backlog.SortByTimestamp()

	got := backlog.Pending()
	want := []int{2, 3, 1}
	for i, id := range want {
		if got[i].OrderID != id {
			t.Fatalf("position %d = order %d, want %d", i, got[i].OrderID, id)
		}
	}
}

func TestOrderPriorityScore(t *testing.T) {
	cases := []struct {
		name       string
		perishable bool
		subscriber bool
		want       int
	}{
		{"perishable subscriber", true, true, 0},
		{"perishable only", true, false, 1},
		{"subscriber only", false, true, 2},
		{"neither", false, false, 3},
	}

	for _, tc := range cases {
		o := &Order{Perishable: tc.perishable, Subscriber: tc.subscriber}
		if got := o.PriorityScore(); got != tc.want {
			t.Errorf("%s: score = %d, want %d", tc.name, got, tc.want)
		}
	}
}
