package domain

// Represents a single delivery request submitted to the dispatch system.
// An Order is immutable after creation: it is owned by the Backlog until a
// trip builder claims it, and by exactly one Trip afterwards.
type Order struct {
	OrderID    int
	Timestamp  int64
	Zone       int // destination zone id; zone 0 is the warehouse
	Weight     int // grams
	CustomerID int
	Subscriber bool
	Fragile    bool
	Hazardous  bool
	Perishable bool
}

// PriorityScore ranks scheduling urgency. Perishable orders outrank
// subscriber orders, which outrank everything else. Lower is more urgent.
func (o *Order) PriorityScore() int {
	score := 0
	if !o.Perishable {
		score += 2
	}
	if !o.Subscriber {
		score++
	}
	return score
}
