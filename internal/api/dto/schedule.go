package dto

type ScheduleRequest struct {
	Policy  string `json:"policy"`
	Deliver bool   `json:"deliver"`
}

type TripResponse struct {
	TripID          string  `json:"trip_id"`
	OrderIDs        []int   `json:"order_ids"`
	OrderCount      int     `json:"order_count"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	BatteryUsed     float64 `json:"battery_used"`
}

type DeliveryResponse struct {
	TripID          string  `json:"trip_id"`
	RemainingCharge float64 `json:"remaining_charge"`
	Failed          bool    `json:"failed"`
}

type ScheduleResponse struct {
	Policy      string             `json:"policy"`
	Trips       []TripResponse     `json:"trips"`
	Unscheduled []int              `json:"unscheduled"`
	Deliveries  []DeliveryResponse `json:"deliveries,omitempty"`
}

type CompareConfig struct {
	Label    string   `json:"label"`
	SortKeys []string `json:"sort_keys"`
}

type CompareRequest struct {
	Configs []CompareConfig `json:"configs"`
}

type CompareResult struct {
	Label             string  `json:"label"`
	TotalTrips        int     `json:"total_trips"`
	TotalDistanceKm   float64 `json:"total_distance_km"`
	AvgOrdersPerTrip  float64 `json:"avg_orders_per_trip"`
	MinOrdersPerTrip  int     `json:"min_orders_per_trip"`
	MaxOrdersPerTrip  int     `json:"max_orders_per_trip"`
	RuntimeMs         float64 `json:"runtime_ms"`
	AvgBatteryUsedPct float64 `json:"avg_battery_used_pct"`
	FragHazViolations int     `json:"frag_haz_violations"`
	UnscheduledOrders int     `json:"unscheduled_orders"`
}

type CompareResponse struct {
	Results []CompareResult `json:"results"`
}
