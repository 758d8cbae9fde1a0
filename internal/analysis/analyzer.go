package analysis

import (
	"fmt"
	"time"

	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/ports"
	"drone-dispatch-service/internal/services"
)

// Config names one sort-key ordering to benchmark.
type Config struct {
	Label    string
	SortKeys []services.SortField
}

// DefaultConfigs are the orderings compared in reporting: packing by zone
// alone, by priority alone, and the production composite key.
func DefaultConfigs() []Config {
	return []Config{
		{Label: "Zone-Only", SortKeys: []services.SortField{services.SortByDeliveryZone}},
		{Label: "Priority-First", SortKeys: []services.SortField{services.SortByPriorityScore}},
		{Label: "Real-world", SortKeys: []services.SortField{
			services.SortByPriorityScore, services.SortByDeliveryZone, services.SortByTimestamp,
		}},
	}
}

// Metrics summarizes one packing run over one order set.
type Metrics struct {
	Label             string
	TotalTrips        int
	TotalDistanceKm   float64
	AvgOrdersPerTrip  float64
	MinOrdersPerTrip  int
	MaxOrdersPerTrip  int
	RuntimeMs         float64
	AvgBatteryUsedPct float64
	FragHazViolations int
	UnscheduledOrders int
}

// Analyzer runs sort-key comparisons against a fixed distance oracle.
type Analyzer struct {
	oracle ports.DistanceOracle
	energy services.EnergyModel
}

func NewAnalyzer(oracle ports.DistanceOracle, energy services.EnergyModel) *Analyzer {
	return &Analyzer{oracle: oracle, energy: energy}
}

// RunComparison packs a fresh copy of the orders with each config and
// collects per-config metrics. The input slice is never mutated.
func (a *Analyzer) RunComparison(orders []*domain.Order, configs []Config) ([]Metrics, error) {
	results := make([]Metrics, 0, len(configs))
	for _, cfg := range configs {
		scheduler := services.NewScheduler(a.oracle, a.energy, orders)

		start := time.Now()
		trips, err := scheduler.PackBySortKeys(cfg.SortKeys)
		if err != nil {
			return nil, fmt.Errorf("run comparison: config %q: %w", cfg.Label, err)
		}
		elapsed := time.Since(start)

		m := Metrics{
			Label:             cfg.Label,
			TotalTrips:        len(trips),
			RuntimeMs:         float64(elapsed.Microseconds()) / 1000,
			UnscheduledOrders: len(scheduler.Unscheduled()),
		}

		totalOrders := 0
		batteryUsed := 0.0
		for i, trip := range trips {
			report := services.BuildTripReport(a.oracle, a.energy, trip)
			m.TotalDistanceKm += report.TotalDistanceKm
			batteryUsed += report.BatteryUsed
			totalOrders += report.OrderCount
			if i == 0 || report.OrderCount < m.MinOrdersPerTrip {
				m.MinOrdersPerTrip = report.OrderCount
			}
			if report.OrderCount > m.MaxOrdersPerTrip {
				m.MaxOrdersPerTrip = report.OrderCount
			}
			if trip.HasFragile() && trip.HasHazardous() {
				m.FragHazViolations++
			}
		}
		if len(trips) > 0 {
			m.AvgOrdersPerTrip = float64(totalOrders) / float64(len(trips))
			m.AvgBatteryUsedPct = batteryUsed / float64(len(trips)) * 100
		}
		results = append(results, m)
	}
	return results, nil
}
