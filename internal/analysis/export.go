package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV exports comparison results, one row per (dataset, config) pair.
func WriteCSV(w io.Writer, dataset string, results []Metrics) error {
	writer := csv.NewWriter(w)

	header := []string{
		"dataset", "algorithm",
		"total_trips", "total_distance_km",
		"avg_orders_per_trip", "min_orders_per_trip", "max_orders_per_trip",
		"runtime_ms", "avg_battery_used_pct", "frag_haz_violations",
		"unscheduled_orders",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("export analysis: write header: %w", err)
	}

	for _, m := range results {
		row := []string{
			dataset,
			m.Label,
			strconv.Itoa(m.TotalTrips),
			strconv.FormatFloat(m.TotalDistanceKm, 'f', 2, 64),
			strconv.FormatFloat(m.AvgOrdersPerTrip, 'f', 2, 64),
			strconv.Itoa(m.MinOrdersPerTrip),
			strconv.Itoa(m.MaxOrdersPerTrip),
			strconv.FormatFloat(m.RuntimeMs, 'f', 3, 64),
			strconv.FormatFloat(m.AvgBatteryUsedPct, 'f', 2, 64),
			strconv.Itoa(m.FragHazViolations),
			strconv.Itoa(m.UnscheduledOrders),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("export analysis: write row %q: %w", m.Label, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("export analysis: flush: %w", err)
	}
	return nil
}
