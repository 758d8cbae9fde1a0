package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"drone-dispatch-service/internal/analysis"
	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/ports"
	"drone-dispatch-service/internal/services"
)

// CompareHandler benchmarks sort-key orderings against the stored backlog.
type CompareHandler struct {
	Repo   ports.OrderRepository
	Oracle ports.DistanceOracle
	Energy services.EnergyModel
}

func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CompareRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	configs, err := parseConfigs(req.Configs)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		log.Printf("compare: list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	analyzer := analysis.NewAnalyzer(h.Oracle, h.Energy)
	results, err := analyzer.RunComparison(orders, configs)
	if err != nil {
		log.Printf("compare: run comparison failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CompareResponse{Results: make([]dto.CompareResult, 0, len(results))}
	for _, m := range results {
		res.Results = append(res.Results, dto.CompareResult{
			Label:             m.Label,
			TotalTrips:        m.TotalTrips,
			TotalDistanceKm:   m.TotalDistanceKm,
			AvgOrdersPerTrip:  m.AvgOrdersPerTrip,
			MinOrdersPerTrip:  m.MinOrdersPerTrip,
			MaxOrdersPerTrip:  m.MaxOrdersPerTrip,
			RuntimeMs:         m.RuntimeMs,
			AvgBatteryUsedPct: m.AvgBatteryUsedPct,
			FragHazViolations: m.FragHazViolations,
			UnscheduledOrders: m.UnscheduledOrders,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// parseConfigs validates request configs, falling back to the default set
// when none are given.
func parseConfigs(in []dto.CompareConfig) ([]analysis.Config, error) {
	if len(in) == 0 {
		return analysis.DefaultConfigs(), nil
	}

	configs := make([]analysis.Config, 0, len(in))
	for i, c := range in {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			return nil, fmt.Errorf("config %d: label is required", i+1)
		}
		if len(c.SortKeys) == 0 {
			return nil, fmt.Errorf("config %q: sort_keys is required", label)
		}
		fields := make([]services.SortField, 0, len(c.SortKeys))
		for _, key := range c.SortKeys {
			field, err := services.ParseSortField(key)
			if err != nil {
				return nil, fmt.Errorf("config %q: %w", label, err)
			}
			fields = append(fields, field)
		}
		configs = append(configs, analysis.Config{Label: label, SortKeys: fields})
	}
	return configs, nil
}
