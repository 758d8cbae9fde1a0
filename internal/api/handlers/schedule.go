package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/platform/events"
	"drone-dispatch-service/internal/platform/metrics"
	"drone-dispatch-service/internal/platform/obs"
	"drone-dispatch-service/internal/ports"
	"drone-dispatch-service/internal/services"
)

// DeliveriesTopic is the broker topic delivery progress events publish to.
const DeliveriesTopic = "deliveries"

// ScheduleHandler orchestrates trip packing and, on request, the delivery
// run itself. It coordinates repository access, the packing policies, and
// event publication; the core services stay unaware of HTTP and brokers.
type ScheduleHandler struct {
	Repo   ports.OrderRepository
	Oracle ports.DistanceOracle
	Energy services.EnergyModel
	Broker events.Broker
}

func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Policy == "" {
		req.Policy = string(services.PolicyZone)
	}
	policy, err := services.ParsePolicy(req.Policy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "policy must be \"zone\" or \"priority\"")
		return
	}

	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		log.Printf("schedule: list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	scheduler := services.NewScheduler(h.Oracle, h.Energy, orders)

	start := time.Now()
	done := obs.Time(r.Context(), "pack trips")
	trips, err := scheduler.PackTrips(policy)
	done(&err)
	if err != nil {
		log.Printf("schedule: pack trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	metrics.PackDuration.WithLabelValues(string(policy)).Observe(time.Since(start).Seconds())
	metrics.TripsPacked.WithLabelValues(string(policy)).Add(float64(len(trips)))

	res := dto.ScheduleResponse{
		Policy:      string(policy),
		Trips:       make([]dto.TripResponse, 0, len(trips)),
		Unscheduled: make([]int, 0),
	}
	scheduledOrders := 0
	for _, trip := range trips {
		report := services.BuildTripReport(h.Oracle, h.Energy, trip)
		ids := make([]int, 0, len(trip.Orders))
		for _, o := range trip.Orders {
			ids = append(ids, o.OrderID)
		}
		scheduledOrders += len(ids)
		res.Trips = append(res.Trips, dto.TripResponse{
			TripID:          report.TripID,
			OrderIDs:        ids,
			OrderCount:      report.OrderCount,
			TotalDistanceKm: report.TotalDistanceKm,
			BatteryUsed:     report.BatteryUsed,
		})
	}
	for _, o := range scheduler.Unscheduled() {
		res.Unscheduled = append(res.Unscheduled, o.OrderID)
	}
	metrics.OrdersScheduled.WithLabelValues(string(policy)).Add(float64(scheduledOrders))

	if req.Deliver {
		deliverDone := obs.Time(r.Context(), "deliver trips")
		results, err := scheduler.DeliverAll()
		deliverDone(&err)
		res.Deliveries = h.publishDeliveries(results)
		if err != nil && !errors.Is(err, services.ErrBatteryDepleted) {
			log.Printf("schedule: deliver trips failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// publishDeliveries converts delivery results to DTOs and emits one broker
// event per trip, plus a failure event when the run aborted.
func (h *ScheduleHandler) publishDeliveries(results []services.DeliveryResult) []dto.DeliveryResponse {
	out := make([]dto.DeliveryResponse, 0, len(results))
	for _, dr := range results {
		out = append(out, dto.DeliveryResponse{
			TripID:          dr.Trip.TripID,
			RemainingCharge: dr.RemainingCharge,
			Failed:          dr.Failed,
		})

		eventType := "trip.completed"
		if dr.Failed {
			eventType = "trip.failed"
			metrics.DeliveryFailures.Inc()
		}
		if h.Broker != nil {
			h.Broker.Publish(DeliveriesTopic, events.Event{
				Type: eventType,
				Data: map[string]any{
					"trip_id":          dr.Trip.TripID,
					"order_count":      len(dr.Trip.Orders),
					"remaining_charge": dr.RemainingCharge,
				},
			})
		}
	}
	return out
}
