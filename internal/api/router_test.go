package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drone-dispatch-service/internal/adapters/distance"
	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/platform/events"
	"drone-dispatch-service/internal/services"
)

type stubOrderRepo struct {
	orders []*domain.Order
	err    error
}

func (s *stubOrderRepo) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders, s.err
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	matrix, err := distance.NewMatrix([][]float64{
		{0, 10, 15},
		{10, 0, 8},
		{15, 8, 0},
	})
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}

	repo := &stubOrderRepo{orders: []*domain.Order{
		{OrderID: 1, Timestamp: 10, Zone: 1, Weight: 600, CustomerID: 1},
		{OrderID: 2, Timestamp: 20, Zone: 1, Weight: 900, CustomerID: 2, Subscriber: true},
		{OrderID: 3, Timestamp: 30, Zone: 2, Weight: 400, CustomerID: 3, Perishable: true},
	}}
	return NewRouter(repo, matrix, services.DefaultEnergyModel(), events.NewMemoryBroker())
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health: got %d", rr.Code)
	}
}

func TestRouterListOrders(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("orders: got %d", rr.Code)
	}

	var res dto.ListOrdersResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode orders response: %v", err)
	}
	if len(res.Orders) != 3 {
		t.Fatalf("listed %d orders, want 3", len(res.Orders))
	}
}

func TestRouterSchedule(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"policy":"zone","deliver":true}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/schedule", body))
	if rr.Code != http.StatusOK {
		t.Fatalf("schedule: got %d body=%s", rr.Code, rr.Body.String())
	}

	var res dto.ScheduleResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode schedule response: %v", err)
	}
	if res.Policy != "zone" {
		t.Fatalf("policy = %q, want zone", res.Policy)
	}
	if len(res.Trips) == 0 {
		t.Fatal("no trips in schedule response")
	}
	if len(res.Deliveries) != len(res.Trips) {
		t.Fatalf("got %d deliveries for %d trips", len(res.Deliveries), len(res.Trips))
	}
	for _, d := range res.Deliveries {
		if d.Failed {
			t.Fatalf("delivery of trip %s failed", d.TripID)
		}
	}

	scheduled := 0
	for _, trip := range res.Trips {
		scheduled += len(trip.OrderIDs)
	}
	if scheduled+len(res.Unscheduled) != 3 {
		t.Fatalf("scheduled %d + unscheduled %d, want 3 total", scheduled, len(res.Unscheduled))
	}
}

func TestRouterScheduleRejectsUnknownPolicy(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"policy":"round-robin"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/schedule", body))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("schedule: got %d, want 400", rr.Code)
	}
}

func TestRouterScheduleRejectsGet(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/schedule", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("schedule: got %d, want 405", rr.Code)
	}
}

func TestRouterCompareDefaults(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(`{}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("compare: got %d body=%s", rr.Code, rr.Body.String())
	}

	var res dto.CompareResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode compare response: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("got %d results, want 3 default configs", len(res.Results))
	}
}

func TestRouterCompareRejectsBadSortKey(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"configs":[{"label":"broken","sort_keys":["urgency"]}]}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/compare", body))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("compare: got %d, want 400", rr.Code)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics: got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Fatal("metrics output missing runtime collectors")
	}
}
