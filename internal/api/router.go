package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"drone-dispatch-service/internal/api/handlers"
	"drone-dispatch-service/internal/platform/events"
	"drone-dispatch-service/internal/platform/metrics"
	"drone-dispatch-service/internal/ports"
	"drone-dispatch-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.OrderRepository, oracle ports.DistanceOracle, energy services.EnergyModel, broker events.Broker) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:   repo,
		Oracle: oracle,
		Energy: energy,
		Broker: broker,
	}
	compareHandler := &handlers.CompareHandler{
		Repo:   repo,
		Oracle: oracle,
		Energy: energy,
	}
	streamHandler := &handlers.StreamHandler{Broker: broker}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/schedule", scheduleHandler.Schedule)
	mux.HandleFunc("/compare", compareHandler.Compare)
	mux.HandleFunc("/deliveries/stream", streamHandler.Stream)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
