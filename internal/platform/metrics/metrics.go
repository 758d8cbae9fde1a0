package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry is the dedicated Prometheus registry for the service. Handlers and
// the scheduler record into these collectors; the /metrics endpoint exposes
// this registry only, never the global default.
var (
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	TripsPacked = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_trips_packed_total", Help: "Trips produced by packing runs."},
		[]string{"policy"},
	)
	OrdersScheduled = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_orders_scheduled_total", Help: "Orders placed onto trips."},
		[]string{"policy"},
	)
	DeliveryFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "dispatch_delivery_failures_total", Help: "Delivery runs aborted by battery depletion."},
	)
	PackDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dispatch_pack_duration_seconds",
			Help:    "Trip packing duration in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"policy"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors onto Registry exactly once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(TripsPacked)
		Registry.MustRegister(OrdersScheduled)
		Registry.MustRegister(DeliveryFailures)
		Registry.MustRegister(PackDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
