package observability

import (
	"net/http"
	"strconv"
	"time"

	"hotel-booking/internal/domain/checkout"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel"

// Metrics owns a private registry so tests and parallel servers never collide on registration.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	checkouts       *prometheus.CounterVec
	publishes       *prometheus.CounterVec
	cacheEvents     *prometheus.CounterVec
	gatewayRequests *prometheus.CounterVec
	gatewayLatency  *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		checkouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "checkouts_total", Help: "Checkout outcomes by terminal state."},
			[]string{"state"},
		),
		publishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "settlement_events_total", Help: "Settlement event publishes."},
			[]string{"routing_key", "result"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets."},
			[]string{"cache", "event"}, // event: hit|miss|set|error
		),
		gatewayRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "gateway_requests_total", Help: "Outbound payment gateway calls."},
			[]string{"provider", "outcome"},
		),
		gatewayLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "gateway_request_duration_seconds",
				Help:    "Payment gateway call duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}
	m.registry.MustRegister(
		m.httpRequests, m.httpLatency,
		m.checkouts, m.publishes,
		m.cacheEvents,
		m.gatewayRequests, m.gatewayLatency,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) RecordCheckout(state checkout.State) {
	m.checkouts.WithLabelValues(string(state)).Inc()
}

func (m *Metrics) RecordPublish(routingKey string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.publishes.WithLabelValues(routingKey, result).Inc()
}

func (m *Metrics) ObserveCache(cache, event string) {
	m.cacheEvents.WithLabelValues(cache, event).Inc()
}

func (m *Metrics) ObserveGateway(provider, outcome string, dur time.Duration) {
	m.gatewayRequests.WithLabelValues(provider, outcome).Inc()
	m.gatewayLatency.WithLabelValues(provider).Observe(dur.Seconds())
}
