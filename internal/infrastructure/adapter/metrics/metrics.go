// Package metrics provides Prometheus instrumentation for the payment API.
//
// Wire it up once when building the router:
//
//	router.Use(middleware.Metrics(m))
//	router.GET("/metrics", gin.WrapH(m.Handler()))
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "payment_api"

// Metrics holds the collectors of one registry
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	RequestInFlight prometheus.Gauge
	Payments        *prometheus.CounterVec
	PoolConnections *prometheus.GaugeVec
	PoolWaitCount   prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		Payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payments",
				Name:      "processed_total",
				Help:      "Payment attempts by method and outcome.",
			},
			[]string{"method", "outcome"}, // outcome: "created" | "declined" | "rejected"
		),
		PoolConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "pool_connections",
				Help:      "Database pool connections by state.",
			},
			[]string{"state"}, // "open" | "in_use" | "idle"
		),
		PoolWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_wait_count",
			Help:      "Total number of connections waited for.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.Payments,
		m.PoolConnections,
		m.PoolWaitCount,
	)

	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the scrape endpoint for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObservePayment records the outcome of a payment attempt
func (m *Metrics) ObservePayment(method, outcome string) {
	m.Payments.WithLabelValues(method, outcome).Inc()
}

// ObservePool publishes connection pool statistics
func (m *Metrics) ObservePool(stats sql.DBStats) {
	m.PoolConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.PoolConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.PoolConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.PoolWaitCount.Set(float64(stats.WaitCount))
}
