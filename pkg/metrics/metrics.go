// Package metrics holds the Prometheus collectors exported by the service.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups HTTP, database and booking collectors.
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	dbQueryDuration     *prometheus.HistogramVec
	dbQueryErrors       *prometheus.CounterVec
	dbOpenConnections   prometheus.Gauge
	dbInUseConnections  prometheus.Gauge
	dbIdleConnections   prometheus.Gauge
	bookingsCreated     prometheus.Counter
	bookingConflicts    prometheus.Counter
}

// New registers collectors in the default Prometheus registry.
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers collectors in reg.
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database queries that returned an error.",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool.",
			ConstLabels: labels,
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),
		dbIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: labels,
		}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings successfully created.",
			ConstLabels: labels,
		}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking attempts rejected because the slot was taken.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
		m.bookingsCreated,
		m.bookingConflicts,
	)

	return m
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery records one database call.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats publishes connection pool gauges.
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUseConnections.Set(float64(stats.InUse))
	m.dbIdleConnections.Set(float64(stats.Idle))
}

// IncBookingsCreated counts a created booking.
func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

// IncBookingConflicts counts a rejected double booking.
func (m *Metrics) IncBookingConflicts() {
	if m == nil {
		return
	}
	m.bookingConflicts.Inc()
}
