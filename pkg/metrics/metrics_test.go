package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/services", 200, 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/services", 200, 20*time.Millisecond)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
	m.IncBookingsCreated()
	m.IncBookingConflicts()
	m.IncBookingConflicts()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/services", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("query")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingConflicts))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("exec", time.Second, nil)
		m.IncBookingsCreated()
		m.IncBookingConflicts()
	})
}
