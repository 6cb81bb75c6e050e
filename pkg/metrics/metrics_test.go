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
	m := NewWithRegistry(prometheus.NewRegistry(), "venue-booking")

	m.ObserveHTTPRequest("GET", "/api/v1/facilities", 200, 15*time.Millisecond)
	m.RecordCheckout("turf", "created")
	m.RecordCheckout("turf", "created")
	m.RecordDiscountValidation("rejected")
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))
	m.SetDBConnections(5, 2, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("venue-booking", "GET", "/api/v1/facilities", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CheckoutsTotal.WithLabelValues("venue-booking", "turf", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DiscountValidationsTotal.WithLabelValues("venue-booking", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("venue-booking", "select")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBConnections.WithLabelValues("venue-booking", "in_use")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.RecordCheckout("pool", "failed")
		m.RecordEventPublished("booking.confirmed", "ok")
	})
}
