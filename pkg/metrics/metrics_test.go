package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := NewWithRegisterer("rental", prometheus.NewRegistry())

	m.ObserveHTTP("POST", "/api/v1/bookings", 201, 15*time.Millisecond)
	m.ObserveHTTP("POST", "/api/v1/bookings", 201, 5*time.Millisecond)
	m.ObserveHTTP("POST", "/api/v1/bookings", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "400")))
}

func TestMetrics_SetPoolStats(t *testing.T) {
	m := NewWithRegisterer("rental", prometheus.NewRegistry())

	m.SetPoolStats(sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4, WaitCount: 2})

	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBOpenConnections))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBInUseConnections))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBIdleConnections))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBWaitCount))
}
