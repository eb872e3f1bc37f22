package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIndependentRegistries(t *testing.T) {
	// Two collectors must not collide on registration
	a := NewMetrics()
	b := NewMetrics()

	a.RecordCalculation("ntp.isPrime", StatusSuccess, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CalculationsTotal.WithLabelValues("ntp.isPrime", StatusSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CalculationsTotal.WithLabelValues("ntp.isPrime", StatusSuccess)))
}

func TestTimer(t *testing.T) {
	m := NewMetrics()

	NewTimer(m, "ntp.factorize").Stop(StatusSuccess)
	NewTimer(m, "ntp.factorize").Stop(StatusInvalid)
	NewTimer(nil, "ntp.factorize").Stop(StatusSuccess)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.TotalCalculations)
	assert.Equal(t, int64(1), snap.FailedCalculation)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, path := range []string{"/ok", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordCalculation("ntp.goldbach", StatusSuccess, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `ntp_calculations_total{operation="ntp.goldbach",status="success"} 1`))
	assert.Contains(t, body, "ntp_uptime_seconds")
}
