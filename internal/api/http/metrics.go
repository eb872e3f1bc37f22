package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/monitoring"
)

// MetricsSummary provides high-level metrics for dashboards
type MetricsSummary struct {
	Timestamp time.Time              `json:"timestamp"`
	Snapshot  monitoring.Snapshot    `json:"snapshot"`
	ErrorRate float64                `json:"error_rate"`
	Registry  map[string]interface{} `json:"registry"`
}

// PrometheusMetrics serves the Prometheus exposition format
func (h *Handlers) PrometheusMetrics() gin.HandlerFunc {
	return gin.WrapH(h.metrics.Handler())
}

// MetricsJSON returns a JSON summary of request and calculation totals
func (h *Handlers) MetricsJSON(c *gin.Context) {
	snap := h.metrics.Snapshot()

	summary := MetricsSummary{
		Timestamp: time.Now(),
		Snapshot:  snap,
		Registry:  h.registry.Stats(),
	}
	if snap.TotalRequests > 0 {
		summary.ErrorRate = float64(snap.TotalErrors) / float64(snap.TotalRequests)
	}
	c.JSON(http.StatusOK, summary)
}
