package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/numbertheory/internal/api/middleware"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/logging"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/numbertheory/internal/service"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

const (
	defaultDiscoverLimit = 5
	maxDiscoverLimit     = 20
	maxIntentLength      = 500
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	started  time.Time
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		started:  time.Now(),
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"service":  "Number Theory Service (Go)",
		"version":  Version,
		"sections": SectionNames(),
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"uptime_seconds":   time.Since(h.started).Seconds(),
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent := strings.TrimSpace(req.Intent)
	if intent == "" || len(intent) > maxIntentLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intent must be between 1 and 500 characters"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}
	limit = min(limit, maxDiscoverLimit)

	c.JSON(http.StatusOK, gin.H{
		"query":    intent,
		"services": h.registry.Discover(intent, limit),
	})
}

// ExecuteService runs a tool. Rejected input is 400, unknown tools are 404
// and internal failures are 500.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.registry.Tool(req.ToolID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + req.ToolID})
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, h.appContext(c))
	if err != nil {
		h.internalError(c, err)
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) appContext(c *gin.Context) *types.Context {
	rid := middleware.GetRequestID(c)
	return &types.Context{RequestID: &rid, Source: "http"}
}

func (h *Handlers) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrServiceNotFound) || errors.Is(err, service.ErrInvalidToolID) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"error":      http.StatusText(status),
		"request_id": middleware.GetRequestID(c),
	})
}
