package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every endpoint on router
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	router.GET("/calculations", h.Calculations)
	router.GET("/randomNumber/section/:section", h.RandomNumber)

	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	router.GET("/metrics", h.PrometheusMetrics())
	router.GET("/metrics/json", h.MetricsJSON)
}
