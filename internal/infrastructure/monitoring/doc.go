/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the number
theory server, tracking HTTP requests, calculations and uptime.

# Features

- HTTP request metrics (latency, throughput, response size)
- Calculation metrics by operation and outcome
- Uptime gauge evaluated at scrape time
- Go runtime and process collectors
- JSON snapshot for the stats endpoint

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time calculations
	timer := monitoring.NewTimer(metrics, "ntp.factorize")
	// ... perform operation ...
	timer.Stop(monitoring.StatusSuccess)

# Metrics Endpoint

Each collector owns a registry; expose it with:

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
