// Package main is the entry point for the number theory HTTP server.
//
// The server exposes the number theory engine over REST:
//   - GET /calculations with per-section input ceilings
//   - Service registry endpoints for tool discovery and execution
//   - Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor, see internal/infrastructure/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
