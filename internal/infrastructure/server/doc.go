// Package server provides HTTP server setup and initialization.
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Create metrics and register the number theory provider
//  4. Setup middleware (recovery, request ID, logging, metrics, CORS, rate limit)
//  5. Mount the API routes
//  6. Serve until Shutdown drains in-flight requests
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	go srv.Run()
//	defer srv.Shutdown(context.Background())
package server
