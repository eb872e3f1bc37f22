// Package types provides shared data structures for the number theory backend.
//
// Core Types:
//   - Service: Provider definition with its tools
//   - Tool, Parameter: Callable operation and its arguments
//   - Context: Per-call metadata (request ID, source)
//   - Result: Standard tool result envelope
//
// Request Types:
//   - ExecuteRequest: Tool execution through the registry
//   - DiscoverRequest: Intent-based service discovery
//
// Example Usage:
//
//	result, err := registry.Execute(ctx, "ntp.factorize", map[string]interface{}{"n": 360}, nil)
//	if err == nil && result.Success {
//	    fmt.Println(result.Data["factorization"])
//	}
package types
