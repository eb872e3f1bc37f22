// Package service provides the service registry for provider management.
//
// The registry maintains a catalog of available service providers and handles
// service discovery, tool lookup and tool execution.
//
// Discovery Algorithm:
//   - Keyword matching in ID, name and description
//   - Capability and tool name matching
//   - Category bonus
//   - Score-based ranking, ties broken by service ID
//
// Tool IDs take the form "service.tool"; the prefix selects the provider.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(numbertheory.NewProvider())
//	services := registry.Discover("prime factorization of 360", 5)
//	result, err := registry.Execute(ctx, "ntp.factorize", params, appCtx)
package service
