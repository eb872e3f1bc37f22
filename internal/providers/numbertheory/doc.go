// Package numbertheory exposes the number theory engine as a service provider.
//
// The provider is organized into operation groups:
//   - primes: primality, primes after n, twin primes, Goldbach pairs, two squares
//   - divisibility: factorization, divisibility rules, GCD/LCM, Euclidean trace
//   - sequences: Pythagorean triples, Fibonacci-like sequences, doubling
//
// Every tool takes integer arguments bounded by common.Limits and an optional
// "explain" flag that adds narrative text to the result. Invalid input yields
// a failed Result; internal engine errors are returned as Go errors, logged
// and counted.
//
// Example Usage:
//
//	p := numbertheory.NewProvider(numbertheory.WithLogger(logger), numbertheory.WithMetrics(metrics))
//	result, err := p.Execute(ctx, "ntp.gcdLcm", map[string]interface{}{"a": 12, "b": 18}, nil)
package numbertheory
