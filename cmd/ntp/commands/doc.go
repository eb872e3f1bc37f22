// Package commands defines the ntp CLI.
//
// Commands
//
//   - prime          Test a number for primality
//   - primes         List primes from a starting number
//   - twin-primes    List twin prime pairs from a starting number
//   - factor         Prime factorization and divisor count
//   - divisibility   Digit-rule divisibility tests and proper divisors
//   - gcd-lcm        GCD and LCM, by Euclid and by factorization
//   - euclid         Trace the Euclidean algorithm
//   - goldbach       Goldbach pairs of an even number
//   - triples        Pythagorean triples
//   - two-square     A prime written as a sum of two squares
//   - fib            Fibonacci-like sequence
//   - multiply       Doubling multiplication
//   - tools          List tools and parameter ranges
//
// # Implementation
//
// The root command builds the executor before any subcommand runs: an
// in-process service registry by default, or an HTTP client when --remote
// names a server. Either way results go through the same renderer, selected
// with --output.
package commands
