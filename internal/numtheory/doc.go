// Package numtheory implements the number theory engine behind the playground.
//
// Every operation returns structured data describing both the answer and how it
// was derived, so callers can render a step-by-step explanation. Narrative text
// lives in the explain subpackage; nothing here formats numbers for display.
//
// Operations:
//   - IsPrime: 6k±1 trial division
//   - Factorize / FromPowers: prime-power decomposition (Factorization)
//   - Combine: GCD and LCM from two factorizations
//   - Euclid: Euclidean algorithm with every remainder step recorded
//   - GoldbachPairs: prime pairs summing to an even number
//   - PythagoreanTriplesAfter: integer right triangles
//   - TwoSquareInfo: a prime ≡ 1 (mod 4) written as x² + y²
//   - AdditiveSequence: Fibonacci-like sequences from two seeds
//   - DoublingMultiply: multiplication by doubling (Egyptian multiplication)
//   - PrimesAfter, TwinPrimesAfter, Divisibility: prime listings and divisor reports
//
// Errors:
//   - ErrInvalidArgument: input outside an operation's domain, detected before any work
//   - ErrInternal: a mathematical invariant failed to hold (an engine bug)
//
// All values are int64 and limited to the safe-integer range (±2^53-1).
// Calls share no state and are safe to run concurrently.
//
// Example Usage:
//
//	f, err := numtheory.Factorize(360)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.FactorCount()) // 24
package numtheory
