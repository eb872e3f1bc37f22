package numtheory

import (
	"math"
	"math/bits"
)

// largest r with r*r representable as int64
const maxInt64Root int64 = 3037000499

// isqrt returns ⌊√n⌋ for n >= 0.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	if r > maxInt64Root {
		r = maxInt64Root
	}
	for r*r > n {
		r--
	}
	for r < maxInt64Root && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// perfectSquareRoot returns the integer root of n when n is a perfect square.
func perfectSquareRoot(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	r := isqrt(n)
	return r, r*r == n
}

// mulChecked multiplies two non-negative values, reporting overflow.
func mulChecked(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// addChecked adds two non-negative values, reporting overflow.
func addChecked(a, b int64) (int64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// nextCandidate steps through 5, 7, 11, 13, 17, 19, ...: the integers of the
// form 6k-1 and 6k+1.
func nextCandidate(c int64) int64 {
	if c%6 == 5 {
		return c + 2
	}
	return c + 4
}

// firstCandidateFrom returns the smallest 6k±1 integer >= max(n, 5).
func firstCandidateFrom(n int64) int64 {
	if n <= 5 {
		return 5
	}
	for r := n % 6; r != 1 && r != 5; r = n % 6 {
		n++
	}
	return n
}
