package numtheory

const (
	// PrimesToList is the number of primes returned by PrimesAfter.
	PrimesToList = 30
	// TwinPairsToList is the number of pairs returned by TwinPrimesAfter.
	TwinPairsToList = 20
)

// PrimePair is two primes with First <= Second. It is used for Goldbach
// pairs and twin primes.
type PrimePair struct {
	First  int64 `json:"first"`
	Second int64 `json:"second"`
}

// Sum returns First + Second.
func (p PrimePair) Sum() int64 {
	return p.First + p.Second
}

// IsPrime reports whether n is prime. Apart from 2 and 3 every prime is
// 6k±1, so only those candidates up to ⌊√n⌋ are tried as divisors.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	limit := isqrt(n)
	for c := int64(5); c <= limit; c = nextCandidate(c) {
		if n%c == 0 {
			return false
		}
	}
	return true
}

// PrimesAfter returns the first PrimesToList primes >= n.
func PrimesAfter(n int64) ([]int64, error) {
	if err := checkRange("n", n, 0); err != nil {
		return nil, err
	}

	primes := make([]int64, 0, PrimesToList)
	if n <= 2 {
		primes = append(primes, 2)
	}
	if n <= 3 {
		primes = append(primes, 3)
	}

	for c := firstCandidateFrom(n); len(primes) < PrimesToList; c = nextCandidate(c) {
		if IsPrime(c) {
			primes = append(primes, c)
		}
	}
	return primes, nil
}

// TwinPrimesAfter returns the first TwinPairsToList twin prime pairs whose
// smaller member is >= n. After (3, 5) every pair straddles a multiple of 6.
func TwinPrimesAfter(n int64) ([]PrimePair, error) {
	if err := checkRange("n", n, 0); err != nil {
		return nil, err
	}

	pairs := make([]PrimePair, 0, TwinPairsToList)
	if n <= 3 {
		pairs = append(pairs, PrimePair{First: 3, Second: 5})
	}

	start := n
	if start < 5 {
		start = 5
	}
	for (start+1)%6 != 0 {
		start++
	}

	for p := start; len(pairs) < TwinPairsToList; p += 6 {
		if IsPrime(p) && IsPrime(p+2) {
			pairs = append(pairs, PrimePair{First: p, Second: p + 2})
		}
	}
	return pairs, nil
}
