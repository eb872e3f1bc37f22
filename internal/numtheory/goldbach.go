package numtheory

// GoldbachPairs returns every pair of primes (p, n-p) with p <= n-p, ordered
// by p. n must be even and >= 4.
func GoldbachPairs(n int64) ([]PrimePair, error) {
	if err := checkRange("n", n, 4); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, invalidf("n must be even, got %d", n)
	}

	if n == 4 {
		return []PrimePair{{First: 2, Second: 2}}, nil
	}

	var pairs []PrimePair
	// 3 is the only odd prime that is not 6k±1, so the scan below never sees it.
	if IsPrime(n - 3) {
		pairs = append(pairs, PrimePair{First: 3, Second: n - 3})
	}

	half := n / 2
	for p := int64(5); p <= half; p = nextCandidate(p) {
		if IsPrime(p) && IsPrime(n-p) {
			pairs = append(pairs, PrimePair{First: p, Second: n - p})
		}
	}
	return pairs, nil
}
