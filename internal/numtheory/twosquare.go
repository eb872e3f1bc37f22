package numtheory

// TwoSquareResult is a prime p ≡ 1 (mod 4) with p = X² + Y² and X <= Y.
type TwoSquareResult struct {
	Prime int64 `json:"prime"`
	X     int64 `json:"x"`
	Y     int64 `json:"y"`
}

// TwoSquareInfo finds the smallest prime p >= n with p ≡ 1 (mod 4) and the
// representation p = x² + y² with the smallest x. Fermat's two-square
// theorem guarantees one exists.
func TwoSquareInfo(n int64) (*TwoSquareResult, error) {
	if err := checkRange("n", n, 0); err != nil {
		return nil, err
	}

	p := n
	for p%4 != 1 {
		p++
	}
	for !IsPrime(p) {
		p += 4
	}

	for x := int64(1); x*x < p; x++ {
		if y, ok := perfectSquareRoot(p - x*x); ok {
			return &TwoSquareResult{Prime: p, X: x, Y: y}, nil
		}
	}
	return nil, internalf("no two-square representation found for prime %d", p)
}
