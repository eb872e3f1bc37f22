package numtheory

const (
	// TriplesToList is the number of triples returned by PythagoreanTriplesAfter.
	TriplesToList = 10
	// MaxTripleStart bounds the starting leg so every square fits in an int64.
	MaxTripleStart int64 = 50_000
)

// PythagoreanTriple is Leg1² + Leg2² = Hypotenuse² with Leg1 < Leg2 < Hypotenuse.
type PythagoreanTriple struct {
	Leg1       int64    `json:"leg1"`
	Leg2       int64    `json:"leg2"`
	Hypotenuse int64    `json:"hypotenuse"`
	Squares    [3]int64 `json:"squares"`
}

// PythagoreanTriplesAfter returns the first TriplesToList triples whose
// shorter leg is >= max(n, 3), ordered by Leg1 then Leg2.
//
// Any n >= 0 is a valid request, but n above MaxTripleStart is rejected as
// an overflow guard: an odd leg a pairs with a longer leg up to (a²-1)/2,
// whose square stops fitting in an int64 not far past that bound. Callers
// that want a tighter ceiling apply their own.
func PythagoreanTriplesAfter(n int64) ([]PythagoreanTriple, error) {
	if err := checkRange("n", n, 0); err != nil {
		return nil, err
	}
	if n > MaxTripleStart {
		return nil, invalidf("n must be <= %d, got %d", MaxTripleStart, n)
	}

	triples := make([]PythagoreanTriple, 0, TriplesToList)
	leg1 := max(n, 3)
	leg2 := leg1 + 1
	for len(triples) < TriplesToList {
		sumOfSquares := leg1*leg1 + leg2*leg2
		// The hypotenuse is at least leg2+1. Once that no longer fits, larger
		// leg2 values cannot work either.
		if sumOfSquares < (leg2+1)*(leg2+1) {
			leg1++
			leg2 = leg1 + 1
			continue
		}
		if hyp, ok := perfectSquareRoot(sumOfSquares); ok {
			triples = append(triples, PythagoreanTriple{
				Leg1:       leg1,
				Leg2:       leg2,
				Hypotenuse: hyp,
				Squares:    [3]int64{leg1 * leg1, leg2 * leg2, sumOfSquares},
			})
		}
		leg2++
	}
	return triples, nil
}
