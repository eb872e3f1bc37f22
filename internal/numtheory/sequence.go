package numtheory

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// SequenceLength is the number of terms produced by AdditiveSequence.
	SequenceLength = 20
	// goldenRatioTolerance is how close the end ratio must be to φ to count
	// as converged.
	goldenRatioTolerance = 1e-6
)

// GoldenRatio is (1 + √5) / 2, the limit of the ratio of consecutive terms of
// any additive sequence with positive seeds.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// Sequence is a Fibonacci-like sequence: every term from index 2 on is the
// sum of the two before it.
type Sequence struct {
	Terms []int64 `json:"terms"`
	// Ratio is the last term divided by the second-to-last.
	Ratio float64 `json:"ratio"`
	// Ratios holds Terms[i+1]/Terms[i] for every consecutive pair.
	Ratios    []float64 `json:"ratios"`
	Converged bool      `json:"converged"`
}

// AdditiveSequence extends first and second into SequenceLength terms.
func AdditiveSequence(first, second int64) (*Sequence, error) {
	if err := checkRange("first", first, 1); err != nil {
		return nil, err
	}
	if err := checkRange("second", second, 1); err != nil {
		return nil, err
	}

	terms := make([]int64, SequenceLength)
	terms[0], terms[1] = first, second
	for i := 2; i < SequenceLength; i++ {
		next, ok := addChecked(terms[i-2], terms[i-1])
		if !ok || next > MaxSafeInteger {
			return nil, invalidf("term %d of the sequence starting %d, %d exceeds %d", i+1, first, second, MaxSafeInteger)
		}
		terms[i] = next
	}

	ratios := make([]float64, SequenceLength-1)
	for i := range ratios {
		ratios[i] = float64(terms[i+1]) / float64(terms[i])
	}
	ratio := ratios[len(ratios)-1]

	return &Sequence{
		Terms:     terms,
		Ratio:     ratio,
		Ratios:    ratios,
		Converged: scalar.EqualWithinAbs(ratio, GoldenRatio, goldenRatioTolerance),
	}, nil
}

// RatioErrors returns |ratio - φ| for every consecutive-term ratio.
func (s *Sequence) RatioErrors() []float64 {
	errs := make([]float64, len(s.Ratios))
	copy(errs, s.Ratios)
	floats.AddConst(-GoldenRatio, errs)
	for i, e := range errs {
		errs[i] = math.Abs(e)
	}
	return errs
}
