package numtheory

// EuclideanStep is one iteration of the Euclidean algorithm:
// Max = q*Min + Remainder.
type EuclideanStep struct {
	Max       int64 `json:"max_number"`
	Min       int64 `json:"min_number"`
	Remainder int64 `json:"remainder"`
}

// EuclideanTrace records every step of the Euclidean algorithm for A and B.
// The last step has a zero remainder and its Min is the GCD.
type EuclideanTrace struct {
	A     int64           `json:"a"`
	B     int64           `json:"b"`
	Steps []EuclideanStep `json:"steps"`
}

// GCD returns the greatest common divisor found by the trace.
func (t *EuclideanTrace) GCD() int64 {
	return t.Steps[len(t.Steps)-1].Min
}

// Euclid computes gcd(a, b) by repeated remainders, recording each step.
func Euclid(a, b int64) (*EuclideanTrace, error) {
	if err := checkRange("a", a, 1); err != nil {
		return nil, err
	}
	if err := checkRange("b", b, 1); err != nil {
		return nil, err
	}

	hi, lo := max(a, b), min(a, b)
	trace := &EuclideanTrace{A: a, B: b}
	for {
		step := EuclideanStep{Max: hi, Min: lo, Remainder: hi % lo}
		trace.Steps = append(trace.Steps, step)
		if step.Remainder == 0 {
			return trace, nil
		}
		hi, lo = lo, step.Remainder
	}
}
