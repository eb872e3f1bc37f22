package numtheory

// GCDLCM holds the GCD and LCM of two numbers as factorizations. GCD is nil
// when the numbers share no prime, meaning the GCD is 1.
type GCDLCM struct {
	GCD *Factorization `json:"gcd"`
	LCM *Factorization `json:"lcm"`
}

// GCDNumber returns the GCD as an integer.
func (r *GCDLCM) GCDNumber() int64 {
	if r.GCD == nil {
		return 1
	}
	return r.GCD.Number()
}

// LCMNumber returns the LCM as an integer.
func (r *GCDLCM) LCMNumber() int64 {
	return r.LCM.Number()
}

// Combine merges two factorizations into GCD and LCM factorizations. Shared
// primes take the smaller exponent in the GCD and the larger in the LCM;
// unshared primes go to the LCM only. Both inputs are walked in ascending
// order, so the outputs come out ascending.
func Combine(f1, f2 *Factorization) (*GCDLCM, error) {
	if f1 == nil || f2 == nil {
		return nil, invalidf("both factorizations are required")
	}

	a, b := f1.powers, f2.powers
	var gcd []PrimePower
	lcm := make([]PrimePower, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Prime < b[j].Prime:
			lcm = append(lcm, a[i])
			i++
		case a[i].Prime > b[j].Prime:
			lcm = append(lcm, b[j])
			j++
		default:
			gcd = append(gcd, PrimePower{Prime: a[i].Prime, Exponent: min(a[i].Exponent, b[j].Exponent)})
			lcm = append(lcm, PrimePower{Prime: a[i].Prime, Exponent: max(a[i].Exponent, b[j].Exponent)})
			i++
			j++
		}
	}
	lcm = append(lcm, a[i:]...)
	lcm = append(lcm, b[j:]...)

	result := &GCDLCM{}
	var err error
	if len(gcd) > 0 {
		if result.GCD, err = newFactorization(gcd); err != nil {
			return nil, err
		}
	}
	if result.LCM, err = newFactorization(lcm); err != nil {
		return nil, err
	}
	return result, nil
}
