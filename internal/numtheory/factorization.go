package numtheory

import (
	"encoding/json"
	"slices"
)

// PrimePower is one prime^exponent term of a factorization.
type PrimePower struct {
	Prime    int64 `json:"prime"`
	Exponent int   `json:"exponent"`
}

// Factorization is the unique prime-power decomposition of an integer >= 2.
// Terms are kept in strictly ascending prime order. A Factorization is never
// modified after construction.
type Factorization struct {
	number int64
	powers []PrimePower
}

// Factorize returns the prime factorization of n by trial division over 2, 3
// and the 6k±1 candidates.
func Factorize(n int64) (*Factorization, error) {
	if err := checkRange("n", n, 2); err != nil {
		return nil, err
	}

	powers := make([]PrimePower, 0, 8)
	remainder := n
	var exponent int

	for _, d := range [...]int64{2, 3} {
		if remainder, exponent = divideOut(remainder, d); exponent > 0 {
			powers = append(powers, PrimePower{Prime: d, Exponent: exponent})
		}
	}

	for d := int64(5); remainder > 1; d = nextCandidate(d) {
		// No divisor up to √remainder left, so the remainder is the last prime.
		if d > remainder/d {
			powers = append(powers, PrimePower{Prime: remainder, Exponent: 1})
			break
		}
		if remainder, exponent = divideOut(remainder, d); exponent > 0 {
			powers = append(powers, PrimePower{Prime: d, Exponent: exponent})
		}
	}

	return &Factorization{number: n, powers: powers}, nil
}

// divideOut removes every factor d from remainder and returns what is left
// together with the power of d that was removed.
func divideOut(remainder, d int64) (int64, int) {
	exponent := 0
	for remainder%d == 0 {
		remainder /= d
		exponent++
	}
	return remainder, exponent
}

// FromPowers builds a Factorization from prime-power terms in any order.
// Every prime must be prime, appear once and have an exponent >= 1.
func FromPowers(powers []PrimePower) (*Factorization, error) {
	if len(powers) == 0 {
		return nil, invalidf("factorization needs at least one prime power")
	}

	sorted := slices.Clone(powers)
	slices.SortFunc(sorted, func(a, b PrimePower) int {
		switch {
		case a.Prime < b.Prime:
			return -1
		case a.Prime > b.Prime:
			return 1
		}
		return 0
	})

	for i, pp := range sorted {
		if !IsPrime(pp.Prime) {
			return nil, invalidf("%d is not prime", pp.Prime)
		}
		if pp.Exponent < 1 {
			return nil, invalidf("exponent of %d must be >= 1, got %d", pp.Prime, pp.Exponent)
		}
		if i > 0 && sorted[i-1].Prime == pp.Prime {
			return nil, invalidf("prime %d appears more than once", pp.Prime)
		}
	}

	return newFactorization(sorted)
}

// newFactorization computes the represented number of already ordered powers.
func newFactorization(powers []PrimePower) (*Factorization, error) {
	number := int64(1)
	for _, pp := range powers {
		for i := 0; i < pp.Exponent; i++ {
			var ok bool
			if number, ok = mulChecked(number, pp.Prime); !ok || number > MaxSafeInteger {
				return nil, invalidf("product of prime powers exceeds %d", MaxSafeInteger)
			}
		}
	}
	return &Factorization{number: number, powers: powers}, nil
}

// Number returns the integer this factorization represents.
func (f *Factorization) Number() int64 {
	return f.number
}

// Powers returns a copy of the prime-power terms in ascending prime order.
func (f *Factorization) Powers() []PrimePower {
	return slices.Clone(f.powers)
}

// Exponent returns the exponent of p, or 0 when p does not divide the number.
func (f *Factorization) Exponent(p int64) int {
	i, found := slices.BinarySearchFunc(f.powers, p, func(pp PrimePower, target int64) int {
		switch {
		case pp.Prime < target:
			return -1
		case pp.Prime > target:
			return 1
		}
		return 0
	})
	if !found {
		return 0
	}
	return f.powers[i].Exponent
}

// IsPrimeNumber reports whether the number is prime: a single term with
// exponent 1.
func (f *Factorization) IsPrimeNumber() bool {
	return len(f.powers) == 1 && f.powers[0].Exponent == 1
}

// FactorCountTerms returns exponent+1 for every term. Their product is the
// divisor count.
func (f *Factorization) FactorCountTerms() []int {
	terms := make([]int, len(f.powers))
	for i, pp := range f.powers {
		terms[i] = pp.Exponent + 1
	}
	return terms
}

// FactorCount returns the number of positive divisors, 1 and the number
// itself included.
func (f *Factorization) FactorCount() int64 {
	count := int64(1)
	for _, t := range f.FactorCountTerms() {
		count *= int64(t)
	}
	return count
}

// Divisors returns every positive divisor in ascending order.
func (f *Factorization) Divisors() []int64 {
	divisors := make([]int64, 1, f.FactorCount())
	divisors[0] = 1
	for _, pp := range f.powers {
		n := len(divisors)
		power := int64(1)
		for e := 0; e < pp.Exponent; e++ {
			power *= pp.Prime
			for _, d := range divisors[:n] {
				divisors = append(divisors, d*power)
			}
		}
	}
	slices.Sort(divisors)
	return divisors
}

// MarshalJSON encodes the number together with its prime powers.
func (f *Factorization) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Number  int64        `json:"number"`
		IsPrime bool         `json:"is_prime"`
		Powers  []PrimePower `json:"powers"`
	}{
		Number:  f.number,
		IsPrime: f.IsPrimeNumber(),
		Powers:  f.powers,
	})
}
