package explain

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
)

// Comma formats n with thousands separators.
func Comma(n int64) string {
	return humanize.Comma(n)
}

// Factorization renders f as "2^3 x 3^2 x 5".
func Factorization(f *numtheory.Factorization) string {
	powers := f.Powers()
	parts := make([]string, len(powers))
	for i, pp := range powers {
		if pp.Exponent == 1 {
			parts[i] = Comma(pp.Prime)
		} else {
			parts[i] = fmt.Sprintf("%s^%d", Comma(pp.Prime), pp.Exponent)
		}
	}
	return strings.Join(parts, " x ")
}

// FactorizationSentence states the factorization of f's number, or that it is prime.
func FactorizationSentence(f *numtheory.Factorization) string {
	if f.IsPrimeNumber() {
		return fmt.Sprintf("%s is prime.", Comma(f.Number()))
	}
	return fmt.Sprintf("%s = %s", Comma(f.Number()), Factorization(f))
}

// DivisorCount explains the divisor count as the product of (exponent + 1).
func DivisorCount(f *numtheory.Factorization) string {
	n := Comma(f.Number())
	if f.IsPrimeNumber() {
		return fmt.Sprintf("%s is prime and doesn't have any factors other than itself and 1.", n)
	}

	powers := f.Powers()
	terms := make([]string, len(powers))
	for i, pp := range powers {
		terms[i] = fmt.Sprintf("(%d + 1)", pp.Exponent)
	}
	count := f.FactorCount()
	return fmt.Sprintf(
		"By looking at all the powers of the prime factors, we can see there are %s = %s total factors. "+
			"If 1 and %s are excluded, then there are %s factors.",
		strings.Join(terms, " x "), Comma(count), n, Comma(count-2),
	)
}

// Euclid describes every step of an Euclidean trace.
func Euclid(t *numtheory.EuclideanTrace) []string {
	lines := make([]string, 0, len(t.Steps)+1)
	for _, s := range t.Steps {
		if s.Remainder != 0 {
			lines = append(lines, fmt.Sprintf("%s is not divisible by %s so we now find the GCD of %s and %s",
				Comma(s.Max), Comma(s.Min), Comma(s.Min), Comma(s.Remainder)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s is divisible by %s so %s is the GCD of %s and %s",
			Comma(s.Max), Comma(s.Min), Comma(s.Min), Comma(s.Min), Comma(s.Max)))
	}
	if len(t.Steps) > 1 {
		lines = append(lines, fmt.Sprintf("As a result, %s is the GCD of %s and %s",
			Comma(t.GCD()), Comma(t.A), Comma(t.B)))
	}
	return lines
}

// GCDLCM explains the GCD and LCM found by merging two factorizations.
func GCDLCM(f1, f2 *numtheory.Factorization, r *numtheory.GCDLCM) []string {
	lines := []string{
		FactorizationSentence(f1),
		FactorizationSentence(f2),
	}
	if r.GCD != nil {
		for _, pp := range r.GCD.Powers() {
			e1, e2 := f1.Exponent(pp.Prime), f2.Exponent(pp.Prime)
			lines = append(lines, fmt.Sprintf("%d appears to the power %d in %s and %d in %s, so the GCD takes %d and the LCM takes %d.",
				pp.Prime, e1, Comma(f1.Number()), e2, Comma(f2.Number()), min(e1, e2), max(e1, e2)))
		}
	}
	if r.GCD == nil {
		lines = append(lines, fmt.Sprintf("%s and %s share no prime factors, so their GCD is 1.",
			Comma(f1.Number()), Comma(f2.Number())))
	} else {
		lines = append(lines, fmt.Sprintf("Taking the lower power of each shared prime factor, the GCD is %s = %s.",
			Factorization(r.GCD), Comma(r.GCD.Number())))
	}
	lines = append(lines, fmt.Sprintf("Taking the higher power of every prime factor, the LCM is %s = %s.",
		Factorization(r.LCM), Comma(r.LCM.Number())))
	return lines
}

// Pairs renders prime pairs as "a and b".
func Pairs(pairs []numtheory.PrimePair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = fmt.Sprintf("%s and %s", Comma(p.First), Comma(p.Second))
	}
	return out
}

// Goldbach lists the Goldbach pairs of n under a heading.
func Goldbach(n int64, pairs []numtheory.PrimePair) []string {
	heading := fmt.Sprintf("The prime pairs that sum to %s are:", Comma(n))
	return append([]string{heading}, Pairs(pairs)...)
}

// Primes lists primes under a heading.
func Primes(n int64, primes []int64) []string {
	lines := []string{fmt.Sprintf("The first %d prime numbers >= %s are:", len(primes), Comma(n))}
	for _, p := range primes {
		lines = append(lines, Comma(p))
	}
	return lines
}

// TwinPrimes lists twin prime pairs under a heading.
func TwinPrimes(n int64, pairs []numtheory.PrimePair) []string {
	heading := fmt.Sprintf("The first %d twin prime pairs >= %s are:", len(pairs), Comma(n))
	return append([]string{heading}, Pairs(pairs)...)
}

// Pythagorean renders triples with their squares.
func Pythagorean(triples []numtheory.PythagoreanTriple) []string {
	out := make([]string, len(triples))
	for i, t := range triples {
		out[i] = fmt.Sprintf("%s, %s, %s (%s + %s = %s)",
			Comma(t.Leg1), Comma(t.Leg2), Comma(t.Hypotenuse),
			Comma(t.Squares[0]), Comma(t.Squares[1]), Comma(t.Squares[2]))
	}
	return out
}

// TwoSquare states the two-square representation.
func TwoSquare(r *numtheory.TwoSquareResult) string {
	return fmt.Sprintf("%s = %s^2 + %s^2 = %s + %s",
		Comma(r.Prime), Comma(r.X), Comma(r.Y), Comma(r.X*r.X), Comma(r.Y*r.Y))
}

// Sequence lists the terms of an additive sequence and its end ratio.
func Sequence(s *numtheory.Sequence) []string {
	terms := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = Comma(t)
	}
	last, prev := s.Terms[len(s.Terms)-1], s.Terms[len(s.Terms)-2]
	errs := s.RatioErrors()
	return []string{
		fmt.Sprintf("The first %d elements in the Fibonacci-like sequence that begins with %s and %s are:",
			len(s.Terms), Comma(s.Terms[0]), Comma(s.Terms[1])),
		strings.Join(terms, ", "),
		fmt.Sprintf("%s / %s is approximately %f", Comma(last), Comma(prev), s.Ratio),
		fmt.Sprintf("That is within %.1e of the golden ratio, %f.", errs[len(errs)-1], numtheory.GoldenRatio),
	}
}

// Doubling explains multiplication by doubling.
func Doubling(t *numtheory.DoublingTrace) []string {
	lines := []string{
		fmt.Sprintf("Powers of 2 up to %s and the matching multiples of %s:", Comma(t.Min), Comma(t.Max)),
	}
	for _, row := range t.Rows {
		lines = append(lines, fmt.Sprintf("%s\t%s", Comma(row.PowerOfTwo), Comma(row.Multiple)))
	}

	powers := make([]string, len(t.Selected))
	multiples := make([]string, len(t.Selected))
	for i, row := range t.Selected {
		powers[i] = Comma(row.PowerOfTwo)
		multiples[i] = Comma(row.Multiple)
	}
	return append(lines,
		fmt.Sprintf("%s = %s", strings.Join(powers, " + "), Comma(t.Min)),
		fmt.Sprintf("%s = %s", strings.Join(multiples, " + "), Comma(t.Product)),
		fmt.Sprintf("So %s x %s = %s", Comma(t.Min), Comma(t.Max), Comma(t.Product)),
	)
}

// IsPrime states whether n is prime.
func IsPrime(n int64, prime bool) string {
	if prime {
		return fmt.Sprintf("%s is prime.", Comma(n))
	}
	return fmt.Sprintf("%s is not prime.", Comma(n))
}
