package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
)

func TestFactorization(t *testing.T) {
	f, err := numtheory.Factorize(360)
	require.NoError(t, err)
	assert.Equal(t, "2^3 x 3^2 x 5", Factorization(f))
	assert.Equal(t, "360 = 2^3 x 3^2 x 5", FactorizationSentence(f))

	p, err := numtheory.Factorize(10007)
	require.NoError(t, err)
	assert.Equal(t, "10,007 is prime.", FactorizationSentence(p))
}

func TestDivisorCount(t *testing.T) {
	f, err := numtheory.Factorize(360)
	require.NoError(t, err)
	text := DivisorCount(f)
	assert.Contains(t, text, "(3 + 1) x (2 + 1) x (1 + 1) = 24 total factors")
	assert.Contains(t, text, "there are 22 factors")
}

func TestEuclid(t *testing.T) {
	trace, err := numtheory.Euclid(48, 18)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"48 is not divisible by 18 so we now find the GCD of 18 and 12",
		"18 is not divisible by 12 so we now find the GCD of 12 and 6",
		"12 is divisible by 6 so 6 is the GCD of 6 and 12",
		"As a result, 6 is the GCD of 48 and 18",
	}, Euclid(trace))

	single, err := numtheory.Euclid(21, 7)
	require.NoError(t, err)
	assert.Len(t, Euclid(single), 1)
}

func TestGCDLCM(t *testing.T) {
	f1, err := numtheory.Factorize(12)
	require.NoError(t, err)
	f2, err := numtheory.Factorize(35)
	require.NoError(t, err)
	r, err := numtheory.Combine(f1, f2)
	require.NoError(t, err)

	lines := GCDLCM(f1, f2, r)
	require.Len(t, lines, 4)
	assert.Equal(t, "12 and 35 share no prime factors, so their GCD is 1.", lines[2])
	assert.Contains(t, lines[3], "= 420.")
}

func TestGCDLCMSharedPrimes(t *testing.T) {
	f1, err := numtheory.Factorize(360)
	require.NoError(t, err)
	f2, err := numtheory.Factorize(84)
	require.NoError(t, err)
	r, err := numtheory.Combine(f1, f2)
	require.NoError(t, err)

	lines := GCDLCM(f1, f2, r)
	require.Len(t, lines, 6)
	assert.Equal(t, "2 appears to the power 3 in 360 and 2 in 84, so the GCD takes 2 and the LCM takes 3.", lines[2])
	assert.Equal(t, "3 appears to the power 2 in 360 and 1 in 84, so the GCD takes 1 and the LCM takes 2.", lines[3])
	assert.Contains(t, lines[4], "= 12.")
	assert.Contains(t, lines[5], "= 2,520.")
}

func TestGoldbach(t *testing.T) {
	pairs, err := numtheory.GoldbachPairs(28)
	require.NoError(t, err)
	assert.Equal(t, []string{"The prime pairs that sum to 28 are:", "5 and 23", "11 and 17"}, Goldbach(28, pairs))
}

func TestTwoSquareAndSequence(t *testing.T) {
	r, err := numtheory.TwoSquareInfo(0)
	require.NoError(t, err)
	assert.Equal(t, "5 = 1^2 + 2^2 = 1 + 4", TwoSquare(r))

	s, err := numtheory.AdditiveSequence(1, 1)
	require.NoError(t, err)
	lines := Sequence(s)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "1, 1, 2, 3, 5, 8")
	assert.Contains(t, lines[2], "6,765 / 4,181 is approximately 1.618")
	assert.Equal(t, "That is within 2.6e-08 of the golden ratio, 1.618034.", lines[3])
}

func TestDoubling(t *testing.T) {
	trace, err := numtheory.DoublingMultiply(13, 11)
	require.NoError(t, err)
	lines := Doubling(trace)
	assert.Equal(t, "1 + 2 + 8 = 11", lines[len(lines)-3])
	assert.Equal(t, "13 + 26 + 104 = 143", lines[len(lines)-2])
	assert.Equal(t, "So 11 x 13 = 143", lines[len(lines)-1])
}

func TestDivisibilityTricks(t *testing.T) {
	r, err := numtheory.Divisibility(360)
	require.NoError(t, err)
	text := DivisibilityTricks(r)
	assert.Contains(t, text, "The sum of the digits is 9.")
	assert.Contains(t, text, "9 is divisible by 9 so 360 is divisible by 9.")
	assert.Contains(t, text, "360 is divisible by 3 and 4 so it's also divisible by 12.")

	odd, err := numtheory.Divisibility(35)
	require.NoError(t, err)
	text = DivisibilityTricks(odd)
	assert.Contains(t, text, "35 is not even")
	assert.NotContains(t, text, "last 2 digits")

	lines := DivisibilityFactors(r)
	assert.Len(t, lines, 1+22)
}

func TestPythagoreanAndPrimes(t *testing.T) {
	triples, err := numtheory.PythagoreanTriplesAfter(0)
	require.NoError(t, err)
	assert.Equal(t, "3, 4, 5 (9 + 16 = 25)", Pythagorean(triples)[0])

	primes, err := numtheory.PrimesAfter(1000)
	require.NoError(t, err)
	lines := Primes(1000, primes)
	assert.Equal(t, "The first 30 prime numbers >= 1,000 are:", lines[0])
	assert.Equal(t, "1,009", lines[1])

	twins, err := numtheory.TwinPrimesAfter(0)
	require.NoError(t, err)
	assert.Equal(t, "3 and 5", TwinPrimes(0, twins)[1])
}

func TestIsPrime(t *testing.T) {
	assert.Equal(t, "1,000,003 is prime.", IsPrime(1000003, true))
	assert.Equal(t, "1 is not prime.", IsPrime(1, false))
}
