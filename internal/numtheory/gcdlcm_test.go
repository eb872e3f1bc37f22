package numtheory

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFactorize(t *testing.T, n int64) *Factorization {
	t.Helper()
	f, err := Factorize(n)
	require.NoError(t, err)
	return f
}

func TestCombine(t *testing.T) {
	r, err := Combine(mustFactorize(t, 12), mustFactorize(t, 18))
	require.NoError(t, err)

	require.NotNil(t, r.GCD)
	assert.Equal(t, []PrimePower{{2, 1}, {3, 1}}, r.GCD.Powers())
	assert.Equal(t, int64(6), r.GCDNumber())
	assert.Equal(t, []PrimePower{{2, 2}, {3, 2}}, r.LCM.Powers())
	assert.Equal(t, int64(36), r.LCMNumber())
}

func TestCombineCoprime(t *testing.T) {
	f1, f2 := mustFactorize(t, 8), mustFactorize(t, 45)
	r, err := Combine(f1, f2)
	require.NoError(t, err)

	assert.Nil(t, r.GCD)
	assert.Equal(t, int64(1), r.GCDNumber())
	assert.Equal(t, []PrimePower{{2, 3}, {3, 2}, {5, 1}}, r.LCM.Powers())
	assert.Equal(t, int64(360), r.LCMNumber())
}

func TestCombineUnsharedPrimesInterleave(t *testing.T) {
	// 2·7·13 and 3·7²·11
	r, err := Combine(mustFactorize(t, 182), mustFactorize(t, 1617))
	require.NoError(t, err)

	assert.Equal(t, []PrimePower{{7, 1}}, r.GCD.Powers())
	assert.Equal(t, []PrimePower{{2, 1}, {3, 1}, {7, 2}, {11, 1}, {13, 1}}, r.LCM.Powers())
}

func TestCombineMatchesEuclid(t *testing.T) {
	for a := int64(2); a <= 120; a++ {
		for b := int64(2); b <= 120; b++ {
			r, err := Combine(mustFactorize(t, a), mustFactorize(t, b))
			require.NoError(t, err)
			trace, err := Euclid(a, b)
			require.NoError(t, err)

			require.Equal(t, trace.GCD(), r.GCDNumber(), "gcd(%d, %d)", a, b)
			require.Equal(t, a*b/trace.GCD(), r.LCMNumber(), "lcm(%d, %d)", a, b)
		}
	}
}

func TestCombineNil(t *testing.T) {
	_, err := Combine(nil, mustFactorize(t, 4))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCombineAgreesWithFromPowers(t *testing.T) {
	for a := int64(2); a <= 60; a++ {
		for b := int64(2); b <= 60; b++ {
			r, err := Combine(mustFactorize(t, a), mustFactorize(t, b))
			require.NoError(t, err)

			reversed := r.LCM.Powers()
			slices.Reverse(reversed)
			want, err := FromPowers(reversed)
			require.NoError(t, err)
			assert.Equal(t, want.Powers(), r.LCM.Powers(), "lcm(%d, %d)", a, b)
			assert.Equal(t, want.Number(), r.LCMNumber(), "lcm(%d, %d)", a, b)
		}
	}
}
