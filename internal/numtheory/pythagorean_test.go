package numtheory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythagoreanTriplesAfter(t *testing.T) {
	triples, err := PythagoreanTriplesAfter(0)
	require.NoError(t, err)
	require.Len(t, triples, TriplesToList)

	assert.Equal(t, PythagoreanTriple{Leg1: 3, Leg2: 4, Hypotenuse: 5, Squares: [3]int64{9, 16, 25}}, triples[0])

	type abc struct{ a, b, c int64 }
	want := []abc{
		{3, 4, 5}, {5, 12, 13}, {6, 8, 10}, {7, 24, 25}, {8, 15, 17},
		{9, 12, 15}, {9, 40, 41}, {10, 24, 26}, {11, 60, 61}, {12, 16, 20},
	}
	for i, w := range want {
		assert.Equal(t, w, abc{triples[i].Leg1, triples[i].Leg2, triples[i].Hypotenuse}, "triple %d", i)
	}
}

func TestPythagoreanTriplesProperties(t *testing.T) {
	for _, n := range []int64{0, 3, 17, 100, 999} {
		triples, err := PythagoreanTriplesAfter(n)
		require.NoError(t, err)
		require.Len(t, triples, TriplesToList)

		for i, tr := range triples {
			require.GreaterOrEqual(t, tr.Leg1, max(n, 3))
			require.Less(t, tr.Leg1, tr.Leg2)
			require.Less(t, tr.Leg2, tr.Hypotenuse)
			require.Equal(t, tr.Leg1*tr.Leg1+tr.Leg2*tr.Leg2, tr.Hypotenuse*tr.Hypotenuse)
			require.Equal(t, [3]int64{tr.Leg1 * tr.Leg1, tr.Leg2 * tr.Leg2, tr.Hypotenuse * tr.Hypotenuse}, tr.Squares)
			if i > 0 {
				prev := triples[i-1]
				require.True(t, prev.Leg1 < tr.Leg1 || (prev.Leg1 == tr.Leg1 && prev.Leg2 < tr.Leg2))
			}
		}
	}
}

func TestPythagoreanTriplesInvalid(t *testing.T) {
	_, err := PythagoreanTriplesAfter(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = PythagoreanTriplesAfter(MaxTripleStart + 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
