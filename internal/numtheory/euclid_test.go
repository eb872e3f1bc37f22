package numtheory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclid(t *testing.T) {
	tests := []struct {
		name  string
		a, b  int64
		steps []EuclideanStep
		gcd   int64
	}{
		{
			name:  "48 and 18",
			a:     48,
			b:     18,
			steps: []EuclideanStep{{48, 18, 12}, {18, 12, 6}, {12, 6, 0}},
			gcd:   6,
		},
		{
			name:  "order does not matter",
			a:     18,
			b:     48,
			steps: []EuclideanStep{{48, 18, 12}, {18, 12, 6}, {12, 6, 0}},
			gcd:   6,
		},
		{
			name:  "divisible in one step",
			a:     7,
			b:     21,
			steps: []EuclideanStep{{21, 7, 0}},
			gcd:   7,
		},
		{
			name:  "equal inputs",
			a:     5,
			b:     5,
			steps: []EuclideanStep{{5, 5, 0}},
			gcd:   5,
		},
		{
			name:  "coprime",
			a:     13,
			b:     8,
			steps: []EuclideanStep{{13, 8, 5}, {8, 5, 3}, {5, 3, 2}, {3, 2, 1}, {2, 1, 0}},
			gcd:   1,
		},
		{
			name:  "one",
			a:     1,
			b:     9,
			steps: []EuclideanStep{{9, 1, 0}},
			gcd:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace, err := Euclid(tt.a, tt.b)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.steps, trace.Steps); diff != "" {
				t.Errorf("steps mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.gcd, trace.GCD())
		})
	}
}

func TestEuclidProperties(t *testing.T) {
	for a := int64(1); a <= 200; a++ {
		for b := int64(1); b <= 200; b += 7 {
			trace, err := Euclid(a, b)
			require.NoError(t, err)
			require.NotEmpty(t, trace.Steps)

			last := trace.Steps[len(trace.Steps)-1]
			require.Zero(t, last.Remainder)
			g := trace.GCD()
			require.Zero(t, a%g)
			require.Zero(t, b%g)
			for d := g + 1; d <= min(a, b); d++ {
				require.False(t, a%d == 0 && b%d == 0, "%d divides both %d and %d", d, a, b)
			}
		}
	}
}

func TestEuclidInvalid(t *testing.T) {
	_, err := Euclid(0, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Euclid(5, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
