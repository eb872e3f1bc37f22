package numtheory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoublingMultiply(t *testing.T) {
	trace, err := DoublingMultiply(13, 11)
	require.NoError(t, err)

	assert.Equal(t, int64(11), trace.Min)
	assert.Equal(t, int64(13), trace.Max)
	assert.Equal(t, int64(143), trace.Product)

	wantRows := []DoublingRow{{1, 13}, {2, 26}, {4, 52}, {8, 104}}
	if diff := cmp.Diff(wantRows, trace.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	wantSelected := []DoublingRow{{1, 13}, {2, 26}, {8, 104}}
	if diff := cmp.Diff(wantSelected, trace.Selected); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
}

func TestDoublingMultiplyProperties(t *testing.T) {
	for a := int64(2); a <= 150; a++ {
		for b := int64(2); b <= 150; b += 3 {
			trace, err := DoublingMultiply(a, b)
			require.NoError(t, err)
			require.Equal(t, a*b, trace.Product)

			var powers, multiples int64
			for i, row := range trace.Selected {
				powers += row.PowerOfTwo
				multiples += row.Multiple
				if i > 0 {
					require.Greater(t, row.PowerOfTwo, trace.Selected[i-1].PowerOfTwo)
				}
			}
			require.Equal(t, trace.Min, powers)
			require.Equal(t, trace.Product, multiples)

			last := trace.Rows[len(trace.Rows)-1]
			require.LessOrEqual(t, last.PowerOfTwo, trace.Min)
			require.Greater(t, 2*last.PowerOfTwo, trace.Min)
		}
	}
}

func TestDoublingMultiplyInvalid(t *testing.T) {
	_, err := DoublingMultiply(1, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = DoublingMultiply(5, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = DoublingMultiply(MaxSafeInteger, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
