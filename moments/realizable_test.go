package moments_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadmom/moments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsRealizable_Positive accepts interior points of Hamburger moment space.
func TestIsRealizable_Positive(t *testing.T) {
	for _, mom := range [][]float64{
		{1, 0, 1, 0},            // standard normal, truncated
		{1, 1, 2, 6},            // unit exponential
		{1, 0, 1, 0, 3, 0},      // standard normal, six moments
		{1, 0.5, 1.0 / 3, 0.25}, // uniform on (0,1)
	} {
		ok, err := moments.IsRealizable(mom)
		require.NoError(t, err)
		assert.True(t, ok, "moments %v must be realizable", mom)
	}
}

// TestIsRealizable_Negative rejects Hankel-indefinite, degenerate and
// non-finite sequences.
func TestIsRealizable_Negative(t *testing.T) {
	for _, mom := range [][]float64{
		{1, 0, -1, 0},              // negative variance
		{1, 2, 4, 8},               // dirac at 2: boundary, singular Hankel
		{1, 0, math.NaN(), 0},      // non-finite entry
		{1, 0, math.Inf(1), 0},     // non-finite entry
		{1, 10, 1, 0},              // m2 < m1²
		{1, 0, 1, 0, 0.5, 0, 1, 0}, // m4 < m2²
	} {
		ok, err := moments.IsRealizable(mom)
		require.NoError(t, err)
		assert.False(t, ok, "moments %v must not be realizable", mom)
	}
}

// TestIsRealizable_Empty errors on an empty sequence.
func TestIsRealizable_Empty(t *testing.T) {
	_, err := moments.IsRealizable(nil)
	assert.ErrorIs(t, err, moments.ErrEmptyMoments)
}
