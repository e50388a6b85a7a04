package moments_test

import (
	"testing"

	"github.com/katalvlaran/quadmom/moments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestRc2Mom_StandardNormal verifies the Legendre-like fixed point:
// alpha ≡ 0, beta ≡ 1 reproduces the truncated standard-normal moments.
func TestRc2Mom_StandardNormal(t *testing.T) {
	mom, err := moments.Rc2Mom([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 1, 0}, mom, tol)

	mom, err = moments.Rc2Mom([]float64{0, 0, 0, 0}, []float64{1, 1, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 1, 0, 3, 0, 15, 0}, mom, tol)
}

// TestRc2Mom_Exponential checks the unit-exponential (Laguerre) recurrence:
// alpha_k = 2k+1, beta_k = k² gives m_k = k!.
func TestRc2Mom_Exponential(t *testing.T) {
	mom, err := moments.Rc2Mom([]float64{1, 3}, []float64{1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 2, 6}, mom, tol)
}

// TestRc2Mom_OddLength verifies that an odd sequence (len(alpha) = n−1)
// yields 2n−1 moments, with the undetermined trailing alpha irrelevant.
func TestRc2Mom_OddLength(t *testing.T) {
	mom, err := moments.Rc2Mom([]float64{0, 0}, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 1, 0, 3}, mom, tol)
}

// TestRc2Mom_ZerothScale checks that beta[0] scales every moment.
func TestRc2Mom_ZerothScale(t *testing.T) {
	mom, err := moments.Rc2Mom([]float64{1, 3}, []float64{2, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 4, 12}, mom, tol)
}

// TestRc2Mom_Errors exercises the structural error cases.
func TestRc2Mom_Errors(t *testing.T) {
	_, err := moments.Rc2Mom(nil, nil)
	assert.ErrorIs(t, err, moments.ErrEmptyCoeffs, "empty beta must error")

	_, err = moments.Rc2Mom([]float64{0, 0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, moments.ErrCoeffLength, "alpha longer than beta must error")

	_, err = moments.Rc2Mom([]float64{0}, []float64{1, 1, 2})
	assert.ErrorIs(t, err, moments.ErrCoeffLength, "alpha shorter than beta-1 must error")
}
