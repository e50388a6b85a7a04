package randmom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/quadmom/randmom"
)

// TestHamburger_FirstMomentStatistics checks the sampling distribution
// itself: m₁ equals alpha[0], which the model draws from
// Normal(0, sqrt(0.5/delta[0])). With delta[0] = 4 the variance is 0.125.
// Bounds are set at roughly five standard errors so the test is
// deterministic in practice for any healthy source.
func TestHamburger_FirstMomentStatistics(t *testing.T) {
	const (
		nmom    = 4
		draws   = 3000
		wantVar = 0.125
	)
	gamma, delta := flatParams(nmom)
	g, err := randmom.NewHamburger(nmom, gamma, delta, randmom.WithSeed(2026))
	require.NoError(t, err)

	m1 := make([]float64, draws)
	for i := range m1 {
		mom, err := g.Generate()
		require.NoError(t, err)
		m1[i] = mom[1]
	}

	assert.InDelta(t, 0.0, stat.Mean(m1, nil), 0.035, "sample mean of m₁")
	assert.InDelta(t, wantVar, stat.Variance(m1, nil), 0.025, "sample variance of m₁")
}
