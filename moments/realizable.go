package moments

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IsRealizable reports whether a moment sequence lies strictly inside the
// Hamburger moment space, i.e. whether some non-degenerate non-negative
// measure on the whole real line has exactly these moments.
//
// The check factorizes the largest leading Hankel matrix H[i][j] = m_{i+j}
// (dimension (nmom+1)/2) with a Cholesky decomposition; the sequence is
// strictly realizable iff H is positive definite. Sequences on the boundary
// of moment space (finitely supported measures, singular Hankel matrix) are
// reported as not realizable: their quadrature is degenerate and inversion
// of them is numerically meaningless beyond the support size.
//
// Non-finite moments are rejected. Errors: ErrEmptyMoments on empty input.
func IsRealizable(mom []float64) (bool, error) {
	if len(mom) == 0 {
		return false, ErrEmptyMoments
	}
	for _, m := range mom {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return false, nil
		}
	}

	// Largest Hankel dimension h with 2(h−1) <= nmom−1.
	h := (len(mom) + 1) / 2
	hk := mat.NewSymDense(h, nil)
	for i := 0; i < h; i++ {
		for j := i; j < h; j++ {
			hk.SetSym(i, j, mom[i+j])
		}
	}

	var chol mat.Cholesky

	return chol.Factorize(hk), nil
}
