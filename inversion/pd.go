package inversion

import (
	"math"

	"github.com/katalvlaran/quadmom/moments"
)

// zeroFloor replaces exact-zero input moments, relative to the largest
// moment magnitude. Symmetric measures have exactly-zero odd moments, which
// drive the triangular recursion into 0/0; substituting the floor recovers
// the analytic limit to ~zeroFloor absolute error while leaving every
// non-degenerate input byte-identical.
const zeroFloor = 1e-10

// ProductDifference — base product-difference (PD) moment inversion.
//
// Description:
//
//	Derives the recurrence coefficients (alpha, beta) of the orthogonal
//	polynomials of a moment sequence via Gordon's product-difference
//	algorithm: a triangular cross-difference recursion over a (size × size)
//	array, size = 2n+1−iodd, followed by a continued-fraction recombination.
//
// Algorithm outline:
//  1. Seed P[0][0] = 1 and column 1 with the input moments, then flip the
//     sign of every even-indexed row.
//  2. Fill columns j = 2..size−1 bottom-up inside a shrinking triangle
//     k = size+2−j:
//     P[i][j] = P[0][j−1]·P[i+1][j−2] − P[0][j−2]·P[i+1][j−1].
//  3. Continued-fraction coefficients: zeta[0] = 0 and
//     zeta[m] = P[0][m+1] / (P[0][m]·P[0][m−1]).
//  4. Recombine: alpha[k] = zeta[2k+1] + zeta[2k];
//     beta[0] = 1, beta[k] = zeta[2k]·zeta[2k−1].
//
// The engine performs no realizability validation. Near-singular divisions
// in step 3 — the signature of a non-realizable or degenerate input — are
// propagated silently into non-finite or negative beta values; detecting
// them is the caller's (or AdaptivePD's) responsibility. All scratch is
// allocated per call, so a single engine is safe for concurrent use.
//
// Errors:
//   - ErrNoMoments      — empty input.
//   - ErrTooFewMoments  — fewer than two moments.
//
// Complexity: O(n²) time, O(n²) memory (the triangular array).
type ProductDifference struct{}

// NewProductDifference returns the base PD engine.
func NewProductDifference() *ProductDifference { return &ProductDifference{} }

// RecurrenceCoeffs implements Inverter via the product-difference recursion.
func (*ProductDifference) RecurrenceCoeffs(mom []float64) ([]float64, []float64, error) {
	nmom := len(mom)
	if nmom == 0 {
		return nil, nil, ErrNoMoments
	}
	if nmom < 2 {
		return nil, nil, ErrTooFewMoments
	}

	n := moments.N(nmom)
	iodd := moments.Iodd(nmom)
	size := 2*n + 1 - iodd

	// Exact zeros (symmetric measures) would produce 0/0 below; nudge them
	// onto the zeroFloor so the recursion converges to the analytic limit.
	scale := 0.0
	for _, m := range mom {
		if a := math.Abs(m); a > scale {
			scale = a
		}
	}
	if scale == 0 {
		scale = 1
	}
	seeded := make([]float64, nmom)
	for i, m := range mom {
		if m == 0 {
			m = zeroFloor * scale
		}
		seeded[i] = m
	}

	// Triangular recursion array, row-major; row 0 is the pivot row.
	p := make([]float64, size*size)
	p[0] = 1
	for i := 0; i < size-1; i++ {
		p[i*size+1] = seeded[i]
	}
	for i := 0; i < size; i += 2 {
		for j := 0; j < size; j++ {
			p[i*size+j] = -p[i*size+j]
		}
	}
	for j := 2; j < size; j++ {
		k := size + 2 - j
		for i := 0; i < k-1; i++ {
			p[i*size+j] = p[j-1]*p[(i+1)*size+j-2] - p[j-2]*p[(i+1)*size+j-1]
		}
	}

	// Continued-fraction coefficients from the pivot row.
	zeta := make([]float64, size-1)
	for m := 1; m < size-1; m++ {
		zeta[m] = p[m+1] / (p[m] * p[m-1])
	}

	alpha := make([]float64, n-iodd)
	for k := range alpha {
		alpha[k] = zeta[2*k+1] + zeta[2*k]
	}
	beta := make([]float64, n)
	beta[0] = 1
	for k := 1; k < n; k++ {
		beta[k] = zeta[2*k] * zeta[2*k-1]
	}

	return alpha, beta, nil
}
