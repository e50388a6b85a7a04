package inversion

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadmom/moments"
)

// AdaptivePD — product-difference inversion with dynamic order reduction.
//
// Description:
//
//	Runs the base PD engine and judges the result with the stability
//	criteria of the adaptive Wheeler algorithm. When the full-order result
//	is unstable, the number of quadrature nodes is reduced by one (using
//	correspondingly fewer moments) and the base engine re-invoked, down to a
//	single node if necessary.
//
// A candidate order is accepted when all of:
//   - every coefficient is finite and beta[k] > 0 for k ≥ 1;
//   - weight ratio: wmin/wmax ≥ Rmin over the quadrature weights;
//   - node distance: the smallest gap between adjacent nodes is at least
//     Eabs relative to the largest gap.
//
// The node/weight view needed by the last two criteria is computed
// internally from the symmetrized Jacobi matrix of the candidate
// coefficients (eigenvalues = nodes, squared first eigenvector components =
// weights); it never leaves the engine — the public result remains a
// recurrence-coefficient pair.
//
// Postcondition: the returned beta is finite and positive beyond index 0,
// and the returned slices may be shorter than the input nominally supports.
// Callers must accept variable output length.
//
// Errors:
//   - ErrNoMoments / ErrTooFewMoments — structural, as the base engine.
//   - ErrUnstable — no order down to a single node passed the criteria
//     (non-finite input, or m₀-degenerate sequences).
type AdaptivePD struct {
	base ProductDifference
	rmin float64
	eabs float64
}

// NewAdaptivePD validates opts and returns the adaptive engine.
// Tolerances are fixed for the engine's lifetime.
func NewAdaptivePD(opts Options) (*AdaptivePD, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &AdaptivePD{rmin: opts.Rmin, eabs: opts.Eabs}, nil
}

// Rmin returns the weight-ratio tolerance configured at construction.
func (a *AdaptivePD) Rmin() float64 { return a.rmin }

// Eabs returns the node-distance tolerance configured at construction.
func (a *AdaptivePD) Eabs() float64 { return a.eabs }

// RecurrenceCoeffs implements Inverter with order reduction.
func (a *AdaptivePD) RecurrenceCoeffs(mom []float64) ([]float64, []float64, error) {
	nmom := len(mom)
	if nmom == 0 {
		return nil, nil, ErrNoMoments
	}
	if nmom < 2 {
		return nil, nil, ErrTooFewMoments
	}

	for nLoc := moments.N(nmom); nLoc >= 1; nLoc-- {
		use := 2 * nLoc
		if use > nmom {
			use = nmom // first pass of an odd sequence keeps all moments
		}
		alpha, beta, err := a.base.RecurrenceCoeffs(mom[:use])
		if err != nil {
			return nil, nil, err
		}
		if a.stable(alpha, beta) {
			return alpha, beta, nil
		}
	}

	return nil, nil, ErrUnstable
}

// stable applies the positivity, weight-ratio and node-distance criteria to
// a candidate coefficient pair.
func (a *AdaptivePD) stable(alpha, beta []float64) bool {
	for _, v := range alpha {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for k, v := range beta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		if k >= 1 && v <= 0 {
			return false
		}
	}
	n := len(beta)
	if n < 2 {
		return true // a single node has no ratio or gap to violate
	}

	nodes, weights, ok := a.quadratureView(alpha, beta)
	if !ok {
		return false
	}

	wmin, wmax := weights[0], weights[0]
	for _, w := range weights[1:] {
		wmin = math.Min(wmin, w)
		wmax = math.Max(wmax, w)
	}
	if wmin < a.rmin*wmax {
		return false
	}

	// Eigenvalues arrive in ascending order, so adjacent gaps suffice.
	dmin, dmax := math.Inf(1), 0.0
	for i := 1; i < len(nodes); i++ {
		gap := nodes[i] - nodes[i-1]
		dmin = math.Min(dmin, gap)
		dmax = math.Max(dmax, gap)
	}
	return dmin >= a.eabs*dmax
}

// quadratureView computes nodes and weights from the symmetrized Jacobi
// matrix of (alpha, beta). Requires beta[k] > 0 for k >= 1, which stable
// has already established. The undetermined trailing alpha of an odd
// sequence is fixed to zero, consistent with moments.Rc2Mom.
func (a *AdaptivePD) quadratureView(alpha, beta []float64) (nodes, weights []float64, ok bool) {
	n := len(beta)
	jac := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if i < len(alpha) {
			jac.SetSym(i, i, alpha[i])
		}
		if i+1 < n {
			jac.SetSym(i, i+1, math.Sqrt(beta[i+1]))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(jac, true) {
		return nil, nil, false
	}
	nodes = eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	weights = make([]float64, n)
	for i := 0; i < n; i++ {
		f := vecs.At(0, i)
		weights[i] = f * f // relative weights; the m₀ factor cancels in ratios
	}

	return nodes, weights, true
}
