package randmom

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/quadmom/inversion"
	"github.com/katalvlaran/quadmom/moments"
)

// Hamburger generates random moment sequences for the two-sided (Hamburger)
// moment problem and evaluates their closed-form density.
//
// The distribution model is parametrized by two vectors validated at
// construction against the Dette-Nagel domain constraints:
//
//   - gamma, length n−1: shifts the Gamma shape of each beta coefficient;
//     gamma[k] must exceed −2(n−k) (1-based k) so every shape stays positive.
//   - delta, length 2n−1, strictly positive: even-indexed entries scale the
//     Normal variance of the alpha coefficients, odd-indexed entries are the
//     Gamma rates of the beta coefficients.
//
// The zero-value Hamburger is not usable; construct it with NewHamburger.
type Hamburger struct {
	nmom int
	n    int
	iodd int

	gamma []float64
	delta []float64

	alphaRV []distuv.Normal
	betaRV  []distuv.Gamma

	// Last-sampled recurrence coefficients, overwritten by every Generate
	// call. They describe a single point in coefficient space, not a history.
	alpha []float64
	beta  []float64

	prec int
}

// compile-time interface check
var _ Generator = (*Hamburger)(nil)

// NewHamburger validates all parameters and returns a ready generator for
// sequences of length nmom.
//
// Errors:
//   - ErrBadOrder        — nmom < 2.
//   - ErrInvalidGamma    — len(gamma) != n−1 or gamma[k] <= −2(n−k).
//   - ErrInvalidDelta    — len(delta) != 2n−1 or an entry <= 0.
//   - ErrNoSource        — neither WithSource nor WithSeed given.
//   - ErrSourceConflict  — both WithSource and WithSeed given.
//   - ErrBadOption       — malformed option argument.
func NewHamburger(nmom int, gamma, delta []float64, opts ...Option) (*Hamburger, error) {
	if nmom < 2 {
		return nil, ErrBadOrder
	}
	n := moments.N(nmom)
	iodd := moments.Iodd(nmom)

	if len(gamma) != n-1 {
		return nil, ErrInvalidGamma
	}
	for k := 1; k < n; k++ {
		if !(gamma[k-1] > float64(-2*(n-k))) { // NaN fails here as well
			return nil, ErrInvalidGamma
		}
	}
	if len(delta) != 2*n-1 {
		return nil, ErrInvalidDelta
	}
	for _, d := range delta {
		if !(d > 0) || math.IsInf(d, 1) {
			return nil, ErrInvalidDelta
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.src != nil && cfg.seeded {
		return nil, ErrSourceConflict
	}
	src := cfg.src
	if src == nil {
		if !cfg.seeded {
			return nil, ErrNoSource
		}
		src = rand.NewSource(cfg.seed)
	}

	h := &Hamburger{
		nmom:  nmom,
		n:     n,
		iodd:  iodd,
		gamma: append([]float64(nil), gamma...),
		delta: append([]float64(nil), delta...),
		alpha: make([]float64, n-iodd),
		beta:  make([]float64, n),
		prec:  cfg.prec,
	}

	// alpha[i] ~ Normal(0, sqrt(0.5/delta[2i])); the delta entries hold the
	// variance parametrization of Dette-Nagel, not the standard deviation.
	h.alphaRV = make([]distuv.Normal, n-iodd)
	for i := range h.alphaRV {
		h.alphaRV[i] = distuv.Normal{
			Mu:    0,
			Sigma: math.Sqrt(0.5 / delta[2*i]),
			Src:   src,
		}
	}

	// beta[j] ~ Gamma(shape gamma[j−1]+2(n−j), rate delta[2j−1]), j = 1..n−1.
	h.betaRV = make([]distuv.Gamma, n-1)
	for j := 1; j < n; j++ {
		h.betaRV[j-1] = distuv.Gamma{
			Alpha: gamma[j-1] + float64(2*(n-j)),
			Beta:  delta[2*j-1],
			Src:   src,
		}
	}

	return h, nil
}

// NumMoments reports the fixed length of generated sequences.
func (h *Hamburger) NumMoments() int { return h.nmom }

// Coeffs returns copies of the most recently sampled recurrence
// coefficients. Before the first Generate call both slices are zero.
func (h *Hamburger) Coeffs() (alpha, beta []float64) {
	return append([]float64(nil), h.alpha...), append([]float64(nil), h.beta...)
}

// FormatMoments renders mom with the precision configured at construction.
func (h *Hamburger) FormatMoments(mom []float64) string {
	return moments.Format(mom, h.prec)
}

// Generate samples one realizable Hamburger moment sequence: it draws every
// recurrence coefficient independently from its configured distribution,
// fixes beta[0] = 1, stores the pair as the generator's last-sampled state
// and transforms it into moments.
func (h *Hamburger) Generate() ([]float64, error) {
	for i := range h.alphaRV {
		h.alpha[i] = h.alphaRV[i].Rand()
	}
	h.beta[0] = 1
	for j := range h.betaRV {
		h.beta[j+1] = h.betaRV[j].Rand()
	}

	return moments.Rc2Mom(h.alpha, h.beta)
}

// Pdf evaluates the probability density of mom under the generator's model.
//
// The density lives in recurrence-coefficient space, so inv first recovers
// (alpha, beta); the moment-space value is the product of the per-coordinate
// densities divided by the Jacobian determinant of the coefficient→moment
// map, ∏ beta[k]^(2n−2k−1−iodd).
//
// Errors:
//   - ErrMomentLength — len(mom) differs from the declared length.
//   - ErrCoeffLength  — inv returned fewer coefficients than the density
//     requires (adaptive engines may reduce order).
//   - any error from inv itself, propagated unchanged.
func (h *Hamburger) Pdf(mom []float64, inv inversion.Inverter) (float64, error) {
	if len(mom) != h.nmom {
		return 0, ErrMomentLength
	}
	alpha, beta, err := inv.RecurrenceCoeffs(mom)
	if err != nil {
		return 0, err
	}
	if len(alpha) < h.n-h.iodd || len(beta) < h.n {
		return 0, ErrCoeffLength
	}

	fAlpha := 1.0
	for i := range h.alphaRV {
		fAlpha *= h.alphaRV[i].Prob(alpha[i])
	}
	fBeta := 1.0
	for j := range h.betaRV {
		fBeta *= h.betaRV[j].Prob(beta[j+1])
	}
	jacDet := 1.0
	for k := 0; k < h.n; k++ {
		jacDet *= math.Pow(beta[k], float64(2*h.n-2*k-1-h.iodd))
	}

	return fAlpha * fBeta / jacDet, nil
}
