// Package inversion: engine interface and adaptive configuration.
package inversion

import "math"

// Inverter is the moment-inversion contract shared by all engines: it maps a
// moment sequence of length nmom to the recurrence-coefficient pair
// (alpha, beta) with len(beta) = n = (nmom+1)/2 and
// len(alpha) = n − nmom mod 2. beta[0] is fixed to 1 by convention.
//
// Implementations may return shorter slices than the input nominally
// supports (AdaptivePD does, when it reduces order); callers must size
// against the returned slices, not against nmom.
type Inverter interface {
	RecurrenceCoeffs(mom []float64) (alpha, beta []float64, err error)
}

// Adaptive tolerance defaults, matching the adaptive Wheeler algorithm.
const (
	// DefaultRmin is the default weight-ratio threshold: nodes whose weight
	// falls below Rmin relative to the largest weight are spurious.
	DefaultRmin = 1e-8

	// DefaultEabs is the default node-distance threshold: node gaps below
	// Eabs relative to the largest gap indicate a near-duplicate node.
	DefaultEabs = 1e-8
)

// Options configures AdaptivePD. Both tolerances are fixed at construction
// and held for the engine's lifetime; tightening either one can only shrink
// the number of retained nodes, never grow it.
type Options struct {
	// Rmin is the weight-ratio tolerance; must be positive and finite.
	Rmin float64

	// Eabs is the node-distance tolerance; must be positive and finite.
	Eabs float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Rmin: DefaultRmin, Eabs: DefaultEabs}
}

// validate reports whether both tolerances are usable.
func (o Options) validate() error {
	for _, tol := range [2]float64{o.Rmin, o.Eabs} {
		if !(tol > 0) || math.IsInf(tol, 0) {
			return ErrBadTolerance
		}
	}

	return nil
}
