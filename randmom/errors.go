package randmom

import "errors"

// Sentinel errors of the randmom package, matched via errors.Is.
// Construction-time violations fail immediately and loudly; nothing is
// silently defaulted.
var (
	// ErrNoSource indicates that neither WithSource nor WithSeed was given
	// at construction (invalid configuration).
	ErrNoSource = errors.New("randmom: a random source or a seed is required")

	// ErrSourceConflict indicates that both WithSource and WithSeed were
	// given; exactly one must be chosen.
	ErrSourceConflict = errors.New("randmom: source and seed are mutually exclusive")

	// ErrBadOrder indicates nmom < 2; no recurrence coefficient can be
	// sampled for a sequence of fewer than two moments.
	ErrBadOrder = errors.New("randmom: at least two moments required")

	// ErrInvalidGamma indicates a gamma parameter vector of wrong length or
	// violating gamma[k] > −2(n−k).
	ErrInvalidGamma = errors.New("randmom: invalid gamma parameters")

	// ErrInvalidDelta indicates a delta parameter vector of wrong length or
	// containing a non-positive element.
	ErrInvalidDelta = errors.New("randmom: invalid delta parameters")

	// ErrBadOption indicates an option argument outside its domain
	// (nil source, non-positive precision).
	ErrBadOption = errors.New("randmom: invalid option")

	// ErrMomentLength indicates that a moment sequence passed to Pdf does
	// not match the generator's declared length.
	ErrMomentLength = errors.New("randmom: moment sequence length mismatch")

	// ErrCoeffLength indicates that the inversion engine handed back fewer
	// coefficients than the density requires (e.g. an adaptive engine that
	// reduced the order).
	ErrCoeffLength = errors.New("randmom: inversion returned reduced coefficients")
)
