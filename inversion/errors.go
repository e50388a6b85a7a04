package inversion

import "errors"

// Sentinel errors of the inversion package, matched via errors.Is.
// Numerical degradation inside ProductDifference is deliberately NOT an
// error: the base engine propagates it into the returned beta values
// (negative or non-finite) and leaves detection to the caller or to
// AdaptivePD.
var (
	// ErrNoMoments indicates an empty moment sequence.
	ErrNoMoments = errors.New("inversion: empty moment sequence")

	// ErrTooFewMoments indicates fewer than two moments; no recurrence is
	// determined by m₀ alone.
	ErrTooFewMoments = errors.New("inversion: at least two moments required")

	// ErrBadTolerance indicates a non-positive or non-finite adaptive
	// tolerance at engine construction.
	ErrBadTolerance = errors.New("inversion: tolerances must be positive and finite")

	// ErrUnstable is returned by AdaptivePD when even the single-node
	// fallback is degenerate (non-finite input or m₀ without meaning).
	ErrUnstable = errors.New("inversion: moment sequence unstable at every order")

	// ErrUnknownInverter is returned by New for a name that was never
	// registered.
	ErrUnknownInverter = errors.New("inversion: unknown inverter name")

	// ErrBadRegistration indicates an empty name, nil factory, or duplicate
	// name passed to Register.
	ErrBadRegistration = errors.New("inversion: invalid registration")
)
