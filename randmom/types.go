// Package randmom: generator contract and functional options.
package randmom

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/quadmom/inversion"
	"github.com/katalvlaran/quadmom/moments"
)

// Generator is the capability set of a random-moment engine: reproducible
// sampling of moment sequences of a fixed declared length, and evaluation
// of the associated probability density at an arbitrary point in moment
// space.
type Generator interface {
	// Generate produces one random moment sequence of length NumMoments and
	// overwrites the generator's last-sampled coefficient state.
	Generate() ([]float64, error)

	// Pdf evaluates the generator's density at mom, using inv to recover the
	// recurrence coefficients the density is defined over.
	Pdf(mom []float64, inv inversion.Inverter) (float64, error)

	// NumMoments reports the fixed length of generated sequences.
	NumMoments() int
}

// config collects option state before validation in NewHamburger.
type config struct {
	src    rand.Source
	seed   uint64
	seeded bool
	prec   int
}

// Option configures generator construction. Options are applied in order;
// each may fail, and the first failure aborts construction.
type Option func(*config) error

// WithSource supplies an externally constructed random source. Mutually
// exclusive with WithSeed.
func WithSource(src rand.Source) Option {
	return func(c *config) error {
		if src == nil {
			return ErrBadOption
		}
		c.src = src

		return nil
	}
}

// WithSeed constructs an internal random source from an integer seed.
// Mutually exclusive with WithSource.
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.seed = seed
		c.seeded = true

		return nil
	}
}

// WithPrecision sets the number of significant digits used when formatting
// generated moments. It never affects the sampling distribution. digits
// must be positive; the default is moments.DefaultPrecision.
func WithPrecision(digits int) Option {
	return func(c *config) error {
		if digits < 1 {
			return ErrBadOption
		}
		c.prec = digits

		return nil
	}
}

// defaultConfig returns the pre-option state: no source, default precision.
func defaultConfig() config {
	return config{prec: moments.DefaultPrecision}
}
