package inversion_test

import (
	"testing"

	"github.com/katalvlaran/quadmom/inversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_Defaults instantiates both built-in engines by name.
func TestRegistry_Defaults(t *testing.T) {
	inv, err := inversion.New(inversion.NamePD)
	require.NoError(t, err)
	assert.IsType(t, &inversion.ProductDifference{}, inv)

	inv, err = inversion.New(inversion.NamePDAdaptive)
	require.NoError(t, err)
	assert.IsType(t, &inversion.AdaptivePD{}, inv)

	assert.Subset(t, inversion.Names(), []string{inversion.NamePD, inversion.NamePDAdaptive})
}

// TestRegistry_Unknown rejects names that were never registered.
func TestRegistry_Unknown(t *testing.T) {
	_, err := inversion.New("wheeler")
	assert.ErrorIs(t, err, inversion.ErrUnknownInverter)
}

// TestRegistry_Register covers custom registration and its error paths.
func TestRegistry_Register(t *testing.T) {
	err := inversion.Register("pd-loose", func() (inversion.Inverter, error) {
		return inversion.NewAdaptivePD(inversion.Options{Rmin: 1e-4, Eabs: 1e-4})
	})
	require.NoError(t, err)

	inv, err := inversion.New("pd-loose")
	require.NoError(t, err)
	assert.IsType(t, &inversion.AdaptivePD{}, inv)

	assert.ErrorIs(t, inversion.Register("pd-loose", nil), inversion.ErrBadRegistration,
		"nil factory must be rejected")
	assert.ErrorIs(t, inversion.Register("", func() (inversion.Inverter, error) {
		return inversion.NewProductDifference(), nil
	}), inversion.ErrBadRegistration, "empty name must be rejected")
	assert.ErrorIs(t, inversion.Register(inversion.NamePD, func() (inversion.Inverter, error) {
		return inversion.NewProductDifference(), nil
	}), inversion.ErrBadRegistration, "duplicate name must be rejected")
}
