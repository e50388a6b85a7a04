package randmom_test

import (
	"fmt"

	"github.com/katalvlaran/quadmom/inversion"
	"github.com/katalvlaran/quadmom/randmom"
)

// ExampleHamburger shows the validation loop this package exists for:
// generate a realizable moment sequence, invert it, and evaluate the
// closed-form density at the generated point.
func ExampleHamburger() {
	gamma := []float64{1, 1}          // n−1 shape shifts
	delta := []float64{4, 4, 4, 4, 4} // 2n−1 scale parameters

	g, err := randmom.NewHamburger(6, gamma, delta, randmom.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mom, err := g.Generate()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	density, err := g.Pdf(mom, inversion.NewProductDifference())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("nmom = %d\n", g.NumMoments())
	fmt.Printf("m0   = %.4f\n", mom[0])
	fmt.Printf("positive density: %v\n", density > 0)
	// Output:
	// nmom = 6
	// m0   = 1.0000
	// positive density: true
}
