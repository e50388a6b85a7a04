// Package inversion computes recurrence coefficients of orthogonal
// polynomials from a finite moment sequence — the core arithmetic of
// quadrature-based moment methods.
//
// 🚀 What is moment inversion?
//
//	Given moments m₀..m_{nmom−1} of an unknown distribution, inversion
//	recovers the coefficient slices (alpha, beta) of the three-term
//	recurrence of the distribution's orthogonal polynomials. The pair is an
//	information-preserving representation of a Gaussian quadrature rule; an
//	external eigen-based transform turns it into nodes and weights.
//
// Two engines share the Inverter interface:
//
//   - ProductDifference — the product-difference (PD) algorithm of Gordon
//     (1968). A triangular cross-difference recursion that avoids building a
//     generalized eigenproblem; for short sequences (order < 20) it is the
//     fastest known formulation, but it performs no realizability checks:
//     non-realizable input silently propagates into negative or non-finite
//     beta that the caller must detect.
//
//   - AdaptivePD — the same arithmetic wrapped in dynamic order reduction,
//     using the weight-ratio and node-distance criteria of the adaptive
//     Wheeler algorithm (Marchisio & Fox, 2013). It trades completeness for
//     stability: the result may describe fewer quadrature nodes than the
//     moments nominally support, but beta is always finite and positive.
//
// Engines keep no state between calls; every invocation allocates its own
// scratch, so a single engine value is safe for concurrent use.
//
// A small explicit registry maps engine names ("pd", "pd-adaptive") to
// constructors for callers that select an inversion strategy dynamically.
// Registration is static and map-based; there is no reflection.
package inversion
