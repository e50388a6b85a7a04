// Package moments provides the shared vocabulary of the quadmom module:
// moment-sequence sizing conventions, the recurrence-to-moment transform
// Rc2Mom, and a Hankel-based realizability check.
//
// Conventions (used consistently across quadmom):
//
//   - A moment sequence is an ordered []float64 of length nmom; the slice
//     index is the moment order, and m₀ is conventionally 1.
//   - n = (nmom+1)/2 and iodd = nmom mod 2. The recurrence coefficients of
//     the associated orthogonal polynomials are alpha (length n−iodd) and
//     beta (length n, with beta[0] ≡ 1 kept only for index alignment).
//   - A sequence is realizable when it is the moment sequence of some
//     non-negative measure; for the Hamburger (whole real line) problem this
//     is equivalent to positive semi-definiteness of the Hankel matrices.
//
// Rc2Mom is the inverse direction of moment inversion: it reconstructs the
// moments reproduced by a three-term recurrence. Together with any
// inversion.Inverter it forms the round trip used to validate inversion
// correctness, since realizability cannot be decided by inspecting the
// moments of an arbitrary input alone.
package moments
