// Package quadmom is an in-memory toolkit for quadrature-based moment
// methods: it turns finite sequences of statistical moments into the
// recurrence coefficients of their orthogonal polynomials, and back.
//
// 🚀 What is quadmom?
//
//	A small, focused numerical library that brings together:
//		• Moment utilities: recurrence→moment transform, Hankel realizability
//		• Inversion: the product-difference (PD) algorithm of Gordon (1968)
//		• Adaptive inversion: PD with dynamic order reduction for stability
//		• Random moments: reproducible sampling of realizable Hamburger
//		  moment sequences with a closed-form density in moment space
//
// ✨ Why choose quadmom?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seedable random sources, no global state
//   - Reentrant – inversion engines keep no scratch between calls
//   - Extensible – plug any Inverter into the random-moment validator
//
// Everything is organized under three subpackages:
//
//	moments/   — moment-sequence sizing, Rc2Mom transform, realizability
//	inversion/ — ProductDifference & AdaptivePD engines + name registry
//	randmom/   — Hamburger random-moment generator and density
//
// Quick sketch of the data flow:
//
//	randmom.Generate ──moments──▶ inversion.RecurrenceCoeffs
//	        ▲                              │
//	        └────────(alpha, beta)─────────┘
//
// A moment sequence m₀..m_{nmom−1} maps to coefficient slices alpha and
// beta of the three-term recurrence
//
//	p_{k+1}(x) = (x − alpha_k)·p_k(x) − beta_k·p_{k−1}(x)
//
// with n = (nmom+1)/2 and beta₀ ≡ 1 by convention. See each package's
// doc.go for the full contract.
package quadmom
