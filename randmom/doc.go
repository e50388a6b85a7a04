// Package randmom samples the space of realizable Hamburger moment
// sequences — the only available ground truth for validating moment
// inversion, since realizability cannot be checked by inspecting a moment
// sequence alone.
//
// 🚀 How does it work?
//
//	Instead of sampling moments directly (whose admissible region has no
//	tractable description), the generator samples the recurrence
//	coefficients of the underlying orthogonal polynomials from closed-form
//	distributions following Dette & Nagel (2012) and Dette et al. (2016):
//
//		alpha[i] ~ Normal(0, sqrt(0.5/delta[2i]))
//		beta[j]  ~ Gamma(shape = gamma[j−1] + 2(n−j), rate = delta[2j−1])
//
//	and maps them through moments.Rc2Mom. Every sequence produced this way
//	is realizable by construction. The same parametrization yields a
//	closed-form probability density over moment space via a change of
//	variables with Jacobian ∏ beta[k]^(2n−2k−1−iodd); evaluating it requires
//	an inversion.Inverter to travel back to coefficient space.
//
// Randomness is explicit: construction requires exactly one of WithSource
// (an externally seeded rand.Source) or WithSeed (an integer seed); there is
// no global random state and a fixed seed reproduces the exact stream.
//
// A generator owns mutable state (its random source and the last-sampled
// coefficient pair) and must not be shared across goroutines without
// external synchronization.
package randmom
