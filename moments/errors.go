package moments

import "errors"

// Sentinel errors of the moments package. All public functions return these
// sentinels (optionally wrapped with context via fmt.Errorf("...: %w", err));
// callers match them with errors.Is.
var (
	// ErrEmptyMoments indicates an empty moment sequence where at least m₀
	// is required.
	ErrEmptyMoments = errors.New("moments: empty moment sequence")

	// ErrEmptyCoeffs indicates that the beta coefficient slice is empty;
	// every recurrence carries at least beta[0] ≡ 1.
	ErrEmptyCoeffs = errors.New("moments: empty recurrence coefficients")

	// ErrCoeffLength indicates that len(alpha) is neither len(beta) nor
	// len(beta)−1, so the pair does not describe a valid recurrence.
	ErrCoeffLength = errors.New("moments: alpha/beta length mismatch")
)
