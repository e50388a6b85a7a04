package moments

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits used by Format when
// callers have no explicit preference. It only affects rendering, never any
// numerical computation.
const DefaultPrecision = 12

// N returns the number of beta recurrence coefficients associated with a
// moment sequence of length nmom: n = (nmom+1)/2.
func N(nmom int) int { return (nmom + 1) / 2 }

// Iodd reports the parity of nmom: 1 for an odd number of moments, else 0.
// An odd sequence determines one alpha coefficient fewer (len(alpha) = n−iodd).
func Iodd(nmom int) int { return nmom % 2 }

// NumMoments returns the length of the moment sequence determined by a
// recurrence-coefficient pair of the given slice lengths: 2·len(beta) − iodd,
// where iodd = len(beta) − len(alpha) must be 0 or 1.
func NumMoments(lenAlpha, lenBeta int) (int, error) {
	if lenBeta == 0 {
		return 0, ErrEmptyCoeffs
	}
	iodd := lenBeta - lenAlpha
	if iodd != 0 && iodd != 1 {
		return 0, ErrCoeffLength
	}

	return 2*lenBeta - iodd, nil
}

// Format renders a moment sequence with the given number of significant
// digits, e.g. "[1, 0.5, 0.333333333333]". prec < 1 falls back to
// DefaultPrecision.
func Format(mom []float64, prec int) string {
	if prec < 1 {
		prec = DefaultPrecision
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, m := range mom {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(m, 'g', prec, 64))
	}
	b.WriteByte(']')

	return b.String()
}
