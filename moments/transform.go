package moments

import (
	"gonum.org/v1/gonum/mat"
)

// Rc2Mom — recurrence coefficients to moments.
//
// Description:
//
//	Reconstructs the moment sequence reproduced by the three-term recurrence
//	with coefficients alpha (length n or n−1) and beta (length n, beta[0] is
//	the zeroth moment scale, conventionally 1). This is the exact inverse of
//	moment inversion: for any engine inv,
//	inv.RecurrenceCoeffs(Rc2Mom(alpha, beta)) recovers (alpha, beta) up to
//	floating-point error.
//
// Algorithm:
//
//	The moments of the measure underlying a three-term recurrence are the
//	top-left entries of powers of its monic Jacobi matrix J (diagonal alpha,
//	superdiagonal beta[1:], unit subdiagonal):
//
//	    m_k = beta[0] · (Jᵏ)[0,0],  k = 0..2n−1−iodd.
//
//	The powers are accumulated by repeated matrix-vector products starting
//	from e₀, which keeps the computation O(n²) per moment. Entries of Jᵏ
//	beyond index n−1 cannot influence (Jᵏ)[0,0] for k < 2n, so the truncated
//	matrix reproduces all returned moments exactly under exact arithmetic.
//
//	When len(alpha) == len(beta)−1 (odd sequence) the last diagonal entry of
//	J is undetermined by the moments and is fixed to zero; it does not affect
//	any returned moment.
//
// Errors:
//   - ErrEmptyCoeffs — beta is empty.
//   - ErrCoeffLength — len(alpha) is neither len(beta) nor len(beta)−1.
//
// Complexity: O(n² · nmom) time, O(n²) memory.
func Rc2Mom(alpha, beta []float64) ([]float64, error) {
	nmom, err := NumMoments(len(alpha), len(beta))
	if err != nil {
		return nil, err
	}
	n := len(beta)

	// Monic Jacobi matrix: J[i][i] = alpha[i], J[i][i+1] = beta[i+1], J[i+1][i] = 1.
	jac := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if i < len(alpha) {
			jac.Set(i, i, alpha[i])
		}
		if i+1 < n {
			jac.Set(i, i+1, beta[i+1])
			jac.Set(i+1, i, 1)
		}
	}

	// v holds Jᵏ·e₀; its first component is m_k / beta[0].
	v := mat.NewVecDense(n, nil)
	v.SetVec(0, 1)
	next := mat.NewVecDense(n, nil)

	mom := make([]float64, nmom)
	for k := 0; k < nmom; k++ {
		mom[k] = beta[0] * v.AtVec(0)
		if k == nmom-1 {
			break
		}
		next.MulVec(jac, v)
		v, next = next, v
	}

	return mom, nil
}
