package optics

import "gonum.org/v1/gonum/mat"

// Sweep runs Solve over the Cartesian product of thetas and lambdas,
// collecting the resulting reflectance and transmittance into two
// len(thetas) x len(lambdas) matrices, row-major by angle. This is the
// natural batch operation built on top of a single coherent solve when a
// caller wants a reflectance/transmittance spectrum rather than one point;
// it does not compute anything Solve itself does not already compute.
//
// A DomainError from any individual solve aborts the sweep immediately and
// returns nil matrices alongside the error, matching Solve's own
// no-partial-result-on-error contract. Non-fatal diagnostics logged by
// Solve do not abort the sweep.
func Sweep(stack *Stack, pol Polarization, thetas []complex128, lambdas []float64) (R, T *mat.Dense, err error) {
	if len(thetas) == 0 || len(lambdas) == 0 {
		return nil, nil, newDomainError("Sweep", "thetas and lambdas must both be non-empty")
	}

	R = mat.NewDense(len(thetas), len(lambdas), nil)
	T = mat.NewDense(len(thetas), len(lambdas), nil)

	for i, theta := range thetas {
		for j, lambda := range lambdas {
			result, solveErr := Solve(stack, pol, theta, lambda)
			if solveErr != nil {
				return nil, nil, newDomainError("Sweep", "solve failed at theta=%v lambda=%g: %v", theta, lambda, solveErr)
			}
			R.Set(i, j, result.R)
			T.Set(i, j, result.T)
		}
	}

	return R, T, nil
}
