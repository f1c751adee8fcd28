package optics

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// TabulatedIndex is a dispersion model backed by measured (lambda, n', n'')
// triples, interpolated with a piecewise-linear fit. This realizes the
// optional "Sellmeier / tabulated" variant spec section 4.1 leaves open:
// it is not required by the core protocol, but CoherentTMM must be able to
// consume it through the same DispersionModel capability as any other
// variant.
type TabulatedIndex struct {
	lambdas   []float64
	realPart  interp.PiecewiseLinear
	imagPart  interp.PiecewiseLinear
	lambdaMin float64
	lambdaMax float64
}

// NewTabulatedIndex fits a tabulated dispersion model from parallel slices
// of wavelength, real index, and imaginary index. lambdas need not be
// pre-sorted; they are sorted (carrying nReal/nImag along) before fitting.
func NewTabulatedIndex(lambdas, nReal, nImag []float64) (*TabulatedIndex, error) {
	if len(lambdas) < 2 || len(lambdas) != len(nReal) || len(lambdas) != len(nImag) {
		return nil, newDomainError("NewTabulatedIndex", "lambdas, nReal, nImag must be equal length and at least 2 points, got %d/%d/%d",
			len(lambdas), len(nReal), len(nImag))
	}

	idx := make([]int, len(lambdas))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return lambdas[idx[a]] < lambdas[idx[b]] })

	sortedLambdas := make([]float64, len(lambdas))
	sortedReal := make([]float64, len(lambdas))
	sortedImag := make([]float64, len(lambdas))
	for i, j := range idx {
		sortedLambdas[i] = lambdas[j]
		sortedReal[i] = nReal[j]
		sortedImag[i] = nImag[j]
	}

	t := &TabulatedIndex{
		lambdas:   sortedLambdas,
		lambdaMin: sortedLambdas[0],
		lambdaMax: sortedLambdas[len(sortedLambdas)-1],
	}

	if err := t.realPart.Fit(sortedLambdas, sortedReal); err != nil {
		return nil, newDomainError("NewTabulatedIndex", "fitting real part: %v", err)
	}
	if err := t.imagPart.Fit(sortedLambdas, sortedImag); err != nil {
		return nil, newDomainError("NewTabulatedIndex", "fitting imaginary part: %v", err)
	}

	return t, nil
}

// IndexAt interpolates the tabulated index at lambda. Wavelengths outside
// the tabulated range fail with a domain error rather than extrapolating,
// per spec section 4.1's "fail with a domain error" option.
func (t *TabulatedIndex) IndexAt(lambda float64) (complex128, error) {
	if lambda < t.lambdaMin || lambda > t.lambdaMax {
		return 0, newDomainError("TabulatedIndex.IndexAt", "lambda=%g outside tabulated range [%g, %g]", lambda, t.lambdaMin, t.lambdaMax)
	}
	re := t.realPart.Predict(lambda)
	im := t.imagPart.Predict(lambda)
	return complex(re, im), nil
}
