package optics

import (
	"math"
	"math/cmplx"
)

// SolveResult is the outcome of a CoherentTMM solve: power reflectance and
// transmittance. For a passive (lossless or absorbing but non-gain) stack
// R+T <= 1; absorption A = 1-R-T is derivable but not returned.
type SolveResult struct {
	R float64
	T float64
}

// Solve runs the coherent transfer-matrix method on stack for the given
// polarization, angle of incidence theta0 (measured from the surface normal
// in the incidence medium, possibly complex), and vacuum wavelength lambda
// (sharing its length unit with the stack's layer thicknesses).
//
// Solve is a pure function: it queries each layer's DispersionModel exactly
// once, holds no state across calls other than the process-wide opacity
// warning latch, and never mutates stack. It is safe to call concurrently
// on the same stack provided no InsertLayer runs at the same time.
func Solve(stack *Stack, pol Polarization, theta0 complex128, lambda float64) (SolveResult, error) {
	if lambda <= 0 {
		return SolveResult{}, newDomainError("Solve", "lambda must be positive, got %g", lambda)
	}

	n := stack.Len()
	if n < 2 {
		return SolveResult{}, newDomainError("Solve", "stack must have at least 2 layers, got %d", n)
	}

	indices := make([]complex128, n)
	thicknesses := make([]float64, n)
	for i := 0; i < n; i++ {
		layer, err := stack.GetLayer(i)
		if err != nil {
			return SolveResult{}, err
		}
		idx, err := layer.Index.IndexAt(lambda)
		if err != nil {
			return SolveResult{}, newDomainError("Solve", "layer %d dispersion model failed: %v", i, err)
		}
		indices[i] = idx
		thicknesses[i] = layer.Thickness
	}

	nSinTheta0 := indices[0] * cmplx.Sin(theta0)
	if math.Abs(imag(nSinTheta0)) > Tolerance {
		return SolveResult{}, newDomainError("Solve", "n0*sin(theta0)=%v is not real within tolerance; lateral intensity would vary with x", nSinTheta0)
	}

	if !forwardAngle(indices[0], theta0) {
		return SolveResult{}, newDomainError("Solve", "theta0=%v is not a forward-propagating wave in layer 0 (n=%v)", theta0, indices[0])
	}

	thetas := make([]complex128, n)
	for i := 0; i < n; i++ {
		thetas[i] = cmplx.Asin(nSinTheta0 / indices[i])
	}
	if !forwardAngle(indices[0], thetas[0]) {
		thetas[0] = math.Pi - thetas[0]
	}
	if !forwardAngle(indices[n-1], thetas[n-1]) {
		thetas[n-1] = math.Pi - thetas[n-1]
	}

	for i := 0; i < n; i++ {
		warnIfGainAmbiguous(i, indices[i])
	}

	kz := make([]complex128, n)
	for i := 0; i < n; i++ {
		kz[i] = complex(2*math.Pi/lambda, 0) * indices[i] * cmplx.Cos(thetas[i])
	}

	delta := make([]complex128, n)
	for i := 1; i < n-1; i++ {
		delta[i] = clampOpacity(kz[i] * complex(thicknesses[i], 0))
	}

	rAmp := make([]complex128, n-1)
	tAmp := make([]complex128, n-1)
	for i := 0; i < n-1; i++ {
		ci := cmplx.Cos(thetas[i])
		cNext := cmplx.Cos(thetas[i+1])
		ni := indices[i]
		nNext := indices[i+1]
		switch pol {
		case S:
			denom := ni*ci + nNext*cNext
			tAmp[i] = 2 * ni * ci / denom
			rAmp[i] = (ni*ci - nNext*cNext) / denom
		case P:
			denom := nNext*ci + ni*cNext
			tAmp[i] = 2 * ni * ci / denom
			rAmp[i] = (nNext*ci - ni*cNext) / denom
		default:
			return SolveResult{}, newDomainError("Solve", "unknown polarization %v", pol)
		}
	}

	mTilde := IdentityMatrix()
	for i := 1; i <= n-2; i++ {
		phase := DiagMatrix(cmplx.Exp(-1i*delta[i]), cmplx.Exp(1i*delta[i]))
		interfaceM := Complex2x2{M00: 1, M01: rAmp[i], M10: rAmp[i], M11: 1}
		layerM := phase.Mul(interfaceM).DivScalar(tAmp[i])
		mTilde = mTilde.Mul(layerM)
	}
	boundaryM := Complex2x2{M00: 1, M01: rAmp[0], M10: rAmp[0], M11: 1}
	mTilde = boundaryM.Mul(mTilde).DivScalar(tAmp[0])

	r := mTilde.M10 / mTilde.M00
	t := 1 / mTilde.M00

	R := cmplx.Abs(r) * cmplx.Abs(r)
	tAbs2 := cmplx.Abs(t) * cmplx.Abs(t)

	var T float64
	ni, nf := indices[0], indices[n-1]
	ci, cf := cmplx.Cos(thetas[0]), cmplx.Cos(thetas[n-1])
	switch pol {
	case S:
		T = tAbs2 * real(nf*cf) / real(ni*ci)
	case P:
		T = tAbs2 * real(nf*cmplx.Conj(cf)) / real(ni*cmplx.Conj(ci))
	}

	return SolveResult{R: R, T: T}, nil
}
