package optics

import "math"

// DispersionModel is the capability CoherentTMM depends on: given a vacuum
// wavelength it returns a complex refractive index n = n' + i*n''. The
// solver depends only on this capability, never on a concrete variant.
type DispersionModel interface {
	IndexAt(lambda float64) (complex128, error)
}

// ConstantIndex is a dispersion model with a fixed complex index at every
// wavelength.
type ConstantIndex struct {
	N complex128
}

// NewConstantIndex returns a ConstantIndex model fixed at n.
func NewConstantIndex(n complex128) *ConstantIndex {
	return &ConstantIndex{N: n}
}

// IndexAt returns the fixed index, independent of lambda.
func (c *ConstantIndex) IndexAt(lambda float64) (complex128, error) {
	if lambda <= 0 {
		return 0, newDomainError("ConstantIndex.IndexAt", "wavelength must be positive, got %g", lambda)
	}
	return c.N, nil
}

// CauchyIndex implements the Cauchy dispersion formula
// n(lambda) = A + B/lambda^2 + C/lambda^4, real-valued (lossless).
// lambda must be in the same length unit assumed by B and C.
type CauchyIndex struct {
	A, B, C float64
}

// NewCauchyIndex returns a CauchyIndex with the given coefficients.
func NewCauchyIndex(a, b, c float64) *CauchyIndex {
	return &CauchyIndex{A: a, B: b, C: c}
}

// IndexAt evaluates the Cauchy formula at lambda.
func (m *CauchyIndex) IndexAt(lambda float64) (complex128, error) {
	if lambda <= 0 {
		return 0, newDomainError("CauchyIndex.IndexAt", "wavelength must be positive, got %g", lambda)
	}
	l2 := lambda * lambda
	n := m.A + m.B/l2 + m.C/(l2*l2)
	return complex(n, 0), nil
}

// SellmeierIndex implements the three-term Sellmeier dispersion equation
// n(lambda)^2 = 1 + sum_i Bi*lambda^2/(lambda^2 - Ci), real-valued, with
// lambda conventionally in micrometres. This variant is supplemental: the
// core protocol does not require it, but the interface must allow it.
type SellmeierIndex struct {
	B1, B2, B3 float64
	C1, C2, C3 float64
}

// NewSellmeierIndex returns a SellmeierIndex with the given coefficients.
func NewSellmeierIndex(b1, b2, b3, c1, c2, c3 float64) *SellmeierIndex {
	return &SellmeierIndex{B1: b1, B2: b2, B3: b3, C1: c1, C2: c2, C3: c3}
}

// IndexAt evaluates the Sellmeier equation at lambda.
func (m *SellmeierIndex) IndexAt(lambda float64) (complex128, error) {
	if lambda <= 0 {
		return 0, newDomainError("SellmeierIndex.IndexAt", "wavelength must be positive, got %g", lambda)
	}
	l2 := lambda * lambda
	n2 := 1.0 +
		m.B1*l2/(l2-m.C1) +
		m.B2*l2/(l2-m.C2) +
		m.B3*l2/(l2-m.C3)
	if n2 < 0 || math.IsNaN(n2) {
		return 0, newDomainError("SellmeierIndex.IndexAt", "Sellmeier equation gave n^2=%g at lambda=%g", n2, lambda)
	}
	return complex(math.Sqrt(n2), 0), nil
}
