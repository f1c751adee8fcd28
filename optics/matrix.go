package optics

// Complex2x2 is a 2x2 matrix over complex128, used for the per-interface and
// per-layer transfer matrices composed by CoherentTMM. It is a plain value
// type: arithmetic is inlined rather than routed through a general matrix
// library, since every operand here is exactly 2x2.
type Complex2x2 struct {
	M00, M01, M10, M11 complex128
}

// IdentityMatrix returns the 2x2 identity, used as the seed of the interior
// layer product when a stack has no interior layers (N=2).
func IdentityMatrix() Complex2x2 {
	return Complex2x2{M00: 1, M01: 0, M10: 0, M11: 1}
}

// DiagMatrix builds a diagonal matrix, used for the phase propagation factor
// diag(e^(-j*delta), e^(j*delta)) in CoherentTMM's per-layer matrices.
func DiagMatrix(a, d complex128) Complex2x2 {
	return Complex2x2{M00: a, M01: 0, M10: 0, M11: d}
}

// Mul returns the row-by-column product a*b.
func (a Complex2x2) Mul(b Complex2x2) Complex2x2 {
	return Complex2x2{
		M00: a.M00*b.M00 + a.M01*b.M10,
		M01: a.M00*b.M01 + a.M01*b.M11,
		M10: a.M10*b.M00 + a.M11*b.M10,
		M11: a.M10*b.M01 + a.M11*b.M11,
	}
}

// Scale returns the matrix with every component multiplied by s.
func (a Complex2x2) Scale(s complex128) Complex2x2 {
	return Complex2x2{M00: a.M00 * s, M01: a.M01 * s, M10: a.M10 * s, M11: a.M11 * s}
}

// DivScalar returns the matrix with every component divided by s.
func (a Complex2x2) DivScalar(s complex128) Complex2x2 {
	return Complex2x2{M00: a.M00 / s, M01: a.M01 / s, M10: a.M10 / s, M11: a.M11 / s}
}
