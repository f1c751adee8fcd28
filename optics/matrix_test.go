package optics

import "testing"

func TestIdentityMatrix(t *testing.T) {
	id := IdentityMatrix()
	if id.M00 != 1 || id.M01 != 0 || id.M10 != 0 || id.M11 != 1 {
		t.Errorf("expected identity matrix, got %+v", id)
	}
}

func TestComplex2x2_Mul(t *testing.T) {
	a := Complex2x2{M00: 1, M01: 2, M10: 3, M11: 4}
	b := Complex2x2{M00: 5, M01: 6, M10: 7, M11: 8}

	got := a.Mul(b)
	want := Complex2x2{M00: 19, M01: 22, M10: 43, M11: 50}

	if got != want {
		t.Errorf("Mul() = %+v, want %+v", got, want)
	}
}

func TestComplex2x2_MulIdentity(t *testing.T) {
	a := Complex2x2{M00: complex(1, 2), M01: complex(3, -1), M10: complex(0, 1), M11: complex(2, 2)}
	id := IdentityMatrix()

	if got := a.Mul(id); got != a {
		t.Errorf("Mul(identity) = %+v, want %+v", got, a)
	}
	if got := id.Mul(a); got != a {
		t.Errorf("identity.Mul(a) = %+v, want %+v", got, a)
	}
}

func TestComplex2x2_ScaleAndDivScalar(t *testing.T) {
	a := Complex2x2{M00: 1, M01: 2, M10: 3, M11: 4}
	s := complex(2, 0)

	scaled := a.Scale(s)
	want := Complex2x2{M00: 2, M01: 4, M10: 6, M11: 8}
	if scaled != want {
		t.Errorf("Scale() = %+v, want %+v", scaled, want)
	}

	if got := scaled.DivScalar(s); got != a {
		t.Errorf("DivScalar() round trip = %+v, want %+v", got, a)
	}
}

func TestDiagMatrix(t *testing.T) {
	a, d := complex(1, 1), complex(2, -1)
	m := DiagMatrix(a, d)
	if m.M00 != a || m.M11 != d || m.M01 != 0 || m.M10 != 0 {
		t.Errorf("DiagMatrix(%v, %v) = %+v", a, d, m)
	}
}
