package optics

import (
	"math"
	"testing"
)

func TestConstantIndex_IndexAt(t *testing.T) {
	m := NewConstantIndex(complex(1.5, 0.01))

	n, err := m.IndexAt(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != complex(1.5, 0.01) {
		t.Errorf("IndexAt() = %v, want %v", n, complex(1.5, 0.01))
	}

	if _, err := m.IndexAt(0); err == nil {
		t.Error("expected domain error for non-positive lambda")
	}
}

func TestCauchyIndex_IndexAt(t *testing.T) {
	// BK7-like coefficients with lambda in micrometres.
	m := NewCauchyIndex(1.5046, 0.00420, 0)

	n, err := m.IndexAt(0.5876)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imag(n) != 0 {
		t.Errorf("Cauchy index must be real, got %v", n)
	}

	want := 1.5046 + 0.00420/(0.5876*0.5876)
	if math.Abs(real(n)-want) > 1e-12 {
		t.Errorf("IndexAt() = %v, want real part %v", n, want)
	}

	if _, err := m.IndexAt(-1); err == nil {
		t.Error("expected domain error for negative lambda")
	}
}

func TestSellmeierIndex_IndexAt(t *testing.T) {
	// Fused silica Sellmeier coefficients (lambda in micrometres).
	m := NewSellmeierIndex(0.6961663, 0.4079426, 0.8974794,
		0.0684043*0.0684043, 0.1162414*0.1162414, 9.896161*9.896161)

	n, err := m.IndexAt(0.5876)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imag(n) != 0 {
		t.Errorf("Sellmeier index must be real, got %v", n)
	}
	if real(n) < 1.4 || real(n) > 1.5 {
		t.Errorf("fused silica index at 587.6nm out of expected range: got %v", n)
	}
}

func TestSellmeierIndex_NegativeSquare(t *testing.T) {
	m := NewSellmeierIndex(-5, 0, 0, 1, 1, 1)
	if _, err := m.IndexAt(2); err == nil {
		t.Error("expected domain error when n^2 < 0")
	}
}
