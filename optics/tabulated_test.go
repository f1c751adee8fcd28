package optics

import (
	"math"
	"testing"
)

func TestTabulatedIndex_Interpolation(t *testing.T) {
	lambdas := []float64{400, 500, 600}
	nReal := []float64{1.4, 1.5, 1.6}
	nImag := []float64{0.0, 0.1, 0.2}

	model, err := NewTabulatedIndex(lambdas, nReal, nImag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := model.IndexAt(450)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(real(n)-1.45) > 1e-9 {
		t.Errorf("real part = %v, want 1.45", real(n))
	}
	if math.Abs(imag(n)-0.05) > 1e-9 {
		t.Errorf("imag part = %v, want 0.05", imag(n))
	}

	// Exact table points round-trip.
	n, err = model.IndexAt(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(real(n)-1.5) > 1e-9 || math.Abs(imag(n)-0.1) > 1e-9 {
		t.Errorf("IndexAt(500) = %v, want 1.5+0.1i", n)
	}
}

func TestTabulatedIndex_UnsortedInput(t *testing.T) {
	lambdas := []float64{600, 400, 500}
	nReal := []float64{1.6, 1.4, 1.5}
	nImag := []float64{0.2, 0.0, 0.1}

	model, err := NewTabulatedIndex(lambdas, nReal, nImag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := model.IndexAt(450)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(real(n)-1.45) > 1e-9 {
		t.Errorf("real part = %v, want 1.45", real(n))
	}
}

func TestTabulatedIndex_OutOfRange(t *testing.T) {
	model, err := NewTabulatedIndex([]float64{400, 500}, []float64{1.4, 1.5}, []float64{0, 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := model.IndexAt(300); err == nil {
		t.Error("expected domain error for lambda below tabulated range")
	}
	if _, err := model.IndexAt(700); err == nil {
		t.Error("expected domain error for lambda above tabulated range")
	}
}

func TestTabulatedIndex_InvalidInput(t *testing.T) {
	if _, err := NewTabulatedIndex([]float64{400}, []float64{1.4}, []float64{0}); err == nil {
		t.Error("expected domain error for fewer than 2 points")
	}
	if _, err := NewTabulatedIndex([]float64{400, 500}, []float64{1.4}, []float64{0, 0.1}); err == nil {
		t.Error("expected domain error for mismatched slice lengths")
	}
}
