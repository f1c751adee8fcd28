package optics

import (
	"fmt"
	"math"
	"strings"
)

// Layer pairs a DispersionModel with a thickness. Thickness is +Inf for the
// semi-infinite incidence and exit media, and a finite positive value for
// every interior layer.
type Layer struct {
	Index     DispersionModel
	Thickness float64
}

// Stack is an ordered sequence of Layers modeling a planar multilayer: the
// first and last layers are always semi-infinite. Stacks are long-lived and
// mutated only through InsertLayer; they share ownership of their
// DispersionModels, so the same model may back layers in several stacks.
type Stack struct {
	layers []Layer
}

// NewStack constructs the minimal two-layer stack [top(inf), bottom(inf)].
func NewStack(top, bottom DispersionModel) *Stack {
	return &Stack{
		layers: []Layer{
			{Index: top, Thickness: math.Inf(1)},
			{Index: bottom, Thickness: math.Inf(1)},
		},
	}
}

// InsertLayer inserts a new finite-thickness layer immediately above the
// bottom of the stack (at position Len()-1), shifting the previous bottom
// down by one. The outermost two positions always remain semi-infinite.
func (s *Stack) InsertLayer(model DispersionModel, thickness float64) error {
	if !(thickness > 0) || math.IsInf(thickness, 0) {
		return newDomainError("Stack.InsertLayer", "thickness must be finite and positive, got %g", thickness)
	}
	n := len(s.layers)
	newLayers := make([]Layer, n+1)
	copy(newLayers, s.layers[:n-1])
	newLayers[n-1] = Layer{Index: model, Thickness: thickness}
	newLayers[n] = s.layers[n-1]
	s.layers = newLayers
	return nil
}

// Len returns the number of layers in the stack, always >= 2.
func (s *Stack) Len() int {
	return len(s.layers)
}

// GetLayer returns the layer at position i.
func (s *Stack) GetLayer(i int) (Layer, error) {
	if i < 0 || i >= len(s.layers) {
		return Layer{}, newDomainError("Stack.GetLayer", "index %d out of range [0, %d)", i, len(s.layers))
	}
	return s.layers[i], nil
}

// PrintLayers renders a human-readable listing of the stack evaluated at
// wavelength lambda (in nanometres). It is a diagnostic only and is not
// part of the numerical contract.
func (s *Stack) PrintLayers(lambda float64) string {
	var b strings.Builder
	for i, l := range s.layers {
		n, err := l.Index.IndexAt(lambda)
		thicknessStr := "inf"
		if !math.IsInf(l.Thickness, 0) {
			thicknessStr = fmt.Sprintf("%.2f nm", l.Thickness)
		}
		if err != nil {
			fmt.Fprintf(&b, "layer %d: n(%.1fnm)=<error: %v> thickness=%s\n", i, lambda, err, thicknessStr)
			continue
		}
		fmt.Fprintf(&b, "layer %d: n(%.1fnm)=%.4f%+.4fi thickness=%s\n", i, lambda, real(n), imag(n), thicknessStr)
	}
	return b.String()
}
