// Package optics implements the coherent transfer-matrix method for planar
// multilayer thin-film stacks: dispersion models, the stack data model, and
// the reflectance/transmittance solver built on top of them.
package optics

import (
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"sync"
)

// Epsilon is the machine epsilon used to size the solver's tolerance bands.
const Epsilon = 2.220446049250313e-16

// Tolerance is the 100*epsilon band used by the forward-angle diagnostic and
// by Solve's check that n0*sin(theta0) is real.
const Tolerance = 100 * Epsilon

// OpacityClampThreshold is the Im(delta) value above which a layer's phase
// thickness is clamped to keep e^(Im delta) from overflowing.
const OpacityClampThreshold = 35.0

// DomainError reports an invalid solve input or an unrecoverable evaluation
// failure. Callers receive no result alongside a DomainError.
type DomainError struct {
	Op      string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("optics: %s: %s", e.Op, e.Message)
}

func newDomainError(op, format string, args ...interface{}) *DomainError {
	return &DomainError{Op: op, Message: fmt.Sprintf(format, args...)}
}

var opacityWarnOnce sync.Once

// warnOpacityClamp emits the opacity-clamp notice at most once per process.
// It is a diagnostic latch only; it never influences a returned value.
func warnOpacityClamp() {
	opacityWarnOnce.Do(func() {
		log.Println("optics: opacity clamp engaged on a layer phase thickness (Im(delta) > 35); further occurrences are suppressed")
	})
}

// isGainAmbiguous reports whether n describes a gain medium (n'*n'' < 0),
// for which the forward-propagating branch is not reliably determined.
func isGainAmbiguous(n complex128) bool {
	return real(n)*imag(n) < 0
}

// warnIfGainAmbiguous logs a warning when layer i is a gain medium. The
// solver continues regardless; the result is simply not guaranteed
// meaningful for that layer.
func warnIfGainAmbiguous(i int, n complex128) {
	if isGainAmbiguous(n) {
		log.Printf("optics: layer %d is a gain medium (n=%v); forward-wave direction is ambiguous", i, n)
	}
}

// forwardAngle implements the forward-angle diagnostic of spec section 4.4.2:
// the wave in medium n at angle theta is forward-propagating iff its decay
// branch (when evanescent) or its Poynting flux (when propagating) points
// from the incidence side toward the exit side. Sign inconsistencies beyond
// tolerance are logged as warnings; they never change the returned branch.
// Gain-medium ambiguity is not checked here (see warnIfGainAmbiguous).
func forwardAngle(n, theta complex128) bool {
	ncostheta := n * cmplx.Cos(theta)

	var forward bool
	if math.Abs(imag(ncostheta)) > Tolerance {
		forward = imag(ncostheta) > 0
	} else {
		forward = real(ncostheta) > 0
	}

	checkForwardConsistency(n, theta, ncostheta, forward)
	return forward
}

func checkForwardConsistency(n, theta, ncostheta complex128, forward bool) {
	nConjCos := n * cmplx.Cos(cmplx.Conj(theta))

	if forward {
		if imag(ncostheta) < -Tolerance || real(ncostheta) < -Tolerance || real(nConjCos) < -Tolerance {
			log.Printf("optics: forward-angle branch inconsistent for n=%v theta=%v", n, theta)
		}
	} else {
		if imag(ncostheta) > Tolerance || real(ncostheta) > Tolerance || real(nConjCos) > Tolerance {
			log.Printf("optics: forward-angle branch inconsistent for n=%v theta=%v", n, theta)
		}
	}
}

// clampOpacity applies the opacity clamp to a layer phase thickness: once
// Im(delta) exceeds OpacityClampThreshold, single-pass transmission through
// the layer is already below 1e-30 and further absorption is not physically
// observable, so the imaginary part is capped to keep the propagation
// matrix's exponentials finite.
func clampOpacity(delta complex128) complex128 {
	if imag(delta) > OpacityClampThreshold {
		warnOpacityClamp()
		return complex(real(delta), OpacityClampThreshold)
	}
	return delta
}
