// Package window provides parametric window functions for FIR filter
// design.
package window

import (
	"math"

	"github.com/tphakala/go-firdes/internal/mathutil"
)

// Sample evaluates a Kaiser window of length n at sample index i:
//
//	w[i] = I₀(β·√(1-r²)) / I₀(β), r = 2·(i - (n-1)/2 + mu) / n
//
// The shape parameter β trades main-lobe width against sidelobe
// attenuation; β = 0 degenerates to a rectangular window. The
// fractional offset mu in [-0.5, 0.5] shifts the window center, which
// keeps fractional-delay designs windowed consistently with their
// shifted sinc prototype.
func Sample(i, n int, beta, mu float64) float64 {
	t := float64(i) - float64(n-1)/2 + mu
	r := 2 * t / float64(n)

	arg := 1 - r*r
	if arg < 0 {
		// |r| can exceed 1 by rounding at the window edge
		arg = 0
	}

	return mathutil.BesselI0(beta*math.Sqrt(arg)) / mathutil.BesselI0(beta)
}

// Kaiser generates a full Kaiser window of the given length and shape
// parameter. The window is symmetric: w[i] = w[length-1-i].
func Kaiser(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	w := make([]float64, length)
	for i := range w {
		w[i] = Sample(i, length, beta, 0)
	}
	return w
}
