package mathutil

import "math"

// Sinc computes the normalized sinc function:
//
//	sinc(x) = sin(πx) / (πx), sinc(0) = 1
//
// This is the impulse response of the ideal lowpass filter and the
// prototype for windowed-sinc FIR design.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1.0
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}
