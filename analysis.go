package firdes

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

// Autocorrelation returns the autocorrelation of the coefficient
// buffer h at the given lag:
//
//	rxx(lag) = Σ h[i]·h[i-lag]
//
// The autocorrelation of a real sequence is even-symmetric, so
// negative lags fold onto positive ones. Lags at or beyond the buffer
// length have no overlap and return 0. The function is total and never
// fails.
func Autocorrelation(h []float64, lag int) float64 {
	if lag < 0 {
		lag = -lag
	}

	if lag >= len(h) {
		return 0
	}

	// Slices have equal length by construction
	return f64.DotProductUnsafe(h[lag:], h[:len(h)-lag])
}

// ISIStats holds the inter-symbol interference metrics of a
// pulse-shaping filter.
type ISIStats struct {
	// MeanSquared is the mean of the squared normalized symbol-spaced
	// autocorrelation samples.
	MeanSquared float64

	// Peak is the largest normalized symbol-spaced autocorrelation
	// sample magnitude.
	Peak float64
}

// FilterISI computes the inter-symbol interference of a root-Nyquist
// style filter h of length 2·k·m+1, where k is the oversampling rate
// (samples per symbol) and m the filter delay in symbols.
//
// The symbol-spaced autocorrelation samples rxx(i·k) for i in [1, 2m]
// are normalized by the zero-lag energy rxx(0); their mean square and
// peak magnitude measure how much energy the pulse leaks into
// neighboring symbol sampling instants.
//
// A zero-energy buffer makes the normalization undefined and returns
// [ErrZeroEnergy].
func FilterISI(h []float64, samplesPerSymbol, delaySymbols int) (ISIStats, error) {
	if samplesPerSymbol < 1 {
		return ISIStats{}, fmt.Errorf("%w: samples per symbol %d must be at least 1",
			ErrInvalidParam, samplesPerSymbol)
	}

	if delaySymbols < 1 {
		return ISIStats{}, fmt.Errorf("%w: filter delay %d symbols must be at least 1",
			ErrInvalidParam, delaySymbols)
	}

	if want := 2*samplesPerSymbol*delaySymbols + 1; len(h) != want {
		return ISIStats{}, fmt.Errorf("%w: buffer length %d does not match 2·k·m+1 = %d",
			ErrInvalidParam, len(h), want)
	}

	rxx0 := Autocorrelation(h, 0)
	if rxx0 == 0 {
		return ISIStats{}, fmt.Errorf("%w: zero-lag autocorrelation is zero", ErrZeroEnergy)
	}

	var stats ISIStats
	numLags := 2 * delaySymbols
	for i := 1; i <= numLags; i++ {
		e := math.Abs(Autocorrelation(h, i*samplesPerSymbol) / rxx0)

		stats.MeanSquared += e * e
		if e > stats.Peak {
			stats.Peak = e
		}
	}
	stats.MeanSquared /= float64(numLags)

	return stats, nil
}

// Normalize scales the coefficient buffer in place so that the sum of
// its taps (the DC gain) equals gain. A buffer whose taps sum to zero
// cannot be normalized and returns [ErrZeroEnergy].
func Normalize(h []float64, gain float64) error {
	sum := f64.Sum(h)
	if sum == 0 {
		return fmt.Errorf("%w: coefficient sum is zero", ErrZeroEnergy)
	}

	f64.Scale(h, h, gain/sum)
	return nil
}
