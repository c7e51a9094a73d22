package firdes

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-firdes/internal/mathutil"
)

// Common errors returned by the design and analysis functions.
var (
	// ErrInvalidParam indicates a design or analysis parameter outside
	// its documented domain.
	ErrInvalidParam = errors.New("invalid filter design parameter")

	// ErrZeroEnergy indicates a degenerate all-zero coefficient buffer
	// for which a normalized metric is undefined.
	ErrZeroEnergy = errors.New("filter has zero energy")
)

// EstimateFilterLength estimates the FIR filter length required to
// achieve the given stopband attenuation across the given transition
// bandwidth, using Kaiser's empirical formula:
//
//	N ≈ (attenuation - 8) / (14 · transitionBW)
//
// rounded half away from zero. Attenuations below 8 dB are outside the
// formula's calibrated range and yield a fixed minimal length of 2.
//
// transitionBW is a normalized frequency in (0, 0.5]; attenuation is
// the desired sidelobe suppression in dB and must be positive.
func EstimateFilterLength(transitionBW, attenuation float64) (int, error) {
	if transitionBW <= 0 || transitionBW > maxTransitionBW {
		return 0, fmt.Errorf("%w: transition bandwidth %v out of range (0, %v]",
			ErrInvalidParam, transitionBW, maxTransitionBW)
	}

	if attenuation <= 0 {
		return 0, fmt.Errorf("%w: attenuation %v dB must be positive",
			ErrInvalidParam, attenuation)
	}

	if attenuation < lengthFormulaAttOffset {
		return minEstimatedLength, nil
	}

	numTaps := (attenuation - lengthFormulaAttOffset) / (lengthFormulaBWFactor * transitionBW)
	return int(math.Round(numTaps)), nil
}

// KaiserBeta returns the Kaiser window shape parameter β for the given
// sidelobe suppression level in dB. The sign of the argument is
// ignored; specs weaker than 21 dB yield β = 0 (rectangular window).
//
// The mapping is Kaiser's piecewise empirical formula; see
// P.P. Vaidyanathan, "Multirate Systems and Filter Banks".
func KaiserBeta(attenuation float64) float64 {
	return mathutil.KaiserBeta(attenuation)
}

// KaiserAttenuation is the approximate inverse of KaiserBeta: it
// estimates the sidelobe suppression in dB that a Kaiser window with
// the given β achieves. Useful for reporting the effective suppression
// of a window chosen by shape rather than by spec, such as
// DefaultDopplerWindowBeta.
func KaiserAttenuation(beta float64) float64 {
	return mathutil.KaiserAttenuation(beta)
}
