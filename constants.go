package firdes

import "math"

// Parameter domain limits shared by the design entry points.
const (
	// Transition bandwidth domain for length estimation: (0, 0.5].
	maxTransitionBW = 0.5

	// Cutoff frequency domain for the Kaiser designer: [0, 1].
	minCutoff = 0.0
	maxCutoff = 1.0

	// Fractional sample offset domain: [-0.5, 0.5].
	maxFractionalOffset = 0.5
)

// Kaiser's filter length formula constants:
//
//	N ≈ (att - 8) / (14 · Δf)
//
// The formula is calibrated for attenuations of at least 8 dB; below
// that the estimate degenerates to a fixed minimal length.
const (
	lengthFormulaAttOffset = 8.0
	lengthFormulaBWFactor  = 14.0
	minEstimatedLength     = 2
)

// Doppler filter formula constants.
const (
	// DefaultDopplerWindowBeta is the Kaiser window shape parameter used
	// by the Doppler designer when DopplerParams.WindowBeta is zero. The
	// value is a fixed design choice independent of any sidelobe spec.
	DefaultDopplerWindowBeta = 4.0

	// Gain applied to both the diffuse (Bessel) and line-of-sight terms.
	dopplerComponentGain = 1.5
)

// twoPi is the angular frequency scale factor used by the Doppler
// designer.
const twoPi = 2 * math.Pi
