package firdes

import (
	"fmt"
	"math"

	"github.com/tphakala/go-firdes/internal/window"
)

// DopplerParams holds the parameters for a Doppler fading filter
// design. The filter models a Rice fading wireless channel: a diffuse
// component with the classic Jakes (Bessel-shaped) Doppler spectrum
// plus a line-of-sight component weighted by the Rice K-factor.
type DopplerParams struct {
	// NumTaps is the filter length (number of coefficients).
	NumTaps int

	// DopplerFreq is the maximum Doppler frequency normalized to the
	// sample rate. Intended domain is (0, 0.5); values outside it are
	// accepted and evaluated as-is.
	DopplerFreq float64

	// RiceK is the Rice fading factor, the power ratio of the
	// line-of-sight component to the diffuse component. Zero gives pure
	// Rayleigh fading. Intended domain is K ≥ 0; values outside it are
	// accepted and evaluated as-is.
	RiceK float64

	// LoSAngle is the angle of arrival of the line-of-sight component,
	// in radians.
	LoSAngle float64

	// WindowBeta overrides the Kaiser window shape parameter applied to
	// the composite taps. Zero selects DefaultDopplerWindowBeta.
	WindowBeta float64
}

// Validate checks if the design parameters are valid.
func (p *DopplerParams) Validate() error {
	if p.NumTaps <= 0 {
		return fmt.Errorf("%w: filter length %d must be greater than zero",
			ErrInvalidParam, p.NumTaps)
	}

	return nil
}

// DesignDopplerFIR designs a Doppler fading filter and returns a newly
// allocated coefficient buffer of length p.NumTaps.
//
// Each tap combines the diffuse spectrum term 1.5·J₀(|2π·fd·t|), the
// line-of-sight term 1.5·K/(K+1)·cos(2π·fd·t·cos θ), and a fixed-shape
// Kaiser window, at t = i - (NumTaps-1)/2.
func DesignDopplerFIR(p DopplerParams) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	h := make([]float64, p.NumTaps)
	designDoppler(p, h)
	return h, nil
}

// DesignDopplerFIRInto is like [DesignDopplerFIR] but writes the
// coefficients into the caller-owned buffer h, whose length must equal
// p.NumTaps. On error the buffer is left untouched.
func DesignDopplerFIRInto(p DopplerParams, h []float64) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if len(h) != p.NumTaps {
		return fmt.Errorf("%w: buffer length %d does not match filter length %d",
			ErrInvalidParam, len(h), p.NumTaps)
	}

	designDoppler(p, h)
	return nil
}

// designDoppler populates h with the composite Doppler taps.
// Parameters are assumed validated and len(h) == p.NumTaps.
func designDoppler(p DopplerParams, h []float64) {
	beta := p.WindowBeta
	if beta == 0 {
		beta = DefaultDopplerWindowBeta
	}

	center := float64(p.NumTaps-1) / 2
	losGain := dopplerComponentGain * p.RiceK / (p.RiceK + 1)
	cosAngle := math.Cos(p.LoSAngle)

	for i := range h {
		t := float64(i) - center

		// Diffuse (Jakes) spectrum component
		diffuse := dopplerComponentGain * math.J0(math.Abs(twoPi*p.DopplerFreq*t))

		// Rice line-of-sight component
		los := losGain * math.Cos(twoPi*p.DopplerFreq*t*cosAngle)

		h[i] = (diffuse + los) * window.Sample(i, p.NumTaps, beta, 0)
	}
}
