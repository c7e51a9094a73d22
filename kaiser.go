package firdes

import (
	"fmt"

	"github.com/tphakala/go-firdes/internal/mathutil"
	"github.com/tphakala/go-firdes/internal/window"
)

// KaiserParams holds the parameters for a Kaiser-windowed lowpass FIR
// design.
type KaiserParams struct {
	// NumTaps is the filter length (number of coefficients).
	// Use an odd value for a symmetric linear-phase filter.
	NumTaps int

	// Cutoff is the normalized cutoff frequency in [0, 1].
	Cutoff float64

	// Attenuation is the desired sidelobe suppression in dB. It
	// determines the window's β parameter via Kaiser's formula; any
	// real value is accepted and only the magnitude matters.
	Attenuation float64

	// Offset is a fractional sample offset in [-0.5, 0.5], applied to
	// both the sinc prototype and the window. Non-zero offsets produce
	// fractional-delay filters for polyphase and timing-recovery use.
	Offset float64
}

// Validate checks if the design parameters are valid.
func (p *KaiserParams) Validate() error {
	if p.NumTaps <= 0 {
		return fmt.Errorf("%w: filter length %d must be greater than zero",
			ErrInvalidParam, p.NumTaps)
	}

	if p.Cutoff < minCutoff || p.Cutoff > maxCutoff {
		return fmt.Errorf("%w: cutoff frequency %v out of range [%v, %v]",
			ErrInvalidParam, p.Cutoff, minCutoff, maxCutoff)
	}

	if p.Offset < -maxFractionalOffset || p.Offset > maxFractionalOffset {
		return fmt.Errorf("%w: fractional offset %v out of range [%v, %v]",
			ErrInvalidParam, p.Offset, -maxFractionalOffset, maxFractionalOffset)
	}

	return nil
}

// DesignKaiserFIR designs a windowed-sinc lowpass FIR filter and
// returns a newly allocated coefficient buffer of length p.NumTaps.
//
// Each tap is the product of the ideal lowpass prototype
// sinc(Cutoff·t) at t = i - (NumTaps-1)/2 + Offset and a Kaiser window
// with β derived from the attenuation spec. The result is not
// normalized; use [Normalize] for unity DC gain.
func DesignKaiserFIR(p KaiserParams) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	h := make([]float64, p.NumTaps)
	designKaiser(p, h)
	return h, nil
}

// DesignKaiserFIRInto is like [DesignKaiserFIR] but writes the
// coefficients into the caller-owned buffer h, whose length must equal
// p.NumTaps. On error the buffer is left untouched.
func DesignKaiserFIRInto(p KaiserParams, h []float64) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if len(h) != p.NumTaps {
		return fmt.Errorf("%w: buffer length %d does not match filter length %d",
			ErrInvalidParam, len(h), p.NumTaps)
	}

	designKaiser(p, h)
	return nil
}

// designKaiser populates h with the windowed-sinc taps. Parameters are
// assumed validated and len(h) == p.NumTaps.
func designKaiser(p KaiserParams, h []float64) {
	beta := mathutil.KaiserBeta(p.Attenuation)
	center := float64(p.NumTaps-1) / 2

	for i := range h {
		t := float64(i) - center + p.Offset
		h[i] = mathutil.Sinc(p.Cutoff*t) * window.Sample(i, p.NumTaps, beta, p.Offset)
	}
}
