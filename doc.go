// Package firdes provides finite-impulse-response (FIR) filter design
// and analysis in pure Go.
//
// The package computes filter coefficients from closed-form design
// formulas and evaluates quality metrics of a candidate coefficient
// set. It is intended for resampling, pulse-shaping, and channel
// simulation subsystems that need a tap buffer meeting a
// bandwidth/attenuation spec, plus diagnostics (autocorrelation,
// inter-symbol interference) to validate it.
//
// # Features
//
//   - Required-length estimation from transition bandwidth and stopband
//     attenuation (Kaiser's empirical formula)
//   - Windowed-sinc lowpass design with a Kaiser window, including
//     fractional sample offset for polyphase and timing-recovery use
//   - Doppler fading filter design (Jakes spectrum with a Rice
//     line-of-sight component) for wireless channel simulation
//   - Filter autocorrelation and ISI metrics for root-Nyquist
//     pulse-shaping validation
//   - Frequency response evaluation via gonum's real FFT
//   - SIMD-accelerated inner products via github.com/tphakala/simd
//
// # Quick Start
//
// Design a lowpass prototype and inspect its frequency response:
//
//	numTaps, err := firdes.EstimateFilterLength(0.05, 80.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, err := firdes.DesignKaiserFIR(firdes.KaiserParams{
//	    NumTaps:     numTaps,
//	    Cutoff:      0.25,
//	    Attenuation: 80.0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp := firdes.ComputeFrequencyResponse(h, 512)
//
// All designers either fully populate their output buffer or return an
// error without touching it; invalid parameters surface as errors
// wrapping [ErrInvalidParam], never as process termination or silent
// clamping.
//
// # Concurrency
//
// Every operation is a pure function over caller-owned memory. There is
// no hidden global state, so independent calls may run concurrently
// without synchronization.
package firdes
