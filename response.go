package firdes

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Frequency response constants.
const (
	// Number of frequency points evaluated when the caller passes a
	// non-positive count.
	defaultResponsePoints = 512

	// Floor applied before dB conversion to avoid log(0).
	minMagnitude = 1e-10

	// 20·log10 for magnitude quantities.
	dbMultiplier = 20.0
)

// FilterResponse holds the sampled frequency response of a FIR filter.
type FilterResponse struct {
	// Frequencies at which the response was evaluated, normalized to
	// the sample rate, uniformly spaced over [0, 0.5).
	Frequencies []float64

	// Magnitude response at each frequency (linear scale).
	Magnitude []float64

	// Phase response at each frequency (radians).
	Phase []float64
}

// ComputeFrequencyResponse evaluates the frequency response of a FIR
// filter at numPoints uniformly spaced frequencies from DC up to (but
// excluding) Nyquist.
//
// The coefficients are zero-padded to 2·numPoints samples and
// transformed with gonum's real FFT, which evaluates the transfer
// function H(e^jω) exactly at the requested grid. Coefficient buffers
// longer than the padded length are evaluated by direct summation
// instead.
func ComputeFrequencyResponse(coeffs []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	for k := range response.Frequencies {
		response.Frequencies[k] = float64(k) / float64(2*numPoints)
	}

	if len(coeffs) > 2*numPoints {
		// Grid coarser than the filter: the padded FFT would alias
		// taps, so fall back to evaluating the DTFT sum directly.
		dtftResponse(coeffs, &response)
		return response
	}

	padded := make([]float64, 2*numPoints)
	copy(padded, coeffs)

	fft := fourier.NewFFT(len(padded))
	bins := fft.Coefficients(nil, padded)

	// bins holds numPoints+1 unique coefficients (Hermitian symmetry);
	// the Nyquist bin is dropped to keep the grid on [0, 0.5).
	for k := range numPoints {
		response.Magnitude[k] = cmplx.Abs(bins[k])
		response.Phase[k] = cmplx.Phase(bins[k])
	}

	return response
}

// dtftResponse fills in magnitude and phase by direct evaluation of
// H(e^jω) = Σ h[n]·e^(-jωn) at the response's frequency grid.
func dtftResponse(coeffs []float64, response *FilterResponse) {
	for k, freq := range response.Frequencies {
		omega := twoPi * freq

		var re, im float64
		for n, h := range coeffs {
			angle := omega * float64(n)
			re += h * math.Cos(angle)
			im -= h * math.Sin(angle)
		}

		response.Magnitude[k] = math.Hypot(re, im)
		response.Phase[k] = math.Atan2(im, re)
	}
}

// MagnitudeDB converts a linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
