// Command design-fir designs FIR filter coefficients from the command
// line and reports quality metrics.
//
// Usage:
//
//	design-fir -taps 37 -cutoff 0.25 -atten 60                 # lowpass
//	design-fir -transition 0.05 -cutoff 0.25 -atten 80         # estimated length
//	design-fir -type doppler -taps 51 -fd 0.1 -rice-k 2        # fading filter
//	design-fir -taps 25 -cutoff 0.25 -atten 60 -isi-k 4 -isi-m 3
//	design-fir -taps 101 -cutoff 0.25 -atten 80 -wav taps.wav  # impulse response export
package main

import (
	"flag"
	"fmt"
	"log"

	firdes "github.com/tphakala/go-firdes"
	"github.com/tphakala/simd/f64"
)

const (
	// CLI defaults
	defaultFilterType  = "lowpass"
	defaultCutoff      = 0.25
	defaultAttenuation = 60.0
	defaultDopplerFreq = 0.1
	defaultNumPoints   = 512

	// Sample rate stamped on exported WAV files; the coefficients are
	// rate-agnostic, this only sets the time axis for inspection tools.
	defaultWAVRate = 48000

	// Summary display limits
	maxTapsToPrint = 16
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		filterType = flag.String("type", defaultFilterType, "Filter type: lowpass, doppler")
		numTaps    = flag.Int("taps", 0, "Filter length (0 = estimate from -transition)")
		transition = flag.Float64("transition", 0, "Transition bandwidth for length estimation")
		cutoff     = flag.Float64("cutoff", defaultCutoff, "Normalized cutoff frequency [0, 1]")
		atten      = flag.Float64("atten", defaultAttenuation, "Sidelobe suppression in dB")
		offset     = flag.Float64("offset", 0, "Fractional sample offset [-0.5, 0.5]")

		dopplerFreq = flag.Float64("fd", defaultDopplerFreq, "Normalized Doppler frequency")
		riceK       = flag.Float64("rice-k", 0, "Rice fading factor (K >= 0)")
		losAngle    = flag.Float64("los-angle", 0, "Line-of-sight angle of arrival (radians)")

		isiK = flag.Int("isi-k", 0, "ISI check: samples per symbol (0 = skip)")
		isiM = flag.Int("isi-m", 0, "ISI check: filter delay in symbols")

		normalize = flag.Bool("normalize", false, "Scale taps for unity DC gain")
		numPoints = flag.Int("points", defaultNumPoints, "Frequency response points")
		printTaps = flag.Bool("print-taps", false, "Print every coefficient")
		wavPath   = flag.String("wav", "", "Write the impulse response to a WAV file")
		wavRate   = flag.Int("wav-rate", defaultWAVRate, "Sample rate stamped on the WAV file")
	)
	flag.Parse()

	taps := *numTaps
	if taps == 0 {
		if *transition == 0 {
			return fmt.Errorf("either -taps or -transition is required")
		}
		estimated, err := firdes.EstimateFilterLength(*transition, *atten)
		if err != nil {
			return err
		}
		taps = estimated
		fmt.Printf("Estimated filter length: %d taps\n", taps)
	}

	h, err := design(*filterType, taps, designSpec{
		cutoff:      *cutoff,
		atten:       *atten,
		offset:      *offset,
		dopplerFreq: *dopplerFreq,
		riceK:       *riceK,
		losAngle:    *losAngle,
	})
	if err != nil {
		return err
	}

	if *normalize {
		if err := firdes.Normalize(h, 1.0); err != nil {
			return err
		}
	}

	printSummary(h, *filterType, *printTaps)
	if *filterType == "doppler" {
		fmt.Printf("  Window:           Kaiser β=%.1f (≈%.1f dB suppression)\n",
			firdes.DefaultDopplerWindowBeta,
			firdes.KaiserAttenuation(firdes.DefaultDopplerWindowBeta))
	}
	printResponse(h, *numPoints)

	if *isiK > 0 || *isiM > 0 {
		stats, err := firdes.FilterISI(h, *isiK, *isiM)
		if err != nil {
			return err
		}
		fmt.Printf("\nISI at %d samples/symbol, %d symbol delay:\n", *isiK, *isiM)
		fmt.Printf("  Mean-squared: %.6e\n", stats.MeanSquared)
		fmt.Printf("  Peak:         %.6e (%.2f dB)\n", stats.Peak, firdes.MagnitudeDB(stats.Peak))
	}

	if *wavPath != "" {
		if err := writeWAV(*wavPath, h, *wavRate); err != nil {
			return fmt.Errorf("failed to write %s: %w", *wavPath, err)
		}
		fmt.Printf("\nWrote impulse response to %s (%d Hz)\n", *wavPath, *wavRate)
	}

	return nil
}

// designSpec bundles the per-type design knobs.
type designSpec struct {
	cutoff      float64
	atten       float64
	offset      float64
	dopplerFreq float64
	riceK       float64
	losAngle    float64
}

func design(filterType string, numTaps int, spec designSpec) ([]float64, error) {
	switch filterType {
	case "lowpass":
		return firdes.DesignKaiserFIR(firdes.KaiserParams{
			NumTaps:     numTaps,
			Cutoff:      spec.cutoff,
			Attenuation: spec.atten,
			Offset:      spec.offset,
		})

	case "doppler":
		return firdes.DesignDopplerFIR(firdes.DopplerParams{
			NumTaps:     numTaps,
			DopplerFreq: spec.dopplerFreq,
			RiceK:       spec.riceK,
			LoSAngle:    spec.losAngle,
		})

	default:
		return nil, fmt.Errorf("unknown filter type %q (want lowpass or doppler)", filterType)
	}
}

func printSummary(h []float64, filterType string, printAll bool) {
	fmt.Printf("Designed %s filter: %d taps\n", filterType, len(h))
	fmt.Printf("  DC gain:          %.6f\n", f64.Sum(h))
	fmt.Printf("  Zero-lag energy:  %.6f\n", firdes.Autocorrelation(h, 0))

	limit := len(h)
	if !printAll && limit > maxTapsToPrint {
		limit = maxTapsToPrint
	}
	for i := range limit {
		fmt.Printf("  h[%3d] = %+.8f\n", i, h[i])
	}
	if limit < len(h) {
		fmt.Printf("  ... (%d more taps, use -print-taps)\n", len(h)-limit)
	}
}

func printResponse(h []float64, numPoints int) {
	resp := firdes.ComputeFrequencyResponse(h, numPoints)

	// Worst stopband-style summary: the smallest magnitude tells how
	// deep the response reaches, the largest where the peak sits.
	minDB, maxDB := firdes.MagnitudeDB(resp.Magnitude[0]), firdes.MagnitudeDB(resp.Magnitude[0])
	var minFreq, maxFreq float64
	for k, m := range resp.Magnitude {
		db := firdes.MagnitudeDB(m)
		if db < minDB {
			minDB, minFreq = db, resp.Frequencies[k]
		}
		if db > maxDB {
			maxDB, maxFreq = db, resp.Frequencies[k]
		}
	}

	fmt.Printf("\nFrequency response (%d points):\n", numPoints)
	fmt.Printf("  DC:   %8.3f dB\n", firdes.MagnitudeDB(resp.Magnitude[0]))
	fmt.Printf("  Peak: %8.3f dB at f=%.4f\n", maxDB, maxFreq)
	fmt.Printf("  Min:  %8.3f dB at f=%.4f\n", minDB, minFreq)
}
