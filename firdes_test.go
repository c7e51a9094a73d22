package firdes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// Shared test parameters
	testAttenuation60 = 60.0
	testAttenuation80 = 80.0
	testCutoff0_25    = 0.25
	testTolerance     = 1e-10

	// Windowed-sinc values carry the Bessel approximation error
	testTapTolerance = 1e-5
)

// TestEstimateFilterLength tests the length formula against exact values.
func TestEstimateFilterLength(t *testing.T) {
	tests := []struct {
		name         string
		transitionBW float64
		attenuation  float64
		want         int
	}{
		{"60dB_bw0.1", 0.1, 60.0, 37},       // round(52/1.4)
		{"60dB_bw0.5", 0.5, 60.0, 7},        // round(52/7)
		{"80dB_bw0.05", 0.05, 80.0, 103},    // round(72/0.7)
		{"half_rounds_up", 0.25, 44.75, 11}, // exactly 10.5, away from zero
		{"weak_spec", 0.1, 5.0, 2},          // below formula range
		{"boundary_8dB", 0.1, 8.0, 0},       // round(0/1.4)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateFilterLength(tt.transitionBW, tt.attenuation)
			require.NoError(t, err, "EstimateFilterLength failed")
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEstimateFilterLength_InvalidInput tests domain validation.
func TestEstimateFilterLength_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		transitionBW float64
		attenuation  float64
	}{
		{"zero_bandwidth", 0.0, 60.0},
		{"negative_bandwidth", -0.1, 60.0},
		{"bandwidth_above_half", 0.6, 60.0},
		{"zero_attenuation", 0.1, 0.0},
		{"negative_attenuation", 0.1, -20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateFilterLength(tt.transitionBW, tt.attenuation)
			require.Error(t, err, "expected domain violation")
			assert.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

// TestKaiserBeta_Concrete checks the published 60 dB value.
func TestKaiserBeta_Concrete(t *testing.T) {
	assert.InDelta(t, 5.65326, KaiserBeta(testAttenuation60), 1e-5)
	assert.InDelta(t, 0.0, KaiserBeta(21.0), testTolerance)
	assert.Equal(t, KaiserBeta(testAttenuation60), KaiserBeta(-testAttenuation60),
		"beta should depend on magnitude only")
}

// TestKaiserAttenuation_RoundTrip checks that the inverse mapping
// recovers the attenuation a given beta was derived from.
func TestKaiserAttenuation_RoundTrip(t *testing.T) {
	for _, att := range []float64{40.0, testAttenuation60, testAttenuation80} {
		recovered := KaiserAttenuation(KaiserBeta(att))
		assert.InDelta(t, att, recovered, att*0.05,
			"round trip through beta should stay within 5%%")
	}

	// The fixed Doppler window shape sits in the mid-40 dB range.
	assert.InDelta(t, 45.0, KaiserAttenuation(DefaultDopplerWindowBeta), 1.0)
}

// BenchmarkEstimateFilterLength benchmarks the length estimator.
func BenchmarkEstimateFilterLength(b *testing.B) {
	for b.Loop() {
		_, _ = EstimateFilterLength(0.05, testAttenuation80)
	}
}
