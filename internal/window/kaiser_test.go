package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-firdes/internal/testutil"
)

const (
	testWindowLength11 = 11
	testWindowLength21 = 21
	testWindowLength51 = 51
	testBeta4          = 4.0
	testBeta8          = 8.653728
	testBeta10         = 10.0
)

// TestKaiser_Symmetry verifies that the window is symmetric.
func TestKaiser_Symmetry(t *testing.T) {
	tests := []struct {
		name   string
		length int
		beta   float64
	}{
		{"length_11_beta_4", testWindowLength11, testBeta4},
		{"length_21_beta_8", testWindowLength21, testBeta8},
		{"length_51_beta_10", testWindowLength51, testBeta10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Kaiser(tt.length, tt.beta)

			assert.Len(t, w, tt.length, "window length mismatch")
			testutil.AssertSymmetric(t, w, testutil.WindowTolerance)
		})
	}
}

// TestKaiser_CenterTap verifies that the center of an odd-length window
// is the unit maximum (I₀(β)/I₀(β) = 1).
func TestKaiser_CenterTap(t *testing.T) {
	w := Kaiser(testWindowLength21, testBeta8)

	testutil.AssertCenterIsMax(t, w)

	centerIdx := testWindowLength21 / 2
	assert.InDelta(t, 1.0, w[centerIdx], testutil.WindowTolerance,
		"center value should be ~1.0")
}

// TestKaiser_ZeroBeta verifies that β = 0 degenerates to a rectangular
// window.
func TestKaiser_ZeroBeta(t *testing.T) {
	w := Kaiser(testWindowLength11, 0)

	for i, v := range w {
		assert.InDelta(t, 1.0, v, testutil.WindowTolerance,
			"rectangular window sample %d should be 1.0, got %v", i, v)
	}
}

// TestKaiser_EdgeCases tests degenerate lengths.
func TestKaiser_EdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"zero_length", 0, 0},
		{"negative_length", -1, 0},
		{"length_one", 1, 1},
		{"length_two", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Kaiser(tt.length, testBeta4)
			assert.Len(t, w, tt.want, "window length mismatch")
			testutil.AssertNoNaNOrInf(t, w)
		})
	}
}

// TestSample_OffsetShift verifies that a positive fractional offset
// slides the window toward lower indices: the window evaluated at i
// with offset mu equals the unshifted window at position i + mu.
func TestSample_OffsetShift(t *testing.T) {
	const (
		n  = 21
		mu = 0.5
	)

	for i := 1; i < n-1; i++ {
		shifted := Sample(i, n, testBeta4, mu)
		left := Sample(i, n, testBeta4, 0)
		right := Sample(i+1, n, testBeta4, 0)

		// A half-sample shift must land between the two neighboring
		// unshifted samples on the window's monotone flanks.
		lo, hi := left, right
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.GreaterOrEqual(t, shifted, lo-testutil.WindowTolerance,
			"offset sample %d below neighbor range", i)
		assert.LessOrEqual(t, shifted, hi+testutil.WindowTolerance,
			"offset sample %d above neighbor range", i)
	}
}

// TestSample_EdgeFinite verifies that extreme offsets at the window
// edge stay finite (the 1-r² argument is clamped at zero).
func TestSample_EdgeFinite(t *testing.T) {
	const n = 8

	for _, mu := range []float64{-0.5, 0, 0.5} {
		for i := range n {
			v := Sample(i, n, testBeta10, mu)
			assert.False(t, math.IsNaN(v), "Sample(%d, %d, β, %v) is NaN", i, n, mu)
			assert.GreaterOrEqual(t, v, 0.0, "window sample must be non-negative")
			assert.LessOrEqual(t, v, 1.0, "window sample must not exceed the center value")
		}
	}
}

// BenchmarkKaiser benchmarks full window generation.
func BenchmarkKaiser(b *testing.B) {
	benchmarks := []struct {
		name   string
		length int
		beta   float64
	}{
		{"length_51", testWindowLength51, testBeta8},
		{"length_101", 101, testBeta8},
		{"length_201", 201, testBeta10},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for b.Loop() {
				_ = Kaiser(bm.length, bm.beta)
			}
		})
	}
}
