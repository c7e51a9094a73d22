// Package testutil provides shared assertion helpers for filter design
// tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for coefficient comparisons.
const (
	DefaultTolerance = 1e-10
	WindowTolerance  = 1e-10
)

// AssertSymmetric verifies that a coefficient buffer is symmetric
// about its midpoint (h[i] == h[n-1-i]).
func AssertSymmetric(t *testing.T, h []float64, tolerance float64) bool {
	t.Helper()
	n := len(h)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, h[i], h[j], tolerance,
			"buffer not symmetric at i=%d: h[%d]=%f != h[%d]=%f", i, i, h[i], j, h[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no coefficient is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, h []float64) bool {
	t.Helper()
	for i, v := range h {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "h[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "h[%d] is Inf", i)
		}
	}
	return true
}

// AssertCenterIsMax verifies that the center coefficient is the
// maximum value in the buffer.
func AssertCenterIsMax(t *testing.T, h []float64) bool {
	t.Helper()
	if len(h) == 0 {
		return assert.Fail(t, "empty buffer")
	}
	centerIdx := len(h) / 2
	centerValue := h[centerIdx]
	for i, v := range h {
		if v > centerValue {
			return assert.Fail(t, "center is not max",
				"h[%d]=%f > center h[%d]=%f", i, v, centerIdx, centerValue)
		}
	}
	return true
}

// AssertDCGain verifies that the sum of coefficients equals the
// expected DC gain.
func AssertDCGain(t *testing.T, h []float64, expectedGain, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, c := range h {
		sum += c
	}
	return assert.InDelta(t, expectedGain, sum, tolerance,
		"DC gain = %f, want %f", sum, expectedGain)
}

// AssertRelativeError verifies that the relative error between actual
// and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [minVal, maxVal].
func AssertInRange(t *testing.T, value, minVal, maxVal float64) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
