// Package mlmath tolerance-based verification for floating-point comparisons
package mlmath

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for float64 comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64
}

// DefaultTolerance returns default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-12,
		RelTol: 1e-9,
	}
}

// RelaxedTolerance returns relaxed tolerance for accumulated operations
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol: 1e-9,
		RelTol: 1e-6,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, cfg ToleranceConfig) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	diff := math.Abs(a - b)
	if diff <= cfg.AbsTol {
		return true
	}
	larger := math.Max(math.Abs(a), math.Abs(b))
	return diff <= larger*cfg.RelTol
}

// CompareFloat64Slices verifies two slices match within tolerance,
// returning an error naming the first mismatching index.
func CompareFloat64Slices(got, want []float64, cfg ToleranceConfig) error {
	if len(got) != len(want) {
		return fmt.Errorf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !Float64NearEqual(got[i], want[i], cfg) {
			return fmt.Errorf("mismatch at index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}
