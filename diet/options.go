// Package diet: solve options with documented defaults.
// Follows the DTWOptions/FlowOptions pattern: a plain struct plus
// DefaultOptions, with DefaultX constants as the single source of truth.

package diet

import "math"

const (
	// DefaultTolerance is the numeric tolerance forwarded to the LP solver
	// and recommended to reporting callers for binding/nontrivial checks.
	DefaultTolerance = 1e-9
)

// Options configures one Solve invocation.
//
// Fields:
//   - MaxTotalQuantity — cap on Σx, the total quantity of food bought, in
//     canonical units. NaN means "no cap" (the default); when finite,
//     Formulate appends one −1-coefficient row encoding
//     Σx ≤ MaxTotalQuantity.
//   - Tolerance — simplex optimality tolerance; 0 falls back to the
//     solver's own default.
type Options struct {
	MaxTotalQuantity float64
	Tolerance        float64
}

// DefaultOptions returns the documented defaults: no total-weight cap,
// DefaultTolerance.
func DefaultOptions() Options {
	return Options{
		MaxTotalQuantity: math.NaN(),
		Tolerance:        DefaultTolerance,
	}
}

// HasWeightCap reports whether MaxTotalQuantity is an active (finite) cap.
func (o Options) HasWeightCap() bool {
	return !math.IsNaN(o.MaxTotalQuantity) && !math.IsInf(o.MaxTotalQuantity, 0)
}
