// Package sweep: price-scale sweeps over the diet core.

package sweep

import (
	"errors"

	"github.com/cefayefang/mincostdiet/diet"
	"github.com/cefayefang/mincostdiet/tabular"
)

// ErrNoScales is returned when the scale slice is empty.
var ErrNoScales = errors.New("sweep: no scale factors supplied")

// ErrNilInput is returned when the table or price vector is nil.
var ErrNilInput = errors.New("sweep: nil input")

// Point is one solved position on a sensitivity curve.
type Point struct {
	// Scale is the factor applied to the swept price(s).
	Scale float64

	// Result is the full core outcome at that scale, including failures.
	Result diet.Result
}

// Curve is an ordered series of Points for one swept food.
type Curve struct {
	// Food is the swept food identifier; "" means every price was scaled
	// uniformly.
	Food string

	// Points is parallel to the requested scales, in order.
	Points []Point
}

// PriceScale solves the diet once per scale factor, each time with the
// named food's price multiplied by that factor (food == "" scales every
// price). The inputs are never mutated; each iteration builds a fresh
// perturbed price vector and invokes the core independently.
//
// Errors: ErrNilInput, ErrNoScales, diet.ErrUnknownFood, diet.ErrBadScale,
// plus any malformed-input error from diet.Solve. Infeasible solves are NOT
// errors — they appear as Points with Result.Success == false.
//
// Complexity: one full core invocation per scale.
func PriceScale(table *tabular.Table, pv *diet.PriceVector, minIntake, maxIntake *tabular.Series, opts diet.Options, food string, scales []float64) (Curve, error) {
	if table == nil || pv == nil {
		return Curve{}, ErrNilInput
	}
	if len(scales) == 0 {
		return Curve{}, ErrNoScales
	}

	curve := Curve{Food: food, Points: make([]Point, 0, len(scales))}
	for _, scale := range scales {
		var (
			perturbed *diet.PriceVector
			err       error
		)
		if food == "" {
			perturbed, err = pv.ScaledAll(scale)
		} else {
			perturbed, err = pv.Scaled(food, scale)
		}
		if err != nil {
			return Curve{}, err
		}

		res, err := diet.Solve(table, perturbed, minIntake, maxIntake, opts)
		if err != nil {
			return Curve{}, err
		}
		curve.Points = append(curve.Points, Point{Scale: scale, Result: res})
	}
	return curve, nil
}

// CostCurve extracts parallel (scales, costs) slices from a curve for
// plotting callers. Infeasible points keep their position with a NaN cost.
func CostCurve(c Curve) (scales, costs []float64) {
	scales = make([]float64, len(c.Points))
	costs = make([]float64, len(c.Points))
	for i, p := range c.Points {
		scales[i] = p.Scale
		costs[i] = p.Result.Cost // NaN when the point was infeasible
	}
	return scales, costs
}
