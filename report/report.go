// Package report: outcome, binding and spend computations.

package report

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cefayefang/mincostdiet/diet"
	"github.com/cefayefang/mincostdiet/tabular"
)

// ErrNilInput is returned when a required system, series or price vector is
// missing or empty.
var ErrNilInput = errors.New("report: nil input")

// ErrShapeMismatch is returned when the quantity vector's food axis does
// not cover the system's food axis.
var ErrShapeMismatch = errors.New("report: quantities do not match system foods")

// OutcomeRow pairs one constraint row's realized outcome with its bound,
// both in natural sign (the stored negation of maximum/total-weight rows is
// undone for presentation).
type OutcomeRow struct {
	// Label is the nutrient identifier, or diet.TotalWeightLabel.
	Label string

	// Kind is the row's dietary meaning.
	Kind diet.ConstraintKind

	// Outcome is the realized value n·x (natural sign).
	Outcome float64

	// Bound is the requirement/cap (natural sign).
	Bound float64

	// Binding is true iff | |outcome| − |bound| | ≤ tol at computation
	// time (absolute-value policy; see package doc).
	Binding bool
}

// Compare computes every constraint row's realized outcome against its
// bound, tagging binding rows under tolerance tol.
//
// Contracts:
//   - q must carry a value for every food in sys.Foods (extra labels are
//     ignored); q is typically Result.Quantities.
//   - With an all-NaN quantity vector (failed solve) every Outcome is NaN
//     and no row is binding — the shape still matches, per the core's
//     failure contract.
//
// Errors: ErrNilInput; ErrShapeMismatch when q lacks one of sys.Foods.
//
// Complexity: O(rows·foods).
func Compare(sys diet.System, q *tabular.Series, tol float64) ([]OutcomeRow, error) {
	if sys.A == nil || q == nil {
		return nil, ErrNilInput
	}
	aligned, err := q.Reindex(sys.Foods, tabular.Drop())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	x := aligned.Values()

	rows := make([]OutcomeRow, sys.NumRows())
	for i := range rows {
		raw := floats.Dot(sys.A.RawRowView(i), x) // stored-sign outcome
		bound := sys.B[i]

		out := OutcomeRow{
			Label:   sys.RowLabels[i],
			Kind:    sys.Kinds[i],
			Outcome: raw,
			Bound:   bound,
			// Absolute-value policy; NaN outcome compares false.
			Binding: math.Abs(math.Abs(raw)-math.Abs(bound)) <= tol,
		}
		// Undo the stored negation for presentation.
		if out.Kind != diet.Minimum {
			out.Outcome = -out.Outcome
			out.Bound = -out.Bound
		}
		rows[i] = out
	}
	return rows, nil
}

// Binding returns only the binding rows of Compare: the constraints whose
// realized outcome equals the requirement within tol — the ones that, if
// tightened, would immediately raise cost.
func Binding(sys diet.System, q *tabular.Series, tol float64) ([]OutcomeRow, error) {
	all, err := Compare(sys, q, tol)
	if err != nil {
		return nil, err
	}
	out := make([]OutcomeRow, 0, len(all))
	for _, row := range all {
		if row.Binding {
			out = append(out, row)
		}
	}
	return out, nil
}

// Nontrivial returns the sub-series of q whose values are ≥ tol, preserving
// order. NaN values never pass (a failed solve reports nothing nontrivial).
// Returns nil when no entry qualifies — filtering below tolerance is a
// display concern, so the core hands back everything and this helper trims.
func Nontrivial(q *tabular.Series, tol float64) *tabular.Series {
	if q == nil {
		return nil
	}
	var labels []string
	var values []float64
	for i := 0; i < q.Len(); i++ {
		label, v := q.At(i)
		if v >= tol { // NaN fails this comparison
			labels = append(labels, label)
			values = append(values, v)
		}
	}
	if len(labels) == 0 {
		return nil
	}
	out, _ := tabular.NewSeries(labels, values) // uniqueness inherited from q
	return out
}

// Spend decomposes the diet's cost: per-food spend (price × quantity) for
// every food in q, plus the total. Foods missing a price yield
// ErrShapeMismatch — a solved Result's quantities always align with the
// price vector that produced them.
func Spend(pv *diet.PriceVector, q *tabular.Series) (*tabular.Series, float64, error) {
	if pv == nil || q == nil {
		return nil, 0, ErrNilInput
	}
	labels := q.Labels()
	values := make([]float64, len(labels))
	total := 0.0
	for i, food := range labels {
		p, ok := pv.Price(food)
		if !ok {
			return nil, 0, fmt.Errorf("%w: no price for %q", ErrShapeMismatch, food)
		}
		m, _ := p.Magnitude()
		_, qty := q.At(i)
		values[i] = m * qty
		total += values[i]
	}
	out, err := tabular.NewSeries(labels, values)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
