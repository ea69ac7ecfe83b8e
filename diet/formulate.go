// Package diet: Formulation stage — build A·x ≥ b from mixed constraints.

package diet

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cefayefang/mincostdiet/tabular"
)

// ConstraintKind tags each row of the constraint system with the dietary
// meaning its sign convention encodes.
type ConstraintKind int

const (
	// Minimum rows are stored as-is: n·x ≥ b.
	Minimum ConstraintKind = iota

	// Maximum rows are stored negated: n·x ≤ m becomes (−n)·x ≥ (−m).
	Maximum

	// TotalWeight is the optional Σx ≤ w cap, stored as (−1,…,−1)·x ≥ −w.
	TotalWeight
)

// String returns the kind's name for diagnostics and reports.
func (k ConstraintKind) String() string {
	switch k {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case TotalWeight:
		return "total-weight"
	default:
		return "unknown"
	}
}

// TotalWeightLabel is the row label used for the appended total-quantity
// cap, chosen to never collide with nutrient identifiers in practice.
const TotalWeightLabel = "total-weight"

// System is the assembled constraint system A·x ≥ b, fully labeled.
// It is constructed once by Formulate and never mutated afterwards; the
// Result carries it verbatim for outcome-vs-recommendation auditing.
type System struct {
	// Foods is A's column order — identical to the aligned price order.
	Foods []string

	// RowLabels names each row: the nutrient identifier, or
	// TotalWeightLabel for the weight cap.
	RowLabels []string

	// Kinds tags each row; parallel to RowLabels.
	Kinds []ConstraintKind

	// A is the len(RowLabels)×len(Foods) coefficient matrix, sign-adjusted
	// so every row reads A·x ≥ B.
	A *mat.Dense

	// B is the right-hand side, parallel to A's rows.
	B []float64
}

// NumRows returns the constraint count. O(1).
func (s System) NumRows() int { return len(s.RowLabels) }

// NumFoods returns A's column count. O(1).
func (s System) NumFoods() int { return len(s.Foods) }

// Clone returns an independent deep copy. O(rows·foods).
func (s System) Clone() System {
	out := System{
		Foods:     append([]string(nil), s.Foods...),
		RowLabels: append([]string(nil), s.RowLabels...),
		Kinds:     append([]ConstraintKind(nil), s.Kinds...),
		B:         append([]float64(nil), s.B...),
	}
	if s.A != nil {
		var a mat.Dense
		a.CloneFrom(s.A)
		out.A = &a
	}
	return out
}

// Formulate builds the constraint system from the ALIGNED nutrient table
// and the intake vectors. Either intake vector may be nil (no constraints
// of that kind).
//
// Algorithm (row blocks in this exact order):
//  1. Minimum block — table rows reindexed to minIntake's nutrient order,
//     zero-filling nutrients the table lacks: a requirement with no content
//     anywhere still yields a (all-zero) row, which surfaces as solver
//     infeasibility rather than a silent drop. Table rows with no
//     requirement are absent, not zero-bound.
//  2. Maximum block — same restriction against maxIntake, then row AND
//     bound negated: n·x ≤ m ⇔ (−n)·x ≥ (−m).
//  3. Blocks concatenated, minimum above maximum, b kept parallel.
//  4. Defensive column re-alignment to `foods` — Align already guarantees
//     the order, but Formulate must not assume it.
//  5. Optional weight cap: one row of −1s with rhs −maxTotal, encoding
//     Σx ≤ maxTotal. Pass NaN for "no cap".
//
// A nutrient named in both vectors produces two independent rows.
//
// Errors: ErrNilInput; ErrNoConstraints when both vectors are empty/nil and
// no cap is set; tabular.ErrMissingLabel if `foods` names a column the
// table lacks (contract violation with Align).
//
// Complexity: O((Rmin+Rmax)·F).
func Formulate(aligned *tabular.Table, minIntake, maxIntake *tabular.Series, maxTotal float64, foods []string) (System, error) {
	if aligned == nil || len(foods) == 0 {
		return System{}, ErrNilInput
	}

	// Step 4 first: re-align columns so every block below inherits the
	// authoritative food order. Drop policy — a missing food column here
	// means Align's guarantee was broken upstream.
	table, err := aligned.ReindexColumns(foods, tabular.Drop())
	if err != nil {
		return System{}, err
	}

	sys := System{Foods: append([]string(nil), foods...)}
	var rows [][]float64

	// Step 1 — minimum block, kept as-is.
	if minIntake != nil && minIntake.Len() > 0 {
		block, err := table.ReindexRows(minIntake.Labels(), tabular.Fill(0))
		if err != nil {
			return System{}, err
		}
		for _, nutrient := range minIntake.Labels() {
			row, _ := block.Row(nutrient) // label from block's own axis
			bound, _ := minIntake.Value(nutrient)
			rows = append(rows, row)
			sys.B = append(sys.B, bound)
			sys.RowLabels = append(sys.RowLabels, nutrient)
			sys.Kinds = append(sys.Kinds, Minimum)
		}
	}

	// Step 2+3 — maximum block, negated, appended below the minimum block.
	if maxIntake != nil && maxIntake.Len() > 0 {
		block, err := table.ReindexRows(maxIntake.Labels(), tabular.Fill(0))
		if err != nil {
			return System{}, err
		}
		for _, nutrient := range maxIntake.Labels() {
			row, _ := block.Row(nutrient)
			for j := range row {
				row[j] = -row[j]
			}
			bound, _ := maxIntake.Value(nutrient)
			rows = append(rows, row)
			sys.B = append(sys.B, -bound)
			sys.RowLabels = append(sys.RowLabels, nutrient)
			sys.Kinds = append(sys.Kinds, Maximum)
		}
	}

	// Step 5 — optional total-quantity cap: Σx ≤ w as (−1)·x ≥ −w.
	if !math.IsNaN(maxTotal) && !math.IsInf(maxTotal, 0) {
		row := make([]float64, len(foods))
		for j := range row {
			row[j] = -1
		}
		rows = append(rows, row)
		sys.B = append(sys.B, -maxTotal)
		sys.RowLabels = append(sys.RowLabels, TotalWeightLabel)
		sys.Kinds = append(sys.Kinds, TotalWeight)
	}

	if len(rows) == 0 {
		return System{}, ErrNoConstraints
	}

	// Assemble the dense matrix row-major.
	data := make([]float64, 0, len(rows)*len(foods))
	for _, row := range rows {
		data = append(data, row...)
	}
	sys.A = mat.NewDense(len(rows), len(foods), data)

	return sys, nil
}
