// Package tabular: Table — a dense labeled matrix (row labels × col labels).
// Backed by gonum's mat.Dense; NaN marks a missing cell until FillNaN.

package tabular

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Table is an immutable dense matrix with labeled, ordered axes.
// Rows are keyed by one identifier space (nutrients, in the diet pipeline)
// and columns by another (foods). All methods treat the receiver as
// read-only and return fresh data.
type Table struct {
	rowLabels []string
	colLabels []string
	rowIndex  map[string]int
	colIndex  map[string]int
	data      *mat.Dense // rowLabels×colLabels, never aliased to callers
}

// NewTable builds a Table from ordered row/column labels and row-major
// values. The caller's orders are preserved verbatim.
//
// Errors: ErrLengthMismatch if len(values) != rows*cols; ErrEmpty when an
// axis is empty; ErrDuplicateLabel on repeats within an axis.
//
// Complexity: O(rows*cols).
func NewTable(rowLabels, colLabels []string, values []float64) (*Table, error) {
	if len(rowLabels) == 0 || len(colLabels) == 0 {
		return nil, ErrEmpty
	}
	if len(values) != len(rowLabels)*len(colLabels) {
		return nil, fmt.Errorf("%w: %d values for %d×%d table",
			ErrLengthMismatch, len(values), len(rowLabels), len(colLabels))
	}
	t := &Table{
		rowLabels: make([]string, len(rowLabels)),
		colLabels: make([]string, len(colLabels)),
		rowIndex:  make(map[string]int, len(rowLabels)),
		colIndex:  make(map[string]int, len(colLabels)),
	}
	copy(t.rowLabels, rowLabels)
	copy(t.colLabels, colLabels)
	for i, label := range t.rowLabels {
		if _, dup := t.rowIndex[label]; dup {
			return nil, fmt.Errorf("%w: row %q", ErrDuplicateLabel, label)
		}
		t.rowIndex[label] = i
	}
	for j, label := range t.colLabels {
		if _, dup := t.colIndex[label]; dup {
			return nil, fmt.Errorf("%w: column %q", ErrDuplicateLabel, label)
		}
		t.colIndex[label] = j
	}
	buf := make([]float64, len(values))
	copy(buf, values)
	t.data = mat.NewDense(len(rowLabels), len(colLabels), buf)
	return t, nil
}

// TableFromMap builds a Table from a nested map row → col → value.
// Both axes are ordered lexicographically; cells absent from the map are set
// to NaN (missing), to be resolved by a later FillNaN call. This mirrors how
// sparse nutrient data arrives: not every food reports every nutrient.
//
// Errors: ErrEmpty when the map (or the union of inner maps) is empty.
func TableFromMap(cells map[string]map[string]float64) (*Table, error) {
	if len(cells) == 0 {
		return nil, ErrEmpty
	}
	rowLabels := make([]string, 0, len(cells))
	colSet := make(map[string]struct{})
	for r, inner := range cells {
		rowLabels = append(rowLabels, r)
		for c := range inner {
			colSet[c] = struct{}{}
		}
	}
	if len(colSet) == 0 {
		return nil, ErrEmpty
	}
	sort.Strings(rowLabels) // stable lex order
	colLabels := make([]string, 0, len(colSet))
	for c := range colSet {
		colLabels = append(colLabels, c)
	}
	sort.Strings(colLabels)

	values := make([]float64, len(rowLabels)*len(colLabels))
	for i, r := range rowLabels {
		for j, c := range colLabels {
			v, ok := cells[r][c]
			if !ok {
				v = math.NaN() // missing cell
			}
			values[i*len(colLabels)+j] = v
		}
	}
	return NewTable(rowLabels, colLabels, values)
}

// Rows returns a copy of the ordered row labels. O(n).
func (t *Table) Rows() []string {
	out := make([]string, len(t.rowLabels))
	copy(out, t.rowLabels)
	return out
}

// Cols returns a copy of the ordered column labels. O(n).
func (t *Table) Cols() []string {
	out := make([]string, len(t.colLabels))
	copy(out, t.colLabels)
	return out
}

// NumRows returns the row count. O(1).
func (t *Table) NumRows() int { return len(t.rowLabels) }

// NumCols returns the column count. O(1).
func (t *Table) NumCols() int { return len(t.colLabels) }

// Value returns the cell at (row, col) labels.
// Errors: ErrUnknownLabel naming the missing axis label.
func (t *Table) Value(row, col string) (float64, error) {
	i, ok := t.rowIndex[row]
	if !ok {
		return 0, fmt.Errorf("%w: row %q", ErrUnknownLabel, row)
	}
	j, ok := t.colIndex[col]
	if !ok {
		return 0, fmt.Errorf("%w: column %q", ErrUnknownLabel, col)
	}
	return t.data.At(i, j), nil
}

// Row returns a copy of the named row's values in column order.
// Errors: ErrUnknownLabel.
func (t *Table) Row(label string) ([]float64, error) {
	i, ok := t.rowIndex[label]
	if !ok {
		return nil, fmt.Errorf("%w: row %q", ErrUnknownLabel, label)
	}
	out := make([]float64, len(t.colLabels))
	copy(out, t.data.RawRowView(i))
	return out, nil
}

// Dense returns an independent copy of the backing matrix. O(rows*cols).
func (t *Table) Dense() *mat.Dense {
	var out mat.Dense
	out.CloneFrom(t.data)
	return &out
}

// Clone returns an independent deep copy of the whole table. O(rows*cols).
func (t *Table) Clone() *Table {
	out, _ := NewTable(t.rowLabels, t.colLabels, t.rawValues()) // invariants guarantee success
	return out
}

// HasNaN reports whether any cell is NaN (i.e. still missing). O(rows*cols).
func (t *Table) HasNaN() bool {
	r, c := t.data.Dims()
	for i := 0; i < r; i++ {
		row := t.data.RawRowView(i)
		for j := 0; j < c; j++ {
			if math.IsNaN(row[j]) {
				return true
			}
		}
	}
	return false
}

// FillNaN returns a new Table with every NaN cell replaced by v.
// The diet pipeline calls FillNaN(0): a missing nutrient entry means zero
// content, not "unknown". O(rows*cols).
func (t *Table) FillNaN(v float64) *Table {
	values := t.rawValues()
	for i, x := range values {
		if math.IsNaN(x) {
			values[i] = v
		}
	}
	out, _ := NewTable(t.rowLabels, t.colLabels, values) // invariants guarantee success
	return out
}

// ReindexColumns returns a new Table whose column axis is exactly `order`.
// Source columns not named in `order` are dropped; named-but-absent columns
// follow the policy (Drop() ⇒ ErrMissingLabel, Fill(v) ⇒ a column of v).
//
// Complexity: O(rows*len(order)).
func (t *Table) ReindexColumns(order []string, policy MissingPolicy) (*Table, error) {
	if len(order) == 0 {
		return nil, ErrEmpty
	}
	values := make([]float64, len(t.rowLabels)*len(order))
	for j, label := range order {
		src, ok := t.colIndex[label]
		for i := range t.rowLabels {
			switch {
			case ok:
				values[i*len(order)+j] = t.data.At(i, src)
			case policy.useFill:
				values[i*len(order)+j] = policy.fill
			default:
				return nil, fmt.Errorf("%w: column %q", ErrMissingLabel, label)
			}
		}
	}
	return NewTable(t.rowLabels, order, values)
}

// ReindexRows returns a new Table whose row axis is exactly `order`.
// Source rows not named in `order` are dropped; named-but-absent rows follow
// the policy (Drop() ⇒ ErrMissingLabel, Fill(v) ⇒ a row of v).
//
// Complexity: O(len(order)*cols).
func (t *Table) ReindexRows(order []string, policy MissingPolicy) (*Table, error) {
	if len(order) == 0 {
		return nil, ErrEmpty
	}
	values := make([]float64, len(order)*len(t.colLabels))
	for i, label := range order {
		src, ok := t.rowIndex[label]
		if !ok && !policy.useFill {
			return nil, fmt.Errorf("%w: row %q", ErrMissingLabel, label)
		}
		for j := range t.colLabels {
			if ok {
				values[i*len(t.colLabels)+j] = t.data.At(src, j)
			} else {
				values[i*len(t.colLabels)+j] = policy.fill
			}
		}
	}
	return NewTable(order, t.colLabels, values)
}

// rawValues copies the backing data row-major. Internal helper.
func (t *Table) rawValues() []float64 {
	r, c := t.data.Dims()
	values := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(values[i*c:(i+1)*c], t.data.RawRowView(i))
	}
	return values
}
