// Package tabular: Series — an ordered labeled float64 vector.

package tabular

import (
	"fmt"
	"sort"
)

// Series is an immutable ordered mapping from string label → float64 value.
// Labels are unique; order is fixed at construction and never changes.
// All methods treat the receiver as read-only and return fresh data.
type Series struct {
	labels []string
	values []float64
	index  map[string]int // label → position, built once at construction
}

// NewSeries builds a Series from parallel label/value slices.
// The caller's label order is preserved verbatim.
//
// Errors: ErrLengthMismatch if len(labels) != len(values);
// ErrEmpty if there are no entries; ErrDuplicateLabel on repeats.
//
// Complexity: O(n).
func NewSeries(labels []string, values []float64) (*Series, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: %d labels vs %d values", ErrLengthMismatch, len(labels), len(values))
	}
	if len(labels) == 0 {
		return nil, ErrEmpty
	}
	s := &Series{
		labels: make([]string, len(labels)),
		values: make([]float64, len(values)),
		index:  make(map[string]int, len(labels)),
	}
	copy(s.labels, labels)
	copy(s.values, values)
	for i, label := range s.labels {
		if _, dup := s.index[label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		s.index[label] = i
	}
	return s, nil
}

// SeriesFromMap builds a Series from a Go map, ordering labels
// lexicographically so identical maps always produce identical Series.
//
// Errors: ErrEmpty when m has no entries.
func SeriesFromMap(m map[string]float64) (*Series, error) {
	if len(m) == 0 {
		return nil, ErrEmpty
	}
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels) // stable lex order
	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = m[label]
	}
	return NewSeries(labels, values)
}

// Len returns the number of entries. O(1).
func (s *Series) Len() int { return len(s.labels) }

// Labels returns a copy of the ordered label slice. O(n).
func (s *Series) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Values returns a copy of the ordered value slice. O(n).
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Value returns the value for label and whether the label exists. O(1).
func (s *Series) Value(label string) (float64, bool) {
	i, ok := s.index[label]
	if !ok {
		return 0, false
	}
	return s.values[i], true
}

// At returns the i-th (label, value) pair in order.
// Panics on out-of-range i: positional access is a programmer concern,
// not a data condition.
func (s *Series) At(i int) (string, float64) {
	return s.labels[i], s.values[i]
}

// Has reports whether label is present. O(1).
func (s *Series) Has(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Clone returns an independent deep copy. O(n).
func (s *Series) Clone() *Series {
	out, _ := NewSeries(s.labels, s.values) // receiver invariants guarantee success
	return out
}

// Reindex returns a new Series whose labels are exactly `order`, in that
// order. Source entries whose label is not in `order` are dropped. Labels in
// `order` that the source lacks are handled per policy: Drop() yields
// ErrMissingLabel, Fill(v) writes v.
//
// Errors: ErrEmpty for an empty order; ErrDuplicateLabel if order repeats a
// label; ErrMissingLabel under Drop().
//
// Complexity: O(len(order)).
func (s *Series) Reindex(order []string, policy MissingPolicy) (*Series, error) {
	if len(order) == 0 {
		return nil, ErrEmpty
	}
	values := make([]float64, len(order))
	for i, label := range order {
		v, ok := s.Value(label)
		if !ok {
			if !policy.useFill {
				return nil, fmt.Errorf("%w: %q", ErrMissingLabel, label)
			}
			v = policy.fill
		}
		values[i] = v
	}
	return NewSeries(order, values)
}
