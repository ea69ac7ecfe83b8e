// Package tabular: missing-key policy for reindexing.
// The policy is an explicit value, not a bool flag, so call sites read as
// what they mean: Reindex(order, Fill(0)) vs Reindex(order, Drop()).

package tabular

// MissingPolicy decides what Reindex does when the target order names a
// label that the source does not carry. Zero value is NOT valid; construct
// via Drop() or Fill(v).
type MissingPolicy struct {
	fill    float64
	useFill bool
}

// Drop returns the strict policy: a missing label is a contract violation
// and Reindex returns ErrMissingLabel.
func Drop() MissingPolicy {
	return MissingPolicy{}
}

// Fill returns the permissive policy: a missing label's entries become v.
// v may be NaN when the caller wants to mark cells as missing for a later
// FillNaN pass; the diet pipeline itself always uses Fill(0).
func Fill(v float64) MissingPolicy {
	return MissingPolicy{fill: v, useFill: true}
}

// Intersect returns the labels present in BOTH a and b, preserving the order
// of a. Duplicates in a are kept in first-seen position only.
//
// Order contract: the first argument's order is authoritative. The diet
// pipeline passes the price vector first, so the price order propagates to
// every aligned axis downstream.
//
// Complexity: O(len(a)+len(b)) time, O(len(b)) extra memory.
func Intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, label := range b {
		inB[label] = struct{}{}
	}
	out := make([]string, 0, len(a))
	seen := make(map[string]struct{}, len(a))
	for _, label := range a {
		if _, ok := inB[label]; !ok {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
