// Package report derives human-meaningful views from a solved diet:
// realized nutrient outcomes (A·x per constraint row), binding-constraint
// detection, the nontrivial subset of quantities, and per-food spend.
//
// Sign handling: the constraint system stores maximum and total-weight rows
// negated so all rows share one inequality direction. Compare undoes that
// negation, so callers always see the natural-sign outcome next to the
// natural-sign bound (e.g. "sodium: 2.31 ≤ 2.40", not "−2.31 ≥ −2.40").
//
// Binding detection intentionally compares ABSOLUTE values of both sides:
// a row is binding iff | |outcome| − |bound| | ≤ tol. For minimum rows with
// positive bounds this agrees with the raw difference; for rows whose
// stored values are negative it does not, and the absolute-value form is
// the one preserved here. See TestBinding_AbsolutePolicy.
//
// Everything here is read-only over its inputs and allocation-fresh in its
// outputs, matching the core's purity contract.
package report
