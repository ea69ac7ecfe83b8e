// Package tabular provides labeled numeric vectors (Series) and dense
// labeled matrices (Table) with explicit, deterministic alignment.
//
// The diet core aligns heterogeneous inputs — a nutrient×food table, a price
// vector, intake-requirement vectors — onto shared, ordered identifier axes.
// A single misalignment produces a wrong-but-plausible optimum rather than a
// crash, so every alignment step here is an explicit, testable function from
// (source, target key order) → aligned value, with a documented policy for
// keys that the source does not carry:
//
//   - Drop()  — a missing key is a contract violation: ErrMissingLabel.
//   - Fill(v) — a missing key is expected sparsity: the cell/entry becomes v.
//
// Determinism rules:
//
//   - A Series or Table always exposes its labels in a fixed order.
//   - Constructors that ingest Go maps sort keys lexicographically, so the
//     same map always yields the same Series/Table.
//   - Intersect preserves the order of its FIRST argument; in the diet
//     pipeline that is the price vector's food order, which wins everywhere.
//
// Values are float64. In a Table, NaN marks a missing cell: only
// TableFromMap introduces NaN, and FillNaN clears it. Package functions never
// mutate their receivers or arguments — every operation returns fresh data,
// which is what makes repeated solves under perturbed prices side-effect-free.
package tabular
