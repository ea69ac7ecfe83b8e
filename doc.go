// Package mincostdiet solves the Stigler subsistence-diet problem:
// given foods with known nutrient densities and prices, and minimum/maximum
// nutrient intake targets, find the cheapest combination of food quantities
// that satisfies every intake constraint.
//
// 🥖 What is the diet problem?
//
//	A classic linear program from nutrition economics (Stigler, 1945):
//		minimize   price · x
//		subject to A · x ≥ b   (intake constraints)
//		           x ≥ 0       (you cannot un-eat food)
//	where x is the vector of food quantities in a single canonical unit.
//
// ✨ What the module gives you:
//
//   - tabular/ — labeled vectors & tables with explicit, testable alignment
//     (set intersection, deterministic reindexing, zero-fill vs drop policies)
//   - solver/  — a thin adapter over gonum's simplex LP solver exposing the
//     canonical "minimize c·x s.t. G·x ≤ h, x ≥ 0" interface
//   - diet/    — the core pipeline: Align → Formulate → Solve & Package,
//     returning a labeled, audit-friendly Result (never panics, never aborts
//     on infeasibility)
//   - report/  — realized nutrient outcomes, binding-constraint detection,
//     per-food spend decomposition
//   - sweep/   — price-sensitivity sweeps: re-solve under scaled prices and
//     trace how cost and composition respond
//
// Quick taste:
//
//	prices, _ := diet.PriceVectorFromValues(map[string]float64{
//		"bread": 1.0, "milk": 2.0,
//	})
//	res, err := diet.Solve(nutrients, prices, minIntake, maxIntake, diet.DefaultOptions())
//	if err != nil { ... }          // malformed inputs only
//	if !res.Success { ... }        // infeasible: all quantities are NaN
//	fmt.Println(res.Cost, res.Quantities)
//
// Every invocation is a pure function of its inputs: no shared state, no
// caching, safe to call in tight sweep loops. All identifier ordering is
// deterministic (caller order where one exists, lexicographic otherwise).
//
//	go get github.com/cefayefang/mincostdiet
package mincostdiet
