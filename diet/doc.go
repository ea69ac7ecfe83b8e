// Package diet implements the core of the Stigler subsistence-diet
// optimizer: a pure, stateless pipeline that turns heterogeneous tabular
// inputs into one consistent linear program and packages the solve outcome
// in labeled form.
//
// 🥣 Pipeline (no branching back, no shared state):
//
//	Align     — intersect the foods of the price vector and nutrient table
//	            (price order wins), unwrap unit-tagged prices to plain
//	            magnitudes, zero-fill missing nutrient cells.
//	Formulate — build A and b: minimum rows kept as A·x ≥ b, maximum rows
//	            negated into the same direction, optional total-weight cap
//	            appended as a −1-coefficient row.
//	Solve &   — flip both sides into the solver's ≤ direction, run the LP,
//	Package     and return a labeled Result. Infeasibility is DATA, not an
//	            error: Success=false, NaN cost, all-NaN quantities of the
//	            correct length, diagnostic attached. Error returns are
//	            reserved for malformed inputs.
//
// Sign conventions (get these wrong and you get a plausible wrong answer,
// not a crash — hence the explicit bookkeeping):
//
//	minimum row:       n·x ≥ b      stored as ( n, b)
//	maximum row:       n·x ≤ m      stored as (−n, −m)
//	total-weight row:  Σx  ≤ w      stored as (−1, −w)
//	solver direction:  A·x ≥ b  ⇔  (−A)·x ≤ (−b)
//
// Every invocation is a pure function of its inputs plus a tolerance: inputs
// are never mutated, and identical inputs yield identical Results, which is
// what makes tight sensitivity-sweep loops safe without synchronization.
package diet
