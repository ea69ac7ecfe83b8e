// Package diet: Solve & Package stage — the single exposed pipeline.

package diet

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cefayefang/mincostdiet/solver"
	"github.com/cefayefang/mincostdiet/tabular"
)

// Result is the packaged outcome of one Solve invocation. Constructed once,
// immutable thereafter.
type Result struct {
	// Success is true when the solver found an optimum.
	Success bool

	// Cost is price·Quantities at the optimum; NaN when Success is false.
	Cost float64

	// Quantities maps each food of the FINAL (aligned) price vector to its
	// optimal quantity. On failure every value is NaN, but the label set
	// and order are still exactly the final food axis, so downstream shape
	// expectations never break — callers must check for NaN instead.
	Quantities *tabular.Series

	// System is the exact A·x ≥ b system that was solved (before the
	// solver-direction flip), kept for outcome-vs-recommendation auditing.
	System System

	// Diagnostic carries the solver's failure message when Success is
	// false; empty otherwise.
	Diagnostic string

	// Warnings collects non-fatal conditions: unit-unsafe prices,
	// infeasible/unbounded solves. Never causes an error return.
	Warnings []string
}

// Solve runs the full pipeline: Align → Formulate → flip to the solver's ≤
// direction → solve → package.
//
// The LP solved is: minimize price·x subject to A·x ≥ b, x ≥ 0, where A, b
// come from Formulate. The external solver accepts only ≤ rows, so both A
// and b are negated immediately before the call: (−A)·x ≤ (−b) ⇔ A·x ≥ b.
// Non-negativity is the solver's default domain.
//
// Failure policy: infeasibility, unboundedness and numerical breakdown are
// packaged, never raised — Success=false, Cost=NaN, all-NaN Quantities of
// the correct length and labels, Diagnostic set, and a warning appended.
// Error returns are reserved for malformed inputs (nil inputs, disjoint
// food axes, zero constraints).
//
// Purity: no caller-supplied input is mutated; identical inputs produce
// identical Results. Safe to call in tight loops with no synchronization.
func Solve(table *tabular.Table, pv *PriceVector, minIntake, maxIntake *tabular.Series, opts Options) (Result, error) {
	if table == nil || pv == nil {
		return Result{}, ErrNilInput
	}

	// Stage 1 — alignment.
	prices, aligned, warnings, err := Align(table, pv)
	if err != nil {
		return Result{}, err
	}

	// Stage 2 — formulation against the aligned food order.
	maxTotal := math.NaN()
	if opts.HasWeightCap() {
		maxTotal = opts.MaxTotalQuantity
	}
	sys, err := Formulate(aligned, minIntake, maxIntake, maxTotal, prices.Labels())
	if err != nil {
		return Result{}, err
	}

	// Stage 3 — flip A·x ≥ b into the solver's ≤ direction and solve.
	var g mat.Dense
	g.Scale(-1, sys.A)
	h := make([]float64, len(sys.B))
	for i, v := range sys.B {
		h[i] = -v
	}

	sol, err := solver.MinimizeLE(prices.Values(), &g, h, opts.Tolerance)
	if err != nil {
		if errors.Is(err, solver.ErrInfeasible) ||
			errors.Is(err, solver.ErrUnbounded) ||
			errors.Is(err, solver.ErrNumerical) {
			return failureResult(prices, sys, warnings, err), nil
		}
		// Shape mismatches mean a broken internal contract; surface them.
		return Result{}, err
	}

	quantities, err := tabular.NewSeries(prices.Labels(), sol.X)
	if err != nil {
		return Result{}, err // unreachable: labels and X share a length
	}

	return Result{
		Success:    true,
		Cost:       sol.Objective,
		Quantities: quantities,
		System:     sys,
		Warnings:   warnings,
	}, nil
}

// failureResult packages an infeasible/unbounded/numerical outcome: the
// quantity vector keeps the final food axis but every value is NaN, so
// downstream code sized against the price vector never sees a shape change.
func failureResult(prices *tabular.Series, sys System, warnings []string, cause error) Result {
	nans := make([]float64, prices.Len())
	for i := range nans {
		nans[i] = math.NaN()
	}
	quantities, _ := tabular.NewSeries(prices.Labels(), nans) // shapes match by construction

	return Result{
		Success:    false,
		Cost:       math.NaN(),
		Quantities: quantities,
		System:     sys,
		Diagnostic: cause.Error(),
		Warnings:   append(warnings, "diet: solve failed: "+cause.Error()),
	}
}
