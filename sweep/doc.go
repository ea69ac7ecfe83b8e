// Package sweep traces price-sensitivity curves: re-solve the diet program
// once per scale factor applied to one food's price (or to all prices) and
// collect the full labeled Result at each point.
//
// The core's purity makes this a plain loop — each invocation is an
// independent function of its inputs, so there is no caching, no shared
// state, and nothing to synchronize. Infeasible points are kept in the
// curve (Success=false, NaN cost) rather than dropped, so a curve always
// has exactly one point per requested scale.
//
// Plotting is out of scope; CostCurve extracts parallel (scales, costs)
// slices for whatever visualization the caller prefers.
package sweep
