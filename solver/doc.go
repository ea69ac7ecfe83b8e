// Package solver adapts gonum's simplex linear-program solver to the
// canonical inequality interface the diet pipeline targets:
//
//	minimize   c · x
//	subject to G · x ≤ h
//	           x ≥ 0
//
// The ≤ direction and the default non-negativity domain mirror the classic
// linprog-style contract; callers holding ≥ constraints negate both sides
// before invoking MinimizeLE (see the diet package).
//
// Internally MinimizeLE appends one slack variable per row to reach gonum's
// standard equality form (A·x = b, x ≥ 0), calls lp.Simplex, and strips the
// slacks from the returned point. Infeasibility and unboundedness are
// reported as the sentinels ErrInfeasible and ErrUnbounded, always wrapping
// the underlying solver message so callers can surface it as a diagnostic.
// The package never panics on user-triggered conditions and performs no I/O.
package solver
