// Package solver: sentinel error set.
// MinimizeLE returns ONLY these sentinels (wrapped with the underlying
// solver message where one exists); callers match via errors.Is.

package solver

import "errors"

var (
	// ErrDimensionMismatch is returned when c, G and h disagree in shape.
	ErrDimensionMismatch = errors.New("solver: objective/constraint dimension mismatch")

	// ErrInfeasible is returned when no x ≥ 0 satisfies G·x ≤ h.
	ErrInfeasible = errors.New("solver: problem is infeasible")

	// ErrUnbounded is returned when the objective can decrease without
	// bound over the feasible region.
	ErrUnbounded = errors.New("solver: problem is unbounded")

	// ErrNumerical is returned for any other solver failure (singular
	// bases, stalling, ill-conditioning). The wrapped message carries the
	// underlying detail.
	ErrNumerical = errors.New("solver: numerical failure")
)
