// Package diet: sentinel error set.
// Errors here mean MALFORMED INPUT (contract violations). Infeasible or
// unbounded solves are not errors — they come back inside Result.

package diet

import "errors"

var (
	// ErrNilInput is returned when a required table, price vector or
	// intake vector is nil.
	ErrNilInput = errors.New("diet: nil input")

	// ErrNoCommonFoods is returned when the price vector and nutrient
	// table share no food identifiers — alignment leaves nothing to
	// optimize over.
	ErrNoCommonFoods = errors.New("diet: no foods shared by prices and nutrient table")

	// ErrNoConstraints is returned when both intake vectors are empty and
	// no total-weight cap is set: the program would be "buy nothing".
	ErrNoConstraints = errors.New("diet: no active constraints")

	// ErrUnknownFood is returned by price perturbation helpers for a food
	// identifier the price vector does not carry.
	ErrUnknownFood = errors.New("diet: unknown food")

	// ErrBadScale is returned by price perturbation helpers for a
	// non-finite or negative scale factor.
	ErrBadScale = errors.New("diet: scale factor must be finite and non-negative")
)
