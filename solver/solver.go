// Package solver: MinimizeLE — the single solve entry point.

package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solution holds the optimum of a successful solve.
type Solution struct {
	// X is the optimal point, one entry per objective coefficient,
	// every entry ≥ 0.
	X []float64

	// Objective is c·X at the optimum.
	Objective float64
}

// MinimizeLE solves: minimize c·x subject to G·x ≤ h, x ≥ 0.
//
// Contracts:
//   - G must be m×n with n == len(c) and m == len(h); m, n ≥ 1.
//   - tol is the simplex optimality tolerance; pass 0 for gonum's default.
//
// Implementation:
//   - Stage 1: validate shapes (ErrDimensionMismatch).
//   - Stage 2: build standard form [G | I]·[x;s] = h with objective [c;0];
//     the slack s ≥ 0 encodes the ≤ direction, x ≥ 0 is native to the form.
//   - Stage 3: run lp.Simplex and translate its failure taxonomy into this
//     package's sentinels, preserving the underlying message via %w-adjacent
//     wrapping for diagnostics.
//
// Errors: ErrDimensionMismatch, ErrInfeasible, ErrUnbounded, ErrNumerical.
//
// Complexity: simplex is exponential worst-case, fast in practice; the
// standard-form build is O(m·(n+m)).
func MinimizeLE(c []float64, g *mat.Dense, h []float64, tol float64) (Solution, error) {
	// Stage 1 — shape validation.
	if g == nil || len(c) == 0 || len(h) == 0 {
		return Solution{}, fmt.Errorf("%w: empty objective or constraints", ErrDimensionMismatch)
	}
	m, n := g.Dims()
	if n != len(c) || m != len(h) {
		return Solution{}, fmt.Errorf("%w: c has %d entries, G is %d×%d, h has %d entries",
			ErrDimensionMismatch, len(c), m, n, len(h))
	}

	// Stage 2 — standard form: A = [G | I], b = h, cStd = [c | 0].
	cStd := make([]float64, n+m)
	copy(cStd, c)
	a := mat.NewDense(m, n+m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, g.At(i, j))
		}
		a.Set(i, n+i, 1) // slack column for row i
	}
	b := make([]float64, m)
	copy(b, h)

	// Stage 3 — solve and translate errors.
	obj, xStd, err := lp.Simplex(cStd, a, b, tol, nil)
	if err != nil {
		return Solution{}, translate(err)
	}

	x := make([]float64, n)
	copy(x, xStd[:n]) // drop slack values
	return Solution{X: x, Objective: obj}, nil
}

// translate maps gonum lp errors onto this package's sentinel taxonomy,
// keeping the original message in the wrap for downstream diagnostics.
func translate(err error) error {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return fmt.Errorf("%w (%v)", ErrInfeasible, err)
	case errors.Is(err, lp.ErrUnbounded):
		return fmt.Errorf("%w (%v)", ErrUnbounded, err)
	default:
		return fmt.Errorf("%w (%v)", ErrNumerical, err)
	}
}
