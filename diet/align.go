// Package diet: Alignment stage.

package diet

import (
	"fmt"
	"strings"

	"github.com/cefayefang/mincostdiet/tabular"
)

// Align intersects the food axes of the nutrient table and the price
// vector and returns both restricted to the shared foods, in the PRICE
// VECTOR's order, with every price unwrapped to a plain magnitude and every
// missing nutrient cell zero-filled.
//
// Policy (deliberate best-effort, not errors):
//   - Foods present in only one input are silently excluded — partial data
//     is expected, intersection is the contract.
//   - A Plain (unit-less) price is used as-is; one warning names all such
//     foods, because canonical-unit safety cannot be verified for them.
//
// Output guarantee: prices.Labels() == aligned.Cols(), same order; the
// aligned table contains no NaN.
//
// Errors: ErrNilInput; ErrNoCommonFoods when the intersection is empty.
//
// Complexity: O(F + N·F) for F shared foods and N nutrients.
func Align(table *tabular.Table, pv *PriceVector) (prices *tabular.Series, aligned *tabular.Table, warnings []string, err error) {
	if table == nil || pv == nil {
		return nil, nil, nil, ErrNilInput
	}

	// Shared food axis, price order authoritative.
	foods := tabular.Intersect(pv.Foods(), table.Cols())
	if len(foods) == 0 {
		return nil, nil, nil, ErrNoCommonFoods
	}

	// Unwrap prices; collect unit-unsafe foods for a single warning.
	values := make([]float64, len(foods))
	var unsafe []string
	for i, food := range foods {
		p, _ := pv.Price(food) // food came from pv's own axis
		v, tagged := p.Magnitude()
		if !tagged {
			unsafe = append(unsafe, food)
		}
		values[i] = v
	}
	if len(unsafe) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"diet: unit safety cannot be verified for plain prices of %s; assuming canonical units",
			strings.Join(unsafe, ", ")))
	}
	prices, err = tabular.NewSeries(foods, values)
	if err != nil {
		return nil, nil, nil, err
	}

	// Restrict + reorder columns to the shared axis, then resolve missing
	// cells: absent nutrient content means zero, not unknown.
	aligned, err = table.ReindexColumns(foods, tabular.Drop())
	if err != nil {
		return nil, nil, nil, err // unreachable: foods ⊆ table.Cols()
	}
	aligned = aligned.FillNaN(0)

	return prices, aligned, warnings, nil
}
