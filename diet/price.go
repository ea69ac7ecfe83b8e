// Package diet: Price sum type and PriceVector.
//
// The unit wrapper is an explicit two-variant sum type rather than
// duck-typed attribute probing: PerUnit carries a verified canonical-unit
// magnitude, Plain carries a bare number whose unit cannot be verified.
// Magnitude is exhaustive over both variants, so the "no magnitude
// attribute" fallback is a visible code path, not a silent one.

package diet

import (
	"fmt"
	"math"
	"sort"
)

// Price is the cost of one canonical unit of a food.
// Construct via Plain or PerUnit; the zero value behaves as Plain(0).
type Price struct {
	value   float64
	unit    string
	hasUnit bool
}

// Plain returns a price with no unit tag. Alignment will use the value
// as-is and emit a unit-safety warning, since canonical-unit consistency
// cannot be verified.
func Plain(v float64) Price {
	return Price{value: v}
}

// PerUnit returns a price tagged with the canonical unit it is quoted in
// (e.g. "USD/hg"). The tag is carried for warning text only; the core does
// no unit conversion — inputs are assumed pre-normalized.
func PerUnit(v float64, unit string) Price {
	return Price{value: v, unit: unit, hasUnit: true}
}

// Magnitude returns the numeric price and whether it carries a unit tag.
// ok=false means the price was Plain: usable, but unit-unsafe.
func (p Price) Magnitude() (v float64, ok bool) {
	return p.value, p.hasUnit
}

// Unit returns the unit tag ("" for Plain prices).
func (p Price) Unit() string { return p.unit }

// PriceVector is an immutable ordered mapping food → Price.
// Foods whose price has no resolvable finite value are dropped at
// construction, per the best-effort input policy.
type PriceVector struct {
	foods  []string
	prices []Price
	index  map[string]int
}

// NewPriceVector builds a PriceVector from parallel slices, preserving the
// caller's food order. Non-finite prices are silently dropped.
//
// Errors: ErrNilInput on length mismatch or a repeated food identifier;
// ErrNoCommonFoods if every entry was dropped.
func NewPriceVector(foods []string, prices []Price) (*PriceVector, error) {
	if len(foods) != len(prices) {
		return nil, fmt.Errorf("%w: %d foods vs %d prices", ErrNilInput, len(foods), len(prices))
	}
	pv := &PriceVector{index: make(map[string]int, len(foods))}
	for i, food := range foods {
		v, _ := prices[i].Magnitude()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue // no resolvable numeric value: drop before use
		}
		if _, dup := pv.index[food]; dup {
			return nil, fmt.Errorf("%w: duplicate food %q", ErrNilInput, food)
		}
		pv.index[food] = len(pv.foods)
		pv.foods = append(pv.foods, food)
		pv.prices = append(pv.prices, prices[i])
	}
	if len(pv.foods) == 0 {
		return nil, ErrNoCommonFoods
	}
	return pv, nil
}

// PriceVectorFromMap builds a PriceVector from a Go map, ordering foods
// lexicographically for determinism.
func PriceVectorFromMap(m map[string]Price) (*PriceVector, error) {
	if len(m) == 0 {
		return nil, ErrNilInput
	}
	foods := make([]string, 0, len(m))
	for food := range m {
		foods = append(foods, food)
	}
	sort.Strings(foods) // stable lex order
	prices := make([]Price, len(foods))
	for i, food := range foods {
		prices[i] = m[food]
	}
	return NewPriceVector(foods, prices)
}

// PriceVectorFromValues builds a PriceVector of unit-tagged prices from
// plain float64s, tagging each with unit. Convenience for callers whose
// data is already normalized.
func PriceVectorFromValues(m map[string]float64, unit string) (*PriceVector, error) {
	wrapped := make(map[string]Price, len(m))
	for food, v := range m {
		wrapped[food] = PerUnit(v, unit)
	}
	return PriceVectorFromMap(wrapped)
}

// Len returns the number of foods. O(1).
func (pv *PriceVector) Len() int { return len(pv.foods) }

// Foods returns a copy of the ordered food identifiers. O(n).
func (pv *PriceVector) Foods() []string {
	out := make([]string, len(pv.foods))
	copy(out, pv.foods)
	return out
}

// Price returns the Price for food and whether the food exists. O(1).
func (pv *PriceVector) Price(food string) (Price, bool) {
	i, ok := pv.index[food]
	if !ok {
		return Price{}, false
	}
	return pv.prices[i], true
}

// Has reports whether food is present. O(1).
func (pv *PriceVector) Has(food string) bool {
	_, ok := pv.index[food]
	return ok
}

// Scaled returns a fresh PriceVector with the named food's price multiplied
// by factor; all other entries are copied untouched. The receiver is never
// mutated — this is the building block of sensitivity sweeps.
//
// Errors: ErrUnknownFood; ErrBadScale for non-finite or negative factors.
func (pv *PriceVector) Scaled(food string, factor float64) (*PriceVector, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadScale, factor)
	}
	i, ok := pv.index[food]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFood, food)
	}
	prices := make([]Price, len(pv.prices))
	copy(prices, pv.prices)
	prices[i] = scalePrice(prices[i], factor)
	return NewPriceVector(pv.foods, prices)
}

// ScaledAll returns a fresh PriceVector with EVERY price multiplied by
// factor (a uniform inflation/deflation scenario).
//
// Errors: ErrBadScale for non-finite or negative factors.
func (pv *PriceVector) ScaledAll(factor float64) (*PriceVector, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadScale, factor)
	}
	prices := make([]Price, len(pv.prices))
	for i, p := range pv.prices {
		prices[i] = scalePrice(p, factor)
	}
	return NewPriceVector(pv.foods, prices)
}

// scalePrice multiplies a price's magnitude, preserving its unit variant.
func scalePrice(p Price, factor float64) Price {
	if p.hasUnit {
		return PerUnit(p.value*factor, p.unit)
	}
	return Plain(p.value * factor)
}
