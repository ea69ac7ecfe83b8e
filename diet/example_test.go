package diet_test

import (
	"fmt"

	"github.com/cefayefang/mincostdiet/diet"
	"github.com/cefayefang/mincostdiet/tabular"
)

// ExampleSolve demonstrates the whole pipeline on a two-food diet:
// F2 packs three times the nutrient per unit at only twice the price,
// so the optimum buys one unit of F2.
func ExampleSolve() {
	table, _ := tabular.TableFromMap(map[string]map[string]float64{
		"N": {"F1": 1, "F2": 3},
	})
	prices, _ := diet.PriceVectorFromValues(map[string]float64{"F1": 1.0, "F2": 2.0}, "USD/hg")
	minIntake, _ := tabular.SeriesFromMap(map[string]float64{"N": 3})

	res, err := diet.Solve(table, prices, minIntake, nil, diet.DefaultOptions())
	if err != nil {
		fmt.Println("malformed input:", err)
		return
	}

	f1, _ := res.Quantities.Value("F1")
	f2, _ := res.Quantities.Value("F2")
	fmt.Printf("success: %v\n", res.Success)
	fmt.Printf("cost: %.2f\n", res.Cost)
	fmt.Printf("F1: %.2f  F2: %.2f\n", f1, f2)

	// Output:
	// success: true
	// cost: 2.00
	// F1: 0.00  F2: 1.00
}

// ExampleSolve_infeasible shows the failure packaging: a maximum cap that
// contradicts the minimum requirement yields Success=false and NaN
// quantities — never an error, never a shape change.
func ExampleSolve_infeasible() {
	table, _ := tabular.TableFromMap(map[string]map[string]float64{
		"N": {"F1": 1, "F2": 3},
	})
	prices, _ := diet.PriceVectorFromValues(map[string]float64{"F1": 1.0, "F2": 2.0}, "USD/hg")
	minIntake, _ := tabular.SeriesFromMap(map[string]float64{"N": 3})
	maxIntake, _ := tabular.SeriesFromMap(map[string]float64{"N": 2})

	res, _ := diet.Solve(table, prices, minIntake, maxIntake, diet.DefaultOptions())

	fmt.Printf("success: %v\n", res.Success)
	fmt.Printf("foods still indexed: %v\n", res.Quantities.Labels())

	// Output:
	// success: false
	// foods still indexed: [F1 F2]
}
