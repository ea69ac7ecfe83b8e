package diet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/cefayefang/mincostdiet/diet"
	"github.com/cefayefang/mincostdiet/tabular"
)

const tol = 1e-9

// scenarioInputs builds the two-food fixture shared by the scenario tests:
// prices {F1: 1, F2: 2}, one nutrient N with content {F1: 1, F2: 3}.
func scenarioInputs(t *testing.T) (*tabular.Table, *diet.PriceVector) {
	t.Helper()
	table, err := tabular.TableFromMap(map[string]map[string]float64{
		"N": {"F1": 1, "F2": 3},
	})
	require.NoError(t, err)
	pv, err := diet.PriceVectorFromValues(map[string]float64{"F1": 1.0, "F2": 2.0}, "USD/hg")
	require.NoError(t, err)
	return table, pv
}

// TestSolve_ScenarioA: minimum N ≥ 3. One unit of F2 supplies 3·N at cost
// 2, beating 3 units of F1 at cost 3. Expected: cost 2, x = {F1:0, F2:1}.
func TestSolve_ScenarioA(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)

	res, err := diet.Solve(table, pv, minIntake, nil, diet.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 2.0, res.Cost, tol, "optimal cost")

	f1, ok := res.Quantities.Value("F1")
	require.True(t, ok)
	f2, ok := res.Quantities.Value("F2")
	require.True(t, ok)
	assert.InDelta(t, 0.0, f1, tol)
	assert.InDelta(t, 1.0, f2, tol)
	assert.Empty(t, res.Diagnostic, "no diagnostic on success")
}

// TestSolve_ScenarioB: adding maximum N ≤ 2 makes the program infeasible
// (any diet reaching N ≥ 3 exceeds the cap). Expected: failure packaging,
// never an error.
func TestSolve_ScenarioB(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)
	maxIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 2})
	require.NoError(t, err)

	res, err := diet.Solve(table, pv, minIntake, maxIntake, diet.DefaultOptions())
	require.NoError(t, err, "infeasibility is data, not an error")
	assert.False(t, res.Success)
	assert.True(t, math.IsNaN(res.Cost), "cost undefined on failure")
	assert.NotEmpty(t, res.Diagnostic, "diagnostic must carry the solver message")
	assert.NotEmpty(t, res.Warnings, "failure must append a warning")

	// Shape contract: same labels as the final food axis, all-NaN values.
	assert.Equal(t, []string{"F1", "F2"}, res.Quantities.Labels())
	for _, v := range res.Quantities.Values() {
		assert.True(t, math.IsNaN(v), "every quantity must be NaN on failure")
	}
}

// TestSolve_ScenarioC: a total-weight cap below any feasible total forces
// infeasibility even though the nutrient constraint alone was satisfiable.
func TestSolve_ScenarioC(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)

	// Scenario A's optimum needs 1 unit total; cap it at half.
	opts := diet.DefaultOptions()
	opts.MaxTotalQuantity = 0.5

	res, err := diet.Solve(table, pv, minIntake, nil, opts)
	require.NoError(t, err)
	assert.False(t, res.Success, "weight cap must force infeasibility")
	assert.True(t, math.IsNaN(res.Cost))
}

// TestSolve_WeightCapEnforced: with a loose cap the solve succeeds and the
// total quantity respects Σx ≤ w within tolerance.
func TestSolve_WeightCapEnforced(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)

	opts := diet.DefaultOptions()
	opts.MaxTotalQuantity = 2.0

	res, err := diet.Solve(table, pv, minIntake, nil, opts)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.LessOrEqual(t, floats.Sum(res.Quantities.Values()), opts.MaxTotalQuantity+tol)
}

// TestSolve_FeasibilityOfReportedOptimum: property check — on success,
// A·x ≥ b componentwise (within tolerance) and every quantity is ≥ 0.
func TestSolve_FeasibilityOfReportedOptimum(t *testing.T) {
	table, err := tabular.TableFromMap(map[string]map[string]float64{
		"calories": {"bread": 120, "milk": 65, "beans": 140},
		"protein":  {"bread": 4, "milk": 3.5, "beans": 9},
		"sodium":   {"bread": 0.5, "milk": 0.05, "beans": 0.4},
	})
	require.NoError(t, err)
	pv, err := diet.PriceVectorFromValues(map[string]float64{
		"bread": 0.3, "milk": 0.25, "beans": 0.6,
	}, "USD/hg")
	require.NoError(t, err)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"calories": 2000, "protein": 55})
	require.NoError(t, err)
	maxIntake, err := tabular.SeriesFromMap(map[string]float64{"sodium": 10})
	require.NoError(t, err)

	res, err := diet.Solve(table, pv, minIntake, maxIntake, diet.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Success)

	x := res.Quantities.Values()
	for i, v := range x {
		assert.GreaterOrEqual(t, v, -tol, "x[%d] must be non-negative", i)
	}
	for i := 0; i < res.System.NumRows(); i++ {
		lhs := floats.Dot(res.System.A.RawRowView(i), x)
		assert.GreaterOrEqual(t, lhs, res.System.B[i]-1e-6,
			"row %d (%s) must satisfy A·x ≥ b", i, res.System.RowLabels[i])
	}
}

// TestSolve_MaxConstraintRoundTrip: sign-convention property — when a
// maximum intake m is active and the solve succeeds, the realized intake
// n·x is ≤ m. Verifies the double negation through Formulate and the
// solver-direction flip.
func TestSolve_MaxConstraintRoundTrip(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)
	maxIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 5})
	require.NoError(t, err)

	res, err := diet.Solve(table, pv, minIntake, maxIntake, diet.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Success)

	nRow, err := table.Row("N")
	require.NoError(t, err)
	// table columns are lex-ordered F1,F2 — same as the aligned axis here.
	realized := floats.Dot(nRow, res.Quantities.Values())
	assert.GreaterOrEqual(t, realized, 3.0-1e-6, "minimum honored")
	assert.LessOrEqual(t, realized, 5.0+1e-6, "maximum honored")
}

// TestSolve_Idempotence: pure function — two invocations with identical
// inputs yield identical results, and the inputs survive unmutated.
func TestSolve_Idempotence(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)

	first, err := diet.Solve(table, pv, minIntake, nil, diet.DefaultOptions())
	require.NoError(t, err)
	second, err := diet.Solve(table, pv, minIntake, nil, diet.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Success, second.Success)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Quantities.Labels(), second.Quantities.Labels())
	assert.Equal(t, first.Quantities.Values(), second.Quantities.Values())

	// Inputs untouched.
	v, e := table.Value("N", "F2")
	require.NoError(t, e)
	assert.Equal(t, 3.0, v)
	p, ok := pv.Price("F1")
	require.True(t, ok)
	m, _ := p.Magnitude()
	assert.Equal(t, 1.0, m)
}

// TestSolve_QuantityIndexMatchesFoodAxis: property — the quantity vector's
// label set equals the final price vector's food set on success AND failure.
func TestSolve_QuantityIndexMatchesFoodAxis(t *testing.T) {
	table, pv := scenarioInputs(t)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)

	ok, err := diet.Solve(table, pv, minIntake, nil, diet.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "F2"}, ok.Quantities.Labels())

	maxIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 2})
	require.NoError(t, err)
	failed, err := diet.Solve(table, pv, minIntake, maxIntake, diet.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, ok.Quantities.Labels(), failed.Quantities.Labels(),
		"failure must preserve the quantity index set")
}

// TestSolve_MalformedInputs: nil and disjoint inputs are errors, in
// contrast to solver failures which are packaged.
func TestSolve_MalformedInputs(t *testing.T) {
	table, pv := scenarioInputs(t)

	_, err := diet.Solve(nil, pv, nil, nil, diet.DefaultOptions())
	assert.ErrorIs(t, err, diet.ErrNilInput)

	_, err = diet.Solve(table, pv, nil, nil, diet.DefaultOptions())
	assert.ErrorIs(t, err, diet.ErrNoConstraints)

	other, err := diet.PriceVectorFromValues(map[string]float64{"unrelated": 1}, "USD/hg")
	require.NoError(t, err)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)
	_, err = diet.Solve(table, other, minIntake, nil, diet.DefaultOptions())
	assert.ErrorIs(t, err, diet.ErrNoCommonFoods)
}

// TestSolve_UnitWarningPropagates: a Plain price surfaces its unit-safety
// warning on the Result without affecting the optimum.
func TestSolve_UnitWarningPropagates(t *testing.T) {
	table, _ := scenarioInputs(t)
	pv, err := diet.NewPriceVector(
		[]string{"F1", "F2"},
		[]diet.Price{diet.Plain(1.0), diet.PerUnit(2.0, "USD/hg")},
	)
	require.NoError(t, err)
	minIntake, err := tabular.SeriesFromMap(map[string]float64{"N": 3})
	require.NoError(t, err)

	res, err := diet.Solve(table, pv, minIntake, nil, diet.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "F1")
	assert.InDelta(t, 2.0, res.Cost, tol, "warning must not change the optimum")
}
