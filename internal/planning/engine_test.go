package planning_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/planning"
)

const eps = 1e-9

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func referenceRegion() domain.Region {
	return domain.Region{
		ID:                  7,
		Name:                "Île-de-France",
		Population:          12_300_000,
		ActiveEmployeeCount: int64Ptr(1500),
		AvgUtilizationPct:   float64Ptr(87),
	}
}

func referenceInput(kind domain.ScenarioKind) planning.EvaluationInput {
	return planning.EvaluationInput{
		Region: referenceRegion(),
		Config: domain.ScenarioConfig{
			RegionID:         7,
			Scenario:         kind,
			HorizonMonths:    12,
			IncludeAttrition: true,
		},
	}
}

func TestEvaluateBaselineShortage(t *testing.T) {
	e := planning.MustDefaultEngine()

	res, err := e.Evaluate(referenceInput(domain.ScenarioBaseline))
	require.NoError(t, err)

	s := res.Snapshot
	assert.InDelta(t, 1650, s.CapacityFTE, eps)
	assert.InDelta(t, 1782, s.DemandFTE, eps)
	assert.InDelta(t, 1782, s.ScenarioDemandFTE, eps)
	assert.InDelta(t, 115.5, s.AttritionImpactFTE, eps)
	assert.InDelta(t, 1534.5, s.EffectiveCapacityFTE, eps)
	assert.InDelta(t, -247.5, s.GapFTE, eps)
	assert.InDelta(t, -247.5/1782*100, s.GapPct, eps)
	assert.Equal(t, s.EffectiveCapacityFTE-s.ScenarioDemandFTE, s.GapFTE)
	assert.Equal(t, domain.CapacityFromHeadcount, s.CapacitySource)
	assert.Equal(t, domain.DemandFromGrowthFactor, s.DemandSource)

	require.NotEmpty(t, res.HiringPlan)
	assert.Equal(t, 248, res.Summary.TotalGapFTE)
	assert.Equal(t, 37, res.Summary.HiringCapacityPerMonth)
	assert.Equal(t, 7, res.Summary.MonthsToClose)
	assert.True(t, decimal.NewFromInt(79_360_000).Equal(res.Summary.RevenueAtRisk), res.Summary.RevenueAtRisk.String())
	assert.Equal(t, "2024.2", res.BenchmarkVersion)
}

func TestEvaluateContractLossShrinksShortage(t *testing.T) {
	e := planning.MustDefaultEngine()

	res, err := e.Evaluate(referenceInput(domain.ScenarioContractLoss))
	require.NoError(t, err)

	assert.InDelta(t, 1568.16, res.Snapshot.ScenarioDemandFTE, eps)
	assert.InDelta(t, -33.66, res.Snapshot.GapFTE, eps)
	assert.Equal(t, 34, res.Summary.TotalGapFTE)
	assert.Equal(t, 5, res.Summary.HiringCapacityPerMonth)
	assert.Equal(t, 7, res.Summary.MonthsToClose)
}

func TestEvaluateSurplusHasEmptyPlan(t *testing.T) {
	e := planning.MustDefaultEngine()

	in := referenceInput(domain.ScenarioEfficiencyProgram)
	in.Config.IncludeAttrition = false

	res, err := e.Evaluate(in)
	require.NoError(t, err)

	// 1650 - 1782*0.85 = 135.3
	assert.InDelta(t, 135.3, res.Snapshot.GapFTE, 1e-6)
	assert.NotNil(t, res.HiringPlan)
	assert.Empty(t, res.HiringPlan)
	assert.Zero(t, res.Summary.TotalGapFTE)
	assert.True(t, res.Summary.RevenueAtRisk.IsZero())
}

func TestEvaluateUsesForecastWhenPresent(t *testing.T) {
	e := planning.MustDefaultEngine()

	in := referenceInput(domain.ScenarioBaseline)
	in.Forecast = float64Ptr(1600)

	res, err := e.Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, domain.DemandFromForecast, res.Snapshot.DemandSource)
	assert.InDelta(t, 1600, res.Snapshot.DemandFTE, eps)
	assert.InDelta(t, 1534.5-1600, res.Snapshot.GapFTE, eps)
}

func TestEvaluateRejectsContractViolations(t *testing.T) {
	e := planning.MustDefaultEngine()

	tests := map[string]func(in *planning.EvaluationInput){
		"negative population": func(in *planning.EvaluationInput) { in.Region.Population = -1 },
		"horizon below range": func(in *planning.EvaluationInput) { in.Config.HorizonMonths = 2 },
		"horizon above range": func(in *planning.EvaluationInput) { in.Config.HorizonMonths = 19 },
		"negative horizon":    func(in *planning.EvaluationInput) { in.Config.HorizonMonths = -6 },
		"empty scenario":      func(in *planning.EvaluationInput) { in.Config.Scenario = "" },
		"unknown scenario":    func(in *planning.EvaluationInput) { in.Config.Scenario = "hostile_takeover" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := referenceInput(domain.ScenarioBaseline)
			mutate(&in)

			res, err := e.Evaluate(in)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, constants.ErrInvalidConfiguration)
		})
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := planning.MustDefaultEngine()

	in := referenceInput(domain.ScenarioNetworkDensification)
	in.Catalog = []domain.SkillCategory{
		{ID: 1, Name: "Tower Climbing", IsActive: true, CurrentFTE: int64Ptr(120)},
		{ID: 2, Name: "RF Optimisation", IsActive: true},
		{ID: 3, SkillID: "project_manager", Name: "Programme Office", IsActive: true},
	}

	first, err := e.Evaluate(in)
	require.NoError(t, err)
	second, err := e.Evaluate(in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGapMonotonicInMultiplier(t *testing.T) {
	e := planning.MustDefaultEngine()

	scenarios := e.Scenarios()
	require.Greater(t, len(scenarios), 1)

	for _, attrition := range []bool{false, true} {
		prev := e.ComputeGap(1650, 1782, scenarios[0].Multiplier, 12, attrition).GapFTE
		for _, sc := range scenarios[1:] {
			gap := e.ComputeGap(1650, 1782, sc.Multiplier, 12, attrition).GapFTE
			assert.Less(t, gap, prev, "scenario %s", sc.Kind)
			prev = gap
		}
	}
}

func TestAttritionNeverIncreasesGap(t *testing.T) {
	e := planning.MustDefaultEngine()

	for _, sc := range e.Scenarios() {
		for horizon := 3; horizon <= 18; horizon++ {
			without := e.ComputeGap(1650, 1782, sc.Multiplier, horizon, false)
			with := e.ComputeGap(1650, 1782, sc.Multiplier, horizon, true)
			assert.LessOrEqual(t, with.GapFTE, without.GapFTE)
		}
	}
}

func TestComputeGapZeroDemand(t *testing.T) {
	e := planning.MustDefaultEngine()

	s := e.ComputeGap(10, 0, 1.15, 6, false)
	assert.Equal(t, 10.0, s.GapFTE)
	assert.Zero(t, s.GapPct)
	assert.Zero(t, s.AttritionImpactFTE)
}

func TestEstimateBaseline(t *testing.T) {
	e := planning.MustDefaultEngine()
	density := planning.DefaultParams().EmployeeDensity

	tests := map[string]struct {
		region   domain.Region
		forecast *float64
		capacity float64
		demand   float64
		capSrc   domain.CapacitySource
		demSrc   domain.DemandSource
	}{
		"headcount above floor": {
			region:   domain.Region{Population: 1_000_000, ActiveEmployeeCount: int64Ptr(200)},
			capacity: 220,
			demand:   220 * 1.08,
			capSrc:   domain.CapacityFromHeadcount,
			demSrc:   domain.DemandFromGrowthFactor,
		},
		"headcount at floor falls back to population": {
			region:   domain.Region{Population: 1_000_000, ActiveEmployeeCount: int64Ptr(50)},
			capacity: 1_000_000 * density,
			demand:   1_000_000 * density * 1.08,
			capSrc:   domain.CapacityFromPopulation,
			demSrc:   domain.DemandFromGrowthFactor,
		},
		"missing headcount": {
			region:   domain.Region{Population: 68_000_000},
			capacity: 1500,
			demand:   1500 * 1.08,
			capSrc:   domain.CapacityFromPopulation,
			demSrc:   domain.DemandFromGrowthFactor,
		},
		"forecast overrides growth factor": {
			region:   domain.Region{Population: 68_000_000},
			forecast: float64Ptr(1700),
			capacity: 1500,
			demand:   1700,
			capSrc:   domain.CapacityFromPopulation,
			demSrc:   domain.DemandFromForecast,
		},
		"negative forecast is ignored": {
			region:   domain.Region{Population: 68_000_000},
			forecast: float64Ptr(-5),
			capacity: 1500,
			demand:   1500 * 1.08,
			capSrc:   domain.CapacityFromPopulation,
			demSrc:   domain.DemandFromGrowthFactor,
		},
		"empty region": {
			region: domain.Region{},
			capSrc: domain.CapacityFromPopulation,
			demSrc: domain.DemandFromGrowthFactor,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := e.EstimateBaseline(tt.region, tt.forecast)
			assert.InDelta(t, tt.capacity, b.CapacityFTE, 1e-6)
			assert.InDelta(t, tt.demand, b.DemandFTE, 1e-6)
			assert.GreaterOrEqual(t, b.CapacityFTE, 0.0)
			assert.GreaterOrEqual(t, b.DemandFTE, 0.0)
			assert.Equal(t, tt.capSrc, b.CapacitySource)
			assert.Equal(t, tt.demSrc, b.DemandSource)
		})
	}
}

func TestNewEngineRejectsBadParams(t *testing.T) {
	params := planning.DefaultParams()
	params.RecruitmentRateCeiling = 0.1

	_, err := planning.NewEngine(params, planning.DefaultScenarios(), nil)
	assert.ErrorIs(t, err, constants.ErrInvalidConfiguration)

	_, err = planning.NewEngine(planning.DefaultParams(), planning.ScenarioTable{"contract_loss": 0.88}, nil)
	assert.ErrorIs(t, err, constants.ErrInvalidConfiguration)
}
