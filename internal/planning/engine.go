package planning

import (
	"fmt"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

type Engine struct {
	params     Params
	scenarios  ScenarioTable
	benchmarks *BenchmarkTable
}

// EvaluationInput bundles the facts collaborators supplied for one evaluation.
// Catalog may be empty and Forecast nil.
type EvaluationInput struct {
	Region   domain.Region
	Config   domain.ScenarioConfig
	Catalog  []domain.SkillCategory
	Forecast *float64
}

func NewEngine(params Params, scenarios ScenarioTable, benchmarks *BenchmarkTable) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := scenarios.Validate(); err != nil {
		return nil, err
	}
	if benchmarks == nil {
		benchmarks = DefaultBenchmarkTable()
	}
	if err := benchmarks.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		params:     params,
		scenarios:  scenarios.Merge(nil),
		benchmarks: benchmarks,
	}, nil
}

// MustDefaultEngine builds an engine from built-in defaults.
func MustDefaultEngine() *Engine {
	e, err := NewEngine(DefaultParams(), DefaultScenarios(), DefaultBenchmarkTable())
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Params() Params {
	return e.params
}

func (e *Engine) Scenarios() []domain.Scenario {
	return e.scenarios.List()
}

func (e *Engine) BenchmarkVersion() string {
	return e.benchmarks.Version
}

// Validate rejects caller bugs; absent data is never an error.
func (e *Engine) Validate(in EvaluationInput) error {
	if in.Region.Population < 0 {
		return fmt.Errorf("%w: region %d has negative population %d", constants.ErrInvalidConfiguration, in.Region.ID, in.Region.Population)
	}
	if h := in.Config.HorizonMonths; h < e.params.MinHorizonMonths || h > e.params.MaxHorizonMonths {
		return fmt.Errorf("%w: horizon_months must be within [%d, %d], got %d",
			constants.ErrInvalidConfiguration, e.params.MinHorizonMonths, e.params.MaxHorizonMonths, h)
	}
	if _, err := e.scenarios.Multiplier(in.Config.Scenario); err != nil {
		return err
	}
	return nil
}

// Evaluate runs baseline, gap, allocation and summary for one scenario.
func (e *Engine) Evaluate(in EvaluationInput) (*domain.ScenarioResult, error) {
	if err := e.Validate(in); err != nil {
		return nil, err
	}

	multiplier, _ := e.scenarios.Multiplier(in.Config.Scenario)

	baseline := e.EstimateBaseline(in.Region, in.Forecast)
	snapshot := e.ComputeGap(baseline.CapacityFTE, baseline.DemandFTE, multiplier, in.Config.HorizonMonths, in.Config.IncludeAttrition)
	snapshot.CapacitySource = baseline.CapacitySource
	snapshot.DemandSource = baseline.DemandSource

	shortage := ShortageFTE(snapshot)
	plan := e.AllocateHiring(shortage, in.Catalog)

	return &domain.ScenarioResult{
		Region:           in.Region,
		Config:           in.Config,
		Snapshot:         snapshot,
		HiringPlan:       plan,
		Summary:          e.Summarize(shortage, plan),
		BenchmarkVersion: e.benchmarks.Version,
	}, nil
}

// DescribeSkill resolves the benchmark and tier a catalog row is planned with.
func (e *Engine) DescribeSkill(skill domain.SkillCategory) domain.SkillProfile {
	id, b := e.benchmarks.Resolve(skill)
	return domain.SkillProfile{
		SkillCategory: skill,
		BenchmarkID:   id,
		Benchmark:     b,
		PriorityTier:  e.PriorityTier(b.Weight),
	}
}
