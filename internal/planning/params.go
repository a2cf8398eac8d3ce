// Package planning is the workforce capacity/demand scenario engine.
//
// Every function here is a pure transformation of its inputs and the
// immutable Params/tables an Engine is built with. Nothing touches the
// warehouse, the clock or a random source, so an *Engine is safe for
// concurrent use and identical inputs always produce identical results.
package planning

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

// Known organisation headcount and the population it serves. Used to derive
// capacity for regions with no usable headcount figure.
const (
	knownHeadcount        = 1500
	addressablePopulation = 68_000_000
)

// Params holds every tunable constant consumed by the formulas.
type Params struct {
	// ContractorBuffer is added on top of employee headcount.
	ContractorBuffer float64 `mapstructure:"contractor_buffer" validate:"gte=0,lte=1"`
	// MinEmployeeCount is the plausibility floor below which headcount is ignored.
	MinEmployeeCount int64 `mapstructure:"min_employee_count" validate:"gte=0"`
	// EmployeeDensity is FTE per inhabitant for the population fallback.
	EmployeeDensity float64 `mapstructure:"employee_density" validate:"gte=0"`
	GrowthFactor    float64 `mapstructure:"growth_factor" validate:"gte=0"`

	// AttritionRate is the annualized fraction of the workforce leaving.
	AttritionRate    float64 `mapstructure:"attrition_rate" validate:"gte=0,lte=1"`
	MinHorizonMonths int     `mapstructure:"min_horizon_months" validate:"gte=1"`
	MaxHorizonMonths int     `mapstructure:"max_horizon_months" validate:"gtefield=MinHorizonMonths"`

	RecruitmentRateFloor   float64 `mapstructure:"recruitment_rate_floor" validate:"gte=0"`
	RecruitmentRateCeiling float64 `mapstructure:"recruitment_rate_ceiling" validate:"gtefield=RecruitmentRateFloor"`
	RecruitmentBaseSalary  float64 `mapstructure:"recruitment_base_salary" validate:"gte=0"`
	RecruitmentSalarySpan  float64 `mapstructure:"recruitment_salary_span" validate:"gt=0"`

	CriticalWeight float64 `mapstructure:"critical_weight"`
	HighWeight     float64 `mapstructure:"high_weight" validate:"ltefield=CriticalWeight"`

	// ReconcileAllocation enables the largest-remainder pass so per-skill
	// FTE sum to the rounded shortage.
	ReconcileAllocation bool `mapstructure:"reconcile_allocation"`

	// HiringThroughputRate is the share of the shortage onboarded per month.
	HiringThroughputRate float64 `mapstructure:"hiring_throughput_rate" validate:"gt=0"`
	MinHiringCapacity    int     `mapstructure:"min_hiring_capacity" validate:"gte=1"`
	MinMonthsToClose     int     `mapstructure:"min_months_to_close" validate:"gte=0"`

	// RevenuePerFTE is annual revenue per FTE from financial reporting, EUR.
	RevenuePerFTE float64 `mapstructure:"revenue_per_fte" validate:"gte=0"`
}

func DefaultParams() Params {
	return Params{
		ContractorBuffer: 0.10,
		MinEmployeeCount: 50,
		EmployeeDensity:  float64(knownHeadcount) / float64(addressablePopulation),
		GrowthFactor:     1.08,

		AttritionRate:    0.07,
		MinHorizonMonths: 3,
		MaxHorizonMonths: 18,

		RecruitmentRateFloor:   0.15,
		RecruitmentRateCeiling: 0.18,
		RecruitmentBaseSalary:  38000,
		RecruitmentSalarySpan:  500000,

		CriticalWeight: 85,
		HighWeight:     75,

		HiringThroughputRate: 0.15,
		MinHiringCapacity:    2,
		MinMonthsToClose:     2,

		RevenuePerFTE: 320000,
	}
}

var paramsValidator = validator.New()

func (p Params) Validate() error {
	if err := paramsValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: planning params: %s", constants.ErrInvalidConfiguration, err.Error())
	}
	return nil
}
