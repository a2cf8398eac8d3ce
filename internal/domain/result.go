package domain

import "github.com/shopspring/decimal"

type CapacitySource string

const (
	CapacityFromHeadcount  CapacitySource = "headcount"
	CapacityFromPopulation CapacitySource = "population"
)

type DemandSource string

const (
	DemandFromForecast     DemandSource = "forecast"
	DemandFromGrowthFactor DemandSource = "growth_factor"
)

type PriorityTier string

const (
	PriorityCritical PriorityTier = "Critical"
	PriorityHigh     PriorityTier = "High"
	PriorityNormal   PriorityTier = "Normal"
)

type SkillBenchmark struct {
	Weight         float64         `json:"weight"`
	Salary         decimal.Decimal `json:"salary"`
	TimeToHireDays int             `json:"time_to_hire_days"`
}

// CapacitySnapshot is the gap between effective capacity and scenario demand.
// GapFTE is negative on shortage.
type CapacitySnapshot struct {
	CapacityFTE          float64        `json:"capacity_fte"`
	DemandFTE            float64        `json:"demand_fte"`
	ScenarioMultiplier   float64        `json:"scenario_multiplier"`
	ScenarioDemandFTE    float64        `json:"scenario_demand_fte"`
	AttritionImpactFTE   float64        `json:"attrition_impact_fte"`
	EffectiveCapacityFTE float64        `json:"effective_capacity_fte"`
	GapFTE               float64        `json:"gap_fte"`
	GapPct               float64        `json:"gap_pct"`
	CapacitySource       CapacitySource `json:"capacity_source"`
	DemandSource         DemandSource   `json:"demand_source"`
}

func (s CapacitySnapshot) IsShortage() bool {
	return s.GapFTE < 0
}

type HiringPlanItem struct {
	SkillID         string          `json:"skill_id,omitempty"`
	SkillName       string          `json:"skill_name"`
	FTENeeded       int             `json:"fte_needed"`
	CurrentFTE      *int64          `json:"current_fte,omitempty"`
	Weight          float64         `json:"weight"`
	SalaryBenchmark decimal.Decimal `json:"salary_benchmark"`
	RecruitmentRate decimal.Decimal `json:"recruitment_rate"`
	RecruitmentCost decimal.Decimal `json:"recruitment_cost"`
	TimeToHireDays  int             `json:"time_to_hire_days"`
	PriorityTier    PriorityTier    `json:"priority_tier"`
}

type HiringSummary struct {
	TotalGapFTE            int             `json:"total_gap_fte"`
	HiringCapacityPerMonth int             `json:"hiring_capacity_per_month"`
	MonthsToClose          int             `json:"months_to_close"`
	RevenueAtRisk          decimal.Decimal `json:"revenue_at_risk"`
	TotalFTEPlanned        int             `json:"total_fte_planned"`
	TotalRecruitmentCost   decimal.Decimal `json:"total_recruitment_cost"`
	LongestTimeToHireDays  int             `json:"longest_time_to_hire_days"`
}

type ScenarioResult struct {
	Region           Region           `json:"region"`
	Config           ScenarioConfig   `json:"config"`
	Snapshot         CapacitySnapshot `json:"snapshot"`
	HiringPlan       []HiringPlanItem `json:"hiring_plan"`
	Summary          HiringSummary    `json:"summary"`
	BenchmarkVersion string           `json:"benchmark_version"`
}

// SkillProfile is a catalog row with the benchmark it resolves to.
type SkillProfile struct {
	SkillCategory
	BenchmarkID  string         `json:"benchmark_id,omitempty"`
	Benchmark    SkillBenchmark `json:"benchmark"`
	PriorityTier PriorityTier   `json:"priority_tier"`
}
