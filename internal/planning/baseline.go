package planning

import "github.com/ougirez/workforce-planner/internal/domain"

type Baseline struct {
	CapacityFTE    float64
	DemandFTE      float64
	CapacitySource domain.CapacitySource
	DemandSource   domain.DemandSource
}

// EstimateBaseline derives current capacity and default demand for a region.
// Missing facts never fail: headcount falls back to population density and a
// missing (or negative) forecast falls back to the growth factor.
func (e *Engine) EstimateBaseline(region domain.Region, forecast *float64) Baseline {
	var b Baseline

	if region.ActiveEmployeeCount != nil && *region.ActiveEmployeeCount > e.params.MinEmployeeCount {
		count := float64(*region.ActiveEmployeeCount)
		b.CapacityFTE = count + count*e.params.ContractorBuffer
		b.CapacitySource = domain.CapacityFromHeadcount
	} else {
		b.CapacityFTE = float64(max(region.Population, 0)) * e.params.EmployeeDensity
		b.CapacitySource = domain.CapacityFromPopulation
	}

	if forecast != nil && *forecast >= 0 {
		b.DemandFTE = *forecast
		b.DemandSource = domain.DemandFromForecast
	} else {
		b.DemandFTE = b.CapacityFTE * e.params.GrowthFactor
		b.DemandSource = domain.DemandFromGrowthFactor
	}

	return b
}
