package planning

import "github.com/ougirez/workforce-planner/internal/domain"

const monthsPerYear = 12

// ComputeGap applies the scenario multiplier to demand and attrition decay to
// capacity. GapFTE is always exactly EffectiveCapacityFTE - ScenarioDemandFTE.
func (e *Engine) ComputeGap(capacityFTE, demandFTE, multiplier float64, horizonMonths int, includeAttrition bool) domain.CapacitySnapshot {
	s := domain.CapacitySnapshot{
		CapacityFTE:          capacityFTE,
		DemandFTE:            demandFTE,
		ScenarioMultiplier:   multiplier,
		ScenarioDemandFTE:    demandFTE * multiplier,
		EffectiveCapacityFTE: capacityFTE,
	}

	if includeAttrition {
		s.AttritionImpactFTE = capacityFTE * e.params.AttritionRate * (float64(horizonMonths) / monthsPerYear)
		s.EffectiveCapacityFTE = capacityFTE - s.AttritionImpactFTE
	}

	s.GapFTE = s.EffectiveCapacityFTE - s.ScenarioDemandFTE
	if s.ScenarioDemandFTE != 0 {
		s.GapPct = s.GapFTE / s.ScenarioDemandFTE * 100
	}

	return s
}
