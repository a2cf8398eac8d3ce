package dto

import "github.com/ougirez/workforce-planner/internal/domain"

type EvaluateScenarioRequest struct {
	RegionID         int64  `json:"region_id" validate:"required,gt=0"`
	Scenario         string `json:"scenario" validate:"required"`
	HorizonMonths    int    `json:"horizon_months" validate:"required"`
	IncludeAttrition bool   `json:"include_attrition"`
}

func (r *EvaluateScenarioRequest) ToConfig() domain.ScenarioConfig {
	return domain.ScenarioConfig{
		RegionID:         r.RegionID,
		Scenario:         domain.ScenarioKind(r.Scenario),
		HorizonMonths:    r.HorizonMonths,
		IncludeAttrition: r.IncludeAttrition,
	}
}

type CompareScenariosRequest struct {
	RegionID         int64 `param:"id" validate:"gt=0"`
	HorizonMonths    int   `query:"horizon_months" validate:"required"`
	IncludeAttrition bool  `query:"include_attrition"`
}

type CompareScenariosResponse struct {
	RegionID         int64                    `json:"region_id"`
	HorizonMonths    int                      `json:"horizon_months"`
	IncludeAttrition bool                     `json:"include_attrition"`
	Results          []*domain.ScenarioResult `json:"results"`
}

type ListSkillsRequest struct {
	OnlyActive bool `query:"only_active"`
}
