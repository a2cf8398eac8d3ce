package domain

type Region struct {
	ID                  int64    `db:"id" json:"id"`
	Name                string   `db:"region_name" json:"name"`
	Population          int64    `db:"population" json:"population"`
	ActiveEmployeeCount *int64   `db:"active_employee_count" json:"active_employee_count,omitempty"`
	AvgUtilizationPct   *float64 `db:"avg_utilization_pct" json:"avg_utilization_pct,omitempty"`
}

// SkillCategory is a row of the skill catalog. SkillID keys into the
// benchmark table and may be empty for legacy rows.
type SkillCategory struct {
	ID         int64  `db:"id" json:"id"`
	SkillID    string `db:"skill_id" json:"skill_id"`
	Name       string `db:"skill_name" json:"name"`
	IsActive   bool   `db:"is_active" json:"is_active"`
	CurrentFTE *int64 `db:"current_fte" json:"current_fte,omitempty"`
}

type DemandForecast struct {
	RegionID      int64   `db:"region_id" json:"region_id"`
	HorizonMonths int     `db:"horizon_months" json:"horizon_months"`
	DemandFTE     float64 `db:"demand_fte" json:"demand_fte"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
