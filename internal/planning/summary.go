package planning

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/ougirez/workforce-planner/internal/domain"
)

// Summarize rolls a hiring plan into throughput, time to close and the
// revenue exposed by the shortage. totalGapFTE is the real-valued shortage;
// the aggregate figures use it rounded to whole FTE.
func (e *Engine) Summarize(totalGapFTE float64, plan []domain.HiringPlanItem) domain.HiringSummary {
	summary := domain.HiringSummary{
		RevenueAtRisk:        decimal.Zero,
		TotalRecruitmentCost: decimal.Zero,
	}
	if totalGapFTE <= 0 {
		return summary
	}

	total := roundFTE(totalGapFTE)
	summary.TotalGapFTE = total
	summary.HiringCapacityPerMonth = max(e.params.MinHiringCapacity, roundFTE(float64(total)*e.params.HiringThroughputRate))
	summary.MonthsToClose = max(e.params.MinMonthsToClose, roundFTE(float64(total)/float64(summary.HiringCapacityPerMonth)))
	summary.RevenueAtRisk = decimal.NewFromInt(int64(total)).Mul(decimal.NewFromFloat(e.params.RevenuePerFTE)).Round(2)

	for _, item := range plan {
		summary.TotalFTEPlanned += item.FTENeeded
		summary.TotalRecruitmentCost = summary.TotalRecruitmentCost.Add(item.RecruitmentCost)
		summary.LongestTimeToHireDays = max(summary.LongestTimeToHireDays, item.TimeToHireDays)
	}

	return summary
}

// ShortageFTE is the positive shortage behind a snapshot, zero on surplus.
func ShortageFTE(s domain.CapacitySnapshot) float64 {
	if !s.IsShortage() {
		return 0
	}
	return math.Abs(s.GapFTE)
}
