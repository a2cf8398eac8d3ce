package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ougirez/workforce-planner/internal/domain"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))

func renderJSON(w io.Writer, res *domain.ScenarioResult) error {
	data, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("sonic.MarshalIndent: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderTable(w io.Writer, res *domain.ScenarioResult) error {
	s := res.Snapshot
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s / %s / %d months", res.Region.Name, res.Config.Scenario, res.Config.HorizonMonths)))
	fmt.Fprintf(w, "capacity %.1f (%s), demand %.1f (%s) x %.2f = %.1f\n",
		s.CapacityFTE, s.CapacitySource, s.DemandFTE, s.DemandSource, s.ScenarioMultiplier, s.ScenarioDemandFTE)
	fmt.Fprintf(w, "attrition %.1f, effective capacity %.1f, gap %.1f fte (%.1f%%)\n",
		s.AttritionImpactFTE, s.EffectiveCapacityFTE, s.GapFTE, s.GapPct)

	if len(res.HiringPlan) == 0 {
		_, err := fmt.Fprintln(w, "no hiring needed")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SKILL", "FTE", "WEIGHT", "SALARY", "RATE", "COST", "DAYS", "PRIORITY")
	for _, item := range res.HiringPlan {
		t.Row(
			item.SkillName,
			strconv.Itoa(item.FTENeeded),
			strconv.FormatFloat(item.Weight, 'f', 0, 64),
			item.SalaryBenchmark.StringFixed(0),
			item.RecruitmentRate.StringFixed(3),
			item.RecruitmentCost.StringFixed(2),
			strconv.Itoa(item.TimeToHireDays),
			string(item.PriorityTier),
		)
	}
	fmt.Fprintln(w, t.String())

	sum := res.Summary
	_, err := fmt.Fprintf(w, "total gap %d fte, planned %d, %d/month, %d months to close, cost %s, revenue at risk %s, benchmarks %s\n",
		sum.TotalGapFTE, sum.TotalFTEPlanned, sum.HiringCapacityPerMonth, sum.MonthsToClose,
		sum.TotalRecruitmentCost.StringFixed(2), sum.RevenueAtRisk.StringFixed(2), res.BenchmarkVersion)
	return err
}
