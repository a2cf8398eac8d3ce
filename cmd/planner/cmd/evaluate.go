package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/config"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
	"github.com/ougirez/workforce-planner/internal/planning"
)

var evalFlags struct {
	regionName  string
	population  int64
	employees   int64
	utilization float64
	forecast    float64
	scenario    string
	horizon     int
	attrition   bool
	skills      []string
	format      string
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one scenario offline from region facts given as flags",
	Long: `Evaluate runs the planning engine without the warehouse. Region facts
come from flags; leave --employees unset to estimate capacity from population
and --forecast unset to grow current capacity instead.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evalFlags.regionName, "region", "offline", "region name shown in the result")
	f.Int64Var(&evalFlags.population, "population", 0, "region population")
	f.Int64Var(&evalFlags.employees, "employees", 0, "active employee headcount")
	f.Float64Var(&evalFlags.utilization, "utilization", 0, "average utilization, percent")
	f.Float64Var(&evalFlags.forecast, "forecast", 0, "forecast demand in FTE for the horizon")
	f.StringVarP(&evalFlags.scenario, "scenario", "s", string(domain.ScenarioBaseline), "scenario kind")
	f.IntVar(&evalFlags.horizon, "horizon", 12, "planning horizon in months, 3 to 18")
	f.BoolVar(&evalFlags.attrition, "attrition", false, "apply attrition over the horizon")
	f.StringSliceVar(&evalFlags.skills, "skills", nil, "active skill names, comma separated")
	f.StringVarP(&evalFlags.format, "format", "f", "json", "output format (json, table)")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := logger.WithFields(context.Background(), "scenario", evalFlags.scenario)

	engine, err := config.NewEngine()
	if err != nil {
		return fmt.Errorf("config.NewEngine: %w", err)
	}

	in := evaluationInput(cmd)
	logger.Debugf(ctx, "evaluating offline, %d catalog skills", len(in.Catalog))

	res, err := engine.Evaluate(in)
	if err != nil {
		return err
	}

	switch strings.ToLower(evalFlags.format) {
	case "json":
		return renderJSON(cmd.OutOrStdout(), res)
	case "table":
		return renderTable(cmd.OutOrStdout(), res)
	default:
		return fmt.Errorf("unknown output format %q", evalFlags.format)
	}
}

func evaluationInput(cmd *cobra.Command) planning.EvaluationInput {
	flags := cmd.Flags()

	region := domain.Region{Name: evalFlags.regionName, Population: evalFlags.population}
	if flags.Changed("employees") {
		employees := evalFlags.employees
		region.ActiveEmployeeCount = &employees
	}
	if flags.Changed("utilization") {
		utilization := evalFlags.utilization
		region.AvgUtilizationPct = &utilization
	}

	var forecast *float64
	if flags.Changed("forecast") {
		v := evalFlags.forecast
		forecast = &v
	}

	catalog := make([]domain.SkillCategory, 0, len(evalFlags.skills))
	for i, name := range evalFlags.skills {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		catalog = append(catalog, domain.SkillCategory{ID: int64(i + 1), Name: name, IsActive: true})
	}

	return planning.EvaluationInput{
		Region: region,
		Config: domain.ScenarioConfig{
			Scenario:         domain.ScenarioKind(evalFlags.scenario),
			HorizonMonths:    evalFlags.horizon,
			IncludeAttrition: evalFlags.attrition,
		},
		Catalog:  catalog,
		Forecast: forecast,
	}
}
