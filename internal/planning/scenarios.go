package planning

import (
	"fmt"
	"sort"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

// ScenarioTable binds named scenarios to demand multipliers.
type ScenarioTable map[domain.ScenarioKind]float64

func DefaultScenarios() ScenarioTable {
	return ScenarioTable{
		domain.ScenarioBaseline:             1.00,
		domain.ScenarioContractRenewal:      1.05,
		domain.ScenarioNewContractWin:       1.10,
		domain.ScenarioNetworkDensification: 1.15,
		domain.ScenarioBroadcastDecline:     0.92,
		domain.ScenarioContractLoss:         0.88,
		domain.ScenarioEfficiencyProgram:    0.85,
	}
}

// Merge returns a copy of t with overrides applied on top.
func (t ScenarioTable) Merge(overrides map[string]float64) ScenarioTable {
	merged := make(ScenarioTable, len(t)+len(overrides))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[domain.ScenarioKind(k)] = v
	}
	return merged
}

func (t ScenarioTable) Validate() error {
	if _, ok := t[domain.ScenarioBaseline]; !ok {
		return fmt.Errorf("%w: scenario table has no %q entry", constants.ErrInvalidConfiguration, domain.ScenarioBaseline)
	}
	for kind, m := range t {
		if m < 0 {
			return fmt.Errorf("%w: scenario %q has negative multiplier %v", constants.ErrInvalidConfiguration, kind, m)
		}
	}
	return nil
}

func (t ScenarioTable) Multiplier(kind domain.ScenarioKind) (float64, error) {
	if kind == "" {
		return 0, fmt.Errorf("%w: scenario is not selected", constants.ErrInvalidConfiguration)
	}
	m, ok := t[kind]
	if !ok {
		return 0, fmt.Errorf("%w: unknown scenario %q", constants.ErrInvalidConfiguration, kind)
	}
	return m, nil
}

// List returns scenarios ordered by multiplier, then by name.
func (t ScenarioTable) List() []domain.Scenario {
	res := make([]domain.Scenario, 0, len(t))
	for kind, m := range t {
		res = append(res, domain.Scenario{Kind: kind, Multiplier: m})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Multiplier != res[j].Multiplier {
			return res[i].Multiplier < res[j].Multiplier
		}
		return res[i].Kind < res[j].Kind
	})
	return res
}
