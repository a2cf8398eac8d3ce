package planning_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/planning"
)

func TestDefaultBenchmarkTableIsValid(t *testing.T) {
	require.NoError(t, planning.DefaultBenchmarkTable().Validate())
}

func TestBenchmarkResolve(t *testing.T) {
	table := planning.DefaultBenchmarkTable()

	tests := map[string]struct {
		skill  domain.SkillCategory
		wantID string
		weight float64
	}{
		"by skill id wins over name": {
			skill:  domain.SkillCategory{SkillID: "project_manager", Name: "Tower Crew"},
			wantID: "project_manager",
			weight: 72,
		},
		"keyword": {
			skill:  domain.SkillCategory{Name: "Radio Planning"},
			wantID: "rf_engineer",
			weight: 88,
		},
		"keyword is case insensitive": {
			skill:  domain.SkillCategory{Name: "TOWER CLIMBING"},
			wantID: "tower_climber",
			weight: 90,
		},
		"first rule wins": {
			skill:  domain.SkillCategory{Name: "Fiber Network Splicer"},
			wantID: "fiber_technician",
			weight: 85,
		},
		"multi word keyword": {
			skill:  domain.SkillCategory{Name: "Data-Center Operations"},
			wantID: "datacenter_technician",
			weight: 76,
		},
		"short keyword needs a word boundary": {
			skill:  domain.SkillCategory{Name: "Platform Performance"},
			wantID: "",
			weight: 65,
		},
		"short keyword as a word": {
			skill:  domain.SkillCategory{Name: "NOC Shift Lead"},
			wantID: "network_operations",
			weight: 82,
		},
		"plural contains keyword": {
			skill:  domain.SkillCategory{Name: "Towers & Masts"},
			wantID: "tower_climber",
			weight: 90,
		},
		"climb prefix": {
			skill:  domain.SkillCategory{Name: "Climbers"},
			wantID: "tower_climber",
			weight: 90,
		},
		"compound word": {
			skill:  domain.SkillCategory{Name: "Radiocommunications"},
			wantID: "rf_engineer",
			weight: 88,
		},
		"antennas": {
			skill:  domain.SkillCategory{Name: "Antennas"},
			wantID: "rf_engineer",
			weight: 88,
		},
		"fibers": {
			skill:  domain.SkillCategory{Name: "Fibers"},
			wantID: "fiber_technician",
			weight: 85,
		},
		"networking": {
			skill:  domain.SkillCategory{Name: "Networking"},
			wantID: "network_operations",
			weight: 82,
		},
		"unknown skill id falls through to keywords": {
			skill:  domain.SkillCategory{SkillID: "legacy-42", Name: "Power Supply"},
			wantID: "power_systems",
			weight: 80,
		},
		"default bucket": {
			skill:  domain.SkillCategory{Name: "Legal Counsel"},
			wantID: "",
			weight: 65,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, b := table.Resolve(tt.skill)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.weight, b.Weight)
		})
	}
}

const benchmarksYAML = `
version: "2025.1"
skills:
  tower_climber: {weight: 92, salary: 39000, time_to_hire_days: 40}
  rf_engineer: {weight: 87, salary: 53000, time_to_hire_days: 60}
keywords:
  - {keyword: Tower, skill_id: tower_climber}
  - {keyword: rf, skill_id: rf_engineer}
default: {weight: 60, salary: 41000, time_to_hire_days: 44}
default_roles:
  - {skill_id: tower_climber, name: Tower Climber, proportion: 0.6}
  - {skill_id: rf_engineer, name: RF Engineer, proportion: 0.4}
`

func TestLoadBenchmarkTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(benchmarksYAML), 0o644))

	table, err := planning.LoadBenchmarkTable(path)
	require.NoError(t, err)

	assert.Equal(t, "2025.1", table.Version)
	assert.Equal(t, 92.0, table.Skills["tower_climber"].Weight)
	assert.Equal(t, "39000", table.Skills["tower_climber"].Salary.String())
	assert.Len(t, table.DefaultRoles, 2)

	id, b := table.Resolve(domain.SkillCategory{Name: "tower works"})
	assert.Equal(t, "tower_climber", id)
	assert.Equal(t, 40, b.TimeToHireDays)

	e, err := planning.NewEngine(planning.DefaultParams(), planning.DefaultScenarios(), table)
	require.NoError(t, err)
	assert.Equal(t, "2025.1", e.BenchmarkVersion())

	plan := e.AllocateHiring(10, nil)
	require.Len(t, plan, 2)
	assert.Equal(t, 6, plan[0].FTENeeded)
	assert.Equal(t, 4, plan[1].FTENeeded)
}

func TestParseBenchmarkTableRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"missing version": `
skills: {a: {weight: 50, salary: 1, time_to_hire_days: 1}}
default: {weight: 50, salary: 1, time_to_hire_days: 1}
default_roles: [{skill_id: a, name: A, proportion: 1}]`,
		"weight above 100": `
version: v1
skills: {a: {weight: 150, salary: 1, time_to_hire_days: 1}}
default: {weight: 50, salary: 1, time_to_hire_days: 1}
default_roles: [{skill_id: a, name: A, proportion: 1}]`,
		"keyword to unknown skill": `
version: v1
skills: {a: {weight: 50, salary: 1, time_to_hire_days: 1}}
keywords: [{keyword: x, skill_id: b}]
default: {weight: 50, salary: 1, time_to_hire_days: 1}
default_roles: [{skill_id: a, name: A, proportion: 1}]`,
		"proportions do not sum to one": `
version: v1
skills: {a: {weight: 50, salary: 1, time_to_hire_days: 1}}
default: {weight: 50, salary: 1, time_to_hire_days: 1}
default_roles: [{skill_id: a, name: A, proportion: 0.7}]`,
		"not yaml": `version: [`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := planning.ParseBenchmarkTable([]byte(doc))
			assert.ErrorIs(t, err, constants.ErrInvalidConfiguration)
		})
	}
}

func TestScenarioTable(t *testing.T) {
	table := planning.DefaultScenarios().Merge(map[string]float64{
		"contract_loss": 0.80,
		"site_merger":   0.95,
	})
	require.NoError(t, table.Validate())

	m, err := table.Multiplier(domain.ScenarioContractLoss)
	require.NoError(t, err)
	assert.Equal(t, 0.80, m)

	m, err = table.Multiplier("site_merger")
	require.NoError(t, err)
	assert.Equal(t, 0.95, m)

	_, err = table.Multiplier("")
	assert.ErrorIs(t, err, constants.ErrInvalidConfiguration)

	list := table.List()
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Multiplier, list[i].Multiplier)
	}

	// the source table is untouched
	m, _ = planning.DefaultScenarios().Multiplier(domain.ScenarioContractLoss)
	assert.Equal(t, 0.88, m)

	assert.ErrorIs(t, planning.ScenarioTable{"baseline": 1, "bad": -1}.Validate(), constants.ErrInvalidConfiguration)
}

func TestShippedBenchmarkFileMatchesDefaults(t *testing.T) {
	table, err := planning.LoadBenchmarkTable(filepath.Join("..", "..", "configs", "benchmarks.yaml"))
	require.NoError(t, err)

	def := planning.DefaultBenchmarkTable()
	assert.Equal(t, def.Version, table.Version)
	assert.Equal(t, def.DefaultRoles, table.DefaultRoles)
	assert.Equal(t, def.Keywords, table.Keywords)
	assert.Equal(t, def.Default.Weight, table.Default.Weight)
	assert.True(t, def.Default.Salary.Equal(table.Default.Salary))
	assert.Equal(t, def.Default.TimeToHireDays, table.Default.TimeToHireDays)
	require.Len(t, table.Skills, len(def.Skills))
	for id, want := range def.Skills {
		got, ok := table.Skills[id]
		require.True(t, ok, id)
		assert.Equal(t, want.Weight, got.Weight, id)
		assert.True(t, want.Salary.Equal(got.Salary), id)
		assert.Equal(t, want.TimeToHireDays, got.TimeToHireDays, id)
	}
}

func TestShippedBenchmarkFileResolvesLikeDefaults(t *testing.T) {
	table, err := planning.LoadBenchmarkTable(filepath.Join("..", "..", "configs", "benchmarks.yaml"))
	require.NoError(t, err)
	def := planning.DefaultBenchmarkTable()

	for _, name := range []string{"Climb Team", "DTT Operations", "Programme Office", "Optical Splicing", "Data Centre Ops", "rf planning", "RFID Logistics"} {
		wantID, want := def.Resolve(domain.SkillCategory{Name: name})
		gotID, got := table.Resolve(domain.SkillCategory{Name: name})
		assert.Equal(t, wantID, gotID, name)
		assert.Equal(t, want.Weight, got.Weight, name)
	}
}

func TestLoadBenchmarkTableWholeWordFlag(t *testing.T) {
	doc := `
version: v1
skills: {a: {weight: 50, salary: 1, time_to_hire_days: 1}}
keywords:
  - {keyword: ops, skill_id: a, whole_word: true}
default: {weight: 40, salary: 1, time_to_hire_days: 1}
default_roles: [{skill_id: a, name: A, proportion: 1}]`

	table, err := planning.ParseBenchmarkTable([]byte(doc))
	require.NoError(t, err)
	require.Len(t, table.Keywords, 1)
	assert.True(t, table.Keywords[0].WholeWord)

	id, _ := table.Resolve(domain.SkillCategory{Name: "Field Ops"})
	assert.Equal(t, "a", id)
	id, _ = table.Resolve(domain.SkillCategory{Name: "Stops Planning"})
	assert.Equal(t, "", id)
}
