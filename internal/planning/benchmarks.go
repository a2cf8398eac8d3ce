package planning

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

// KeywordRule maps skill names containing Keyword to a benchmark entry.
// WholeWord rules only match complete words, for abbreviations like "rf"
// that would otherwise hit inside unrelated words. Rules are only consulted
// for catalog rows without a known SkillID, first match wins.
type KeywordRule struct {
	Keyword   string
	SkillID   string
	WholeWord bool
}

// DefaultRole is one of the generic roles used when the catalog is empty.
type DefaultRole struct {
	SkillID    string
	Name       string
	Proportion float64
}

// BenchmarkTable is the versioned mapping skill_id -> benchmark.
type BenchmarkTable struct {
	Version      string
	Skills       map[string]domain.SkillBenchmark
	Keywords     []KeywordRule
	Default      domain.SkillBenchmark
	DefaultRoles []DefaultRole
}

func benchmark(weight float64, salary int64, days int) domain.SkillBenchmark {
	return domain.SkillBenchmark{Weight: weight, Salary: decimal.NewFromInt(salary), TimeToHireDays: days}
}

func DefaultBenchmarkTable() *BenchmarkTable {
	return &BenchmarkTable{
		Version: "2024.2",
		Skills: map[string]domain.SkillBenchmark{
			"tower_climber":         benchmark(90, 38500, 42),
			"rf_engineer":           benchmark(88, 52000, 58),
			"fiber_technician":      benchmark(85, 45000, 45),
			"network_operations":    benchmark(82, 55000, 50),
			"power_systems":         benchmark(80, 42000, 40),
			"broadcast_engineer":    benchmark(78, 48000, 48),
			"datacenter_technician": benchmark(76, 50000, 45),
			"project_manager":       benchmark(72, 58000, 55),
			"field_technician":      benchmark(70, 36000, 35),
		},
		Keywords: []KeywordRule{
			{Keyword: "tower", SkillID: "tower_climber"},
			{Keyword: "climb", SkillID: "tower_climber"},
			{Keyword: "rigger", SkillID: "tower_climber"},
			{Keyword: "rf", SkillID: "rf_engineer", WholeWord: true},
			{Keyword: "radio", SkillID: "rf_engineer"},
			{Keyword: "antenna", SkillID: "rf_engineer"},
			{Keyword: "fiber", SkillID: "fiber_technician"},
			{Keyword: "fibre", SkillID: "fiber_technician"},
			{Keyword: "optical", SkillID: "fiber_technician"},
			{Keyword: "network", SkillID: "network_operations"},
			{Keyword: "noc", SkillID: "network_operations", WholeWord: true},
			{Keyword: "transmission", SkillID: "network_operations"},
			{Keyword: "power", SkillID: "power_systems"},
			{Keyword: "energy", SkillID: "power_systems"},
			{Keyword: "electrical", SkillID: "power_systems"},
			{Keyword: "broadcast", SkillID: "broadcast_engineer"},
			{Keyword: "dtt", SkillID: "broadcast_engineer", WholeWord: true},
			{Keyword: "datacenter", SkillID: "datacenter_technician"},
			{Keyword: "data center", SkillID: "datacenter_technician"},
			{Keyword: "data centre", SkillID: "datacenter_technician"},
			{Keyword: "project", SkillID: "project_manager"},
			{Keyword: "programme", SkillID: "project_manager"},
			{Keyword: "field", SkillID: "field_technician"},
			{Keyword: "maintenance", SkillID: "field_technician"},
		},
		Default: benchmark(65, 42000, 45),
		DefaultRoles: []DefaultRole{
			{SkillID: "tower_climber", Name: "Tower Climber", Proportion: 0.20},
			{SkillID: "rf_engineer", Name: "RF Engineer", Proportion: 0.15},
			{SkillID: "fiber_technician", Name: "Fiber Technician", Proportion: 0.12},
			{SkillID: "network_operations", Name: "Network Operations", Proportion: 0.12},
			{SkillID: "power_systems", Name: "Power Systems Technician", Proportion: 0.10},
			{SkillID: "field_technician", Name: "Field Technician", Proportion: 0.10},
			{SkillID: "broadcast_engineer", Name: "Broadcast Engineer", Proportion: 0.08},
			{SkillID: "datacenter_technician", Name: "Data Center Technician", Proportion: 0.07},
			{SkillID: "project_manager", Name: "Project Manager", Proportion: 0.06},
		},
	}
}

// Resolve returns the benchmark key and figures for a catalog row: by
// SkillID, then by keyword, then the default bucket (empty key).
func (t *BenchmarkTable) Resolve(skill domain.SkillCategory) (string, domain.SkillBenchmark) {
	if b, ok := t.Skills[skill.SkillID]; ok {
		return skill.SkillID, b
	}

	name := normalizeName(skill.Name)
	for _, rule := range t.Keywords {
		if !rule.matches(name) {
			continue
		}
		if b, ok := t.Skills[rule.SkillID]; ok {
			return rule.SkillID, b
		}
	}

	return "", t.Default
}

// matches reports whether a normalized name contains the keyword.
func (r KeywordRule) matches(name string) bool {
	keyword := normalizeName(r.Keyword)
	if r.WholeWord {
		return strings.Contains(" "+name+" ", " "+keyword+" ")
	}
	return strings.Contains(name, keyword)
}

// normalizeName lowercases and joins the words of name with single spaces,
// so "Data-Center" and "data  center" compare equal.
func normalizeName(name string) string {
	return strings.Join(nameWords(name), " ")
}

func nameWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (t *BenchmarkTable) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("%w: benchmark table has no version", constants.ErrInvalidConfiguration)
	}
	if err := validateBenchmark("default", t.Default); err != nil {
		return err
	}
	for id, b := range t.Skills {
		if err := validateBenchmark(id, b); err != nil {
			return err
		}
	}
	for _, rule := range t.Keywords {
		if _, ok := t.Skills[rule.SkillID]; !ok {
			return fmt.Errorf("%w: keyword %q points to unknown skill %q", constants.ErrInvalidConfiguration, rule.Keyword, rule.SkillID)
		}
		if len(nameWords(rule.Keyword)) == 0 {
			return fmt.Errorf("%w: empty keyword for skill %q", constants.ErrInvalidConfiguration, rule.SkillID)
		}
	}

	if len(t.DefaultRoles) == 0 {
		return fmt.Errorf("%w: benchmark table has no default roles", constants.ErrInvalidConfiguration)
	}
	total := 0.0
	for _, role := range t.DefaultRoles {
		if role.Proportion <= 0 {
			return fmt.Errorf("%w: default role %q has non-positive proportion", constants.ErrInvalidConfiguration, role.Name)
		}
		total += role.Proportion
	}
	if math.Abs(total-1) > 1e-6 {
		return fmt.Errorf("%w: default role proportions sum to %v, want 1", constants.ErrInvalidConfiguration, total)
	}

	return nil
}

func validateBenchmark(id string, b domain.SkillBenchmark) error {
	if b.Weight < 0 || b.Weight > 100 {
		return fmt.Errorf("%w: skill %q weight %v outside [0, 100]", constants.ErrInvalidConfiguration, id, b.Weight)
	}
	if b.Salary.IsNegative() {
		return fmt.Errorf("%w: skill %q has negative salary", constants.ErrInvalidConfiguration, id)
	}
	if b.TimeToHireDays < 0 {
		return fmt.Errorf("%w: skill %q has negative time to hire", constants.ErrInvalidConfiguration, id)
	}
	return nil
}

type benchmarkFile struct {
	Version      string                       `yaml:"version"`
	Skills       map[string]benchmarkFileItem `yaml:"skills"`
	Keywords     []keywordFileItem            `yaml:"keywords"`
	Default      benchmarkFileItem            `yaml:"default"`
	DefaultRoles []defaultRoleFileItem        `yaml:"default_roles"`
}

type benchmarkFileItem struct {
	Weight         float64 `yaml:"weight"`
	Salary         float64 `yaml:"salary"`
	TimeToHireDays int     `yaml:"time_to_hire_days"`
}

type keywordFileItem struct {
	Keyword   string `yaml:"keyword"`
	SkillID   string `yaml:"skill_id"`
	WholeWord bool   `yaml:"whole_word"`
}

type defaultRoleFileItem struct {
	SkillID    string  `yaml:"skill_id"`
	Name       string  `yaml:"name"`
	Proportion float64 `yaml:"proportion"`
}

func (i benchmarkFileItem) toDomain() domain.SkillBenchmark {
	return domain.SkillBenchmark{
		Weight:         i.Weight,
		Salary:         decimal.NewFromFloat(i.Salary),
		TimeToHireDays: i.TimeToHireDays,
	}
}

// ParseBenchmarkTable decodes a YAML benchmark table and validates it.
func ParseBenchmarkTable(data []byte) (*BenchmarkTable, error) {
	var file benchmarkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: yaml.Unmarshal: %s", constants.ErrInvalidConfiguration, err.Error())
	}

	table := &BenchmarkTable{
		Version:      file.Version,
		Skills:       make(map[string]domain.SkillBenchmark, len(file.Skills)),
		Keywords:     make([]KeywordRule, 0, len(file.Keywords)),
		Default:      file.Default.toDomain(),
		DefaultRoles: make([]DefaultRole, 0, len(file.DefaultRoles)),
	}
	for id, item := range file.Skills {
		table.Skills[id] = item.toDomain()
	}
	for _, k := range file.Keywords {
		table.Keywords = append(table.Keywords, KeywordRule{
			Keyword:   strings.ToLower(k.Keyword),
			SkillID:   k.SkillID,
			WholeWord: k.WholeWord,
		})
	}
	for _, r := range file.DefaultRoles {
		table.DefaultRoles = append(table.DefaultRoles, DefaultRole(r))
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func LoadBenchmarkTable(path string) (*BenchmarkTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	table, err := ParseBenchmarkTable(data)
	if err != nil {
		return nil, fmt.Errorf("ParseBenchmarkTable, path-%s: %w", path, err)
	}
	return table, nil
}
