package planning

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ougirez/workforce-planner/internal/domain"
)

type skillShare struct {
	skillID    string
	name       string
	benchmark  domain.SkillBenchmark
	proportion float64
	currentFTE *int64
}

// AllocateHiring distributes a shortage across skill categories by priority
// weight. Every returned item needs at least one FTE, so for small shortages
// over many skills the sum may exceed the shortage unless
// Params.ReconcileAllocation is set.
//
// The plan is ordered by FTENeeded descending, then weight descending, then
// name. A non-positive shortage yields an empty plan.
func (e *Engine) AllocateHiring(totalGapFTE float64, catalog []domain.SkillCategory) []domain.HiringPlanItem {
	if totalGapFTE <= 0 {
		return []domain.HiringPlanItem{}
	}

	shares := e.skillShares(catalog)

	var ftes []int
	if e.params.ReconcileAllocation {
		ftes = reconcileLargestRemainder(totalGapFTE, shares)
	} else {
		ftes = make([]int, len(shares))
		for i, s := range shares {
			ftes[i] = max(1, roundFTE(totalGapFTE*s.proportion))
		}
	}

	items := make([]domain.HiringPlanItem, 0, len(shares))
	for i, s := range shares {
		rate := e.recruitmentRate(s.benchmark.Salary)
		items = append(items, domain.HiringPlanItem{
			SkillID:         s.skillID,
			SkillName:       s.name,
			FTENeeded:       ftes[i],
			CurrentFTE:      s.currentFTE,
			Weight:          s.benchmark.Weight,
			SalaryBenchmark: s.benchmark.Salary,
			RecruitmentRate: rate,
			RecruitmentCost: decimal.NewFromInt(int64(ftes[i])).Mul(s.benchmark.Salary).Mul(rate).Round(2),
			TimeToHireDays:  s.benchmark.TimeToHireDays,
			PriorityTier:    e.PriorityTier(s.benchmark.Weight),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].FTENeeded != items[j].FTENeeded {
			return items[i].FTENeeded > items[j].FTENeeded
		}
		if items[i].Weight != items[j].Weight {
			return items[i].Weight > items[j].Weight
		}
		return items[i].SkillName < items[j].SkillName
	})

	return items
}

// skillShares resolves benchmarks for the active catalog rows and turns
// weights into proportions. With no active rows the default roles and their
// fixed proportions are used instead.
func (e *Engine) skillShares(catalog []domain.SkillCategory) []skillShare {
	shares := make([]skillShare, 0, len(catalog))
	totalWeight := 0.0
	for _, skill := range catalog {
		if !skill.IsActive {
			continue
		}
		id, b := e.benchmarks.Resolve(skill)
		if skill.SkillID != "" {
			id = skill.SkillID
		}
		shares = append(shares, skillShare{
			skillID:    id,
			name:       skill.Name,
			benchmark:  b,
			currentFTE: skill.CurrentFTE,
		})
		totalWeight += b.Weight
	}

	if len(shares) == 0 {
		return e.defaultShares()
	}

	for i := range shares {
		if totalWeight > 0 {
			shares[i].proportion = shares[i].benchmark.Weight / totalWeight
		} else {
			shares[i].proportion = 1 / float64(len(shares))
		}
	}

	return shares
}

func (e *Engine) defaultShares() []skillShare {
	shares := make([]skillShare, 0, len(e.benchmarks.DefaultRoles))
	for _, role := range e.benchmarks.DefaultRoles {
		b, ok := e.benchmarks.Skills[role.SkillID]
		if !ok {
			b = e.benchmarks.Default
		}
		shares = append(shares, skillShare{
			skillID:    role.SkillID,
			name:       role.Name,
			benchmark:  b,
			proportion: role.Proportion,
		})
	}
	return shares
}

// reconcileLargestRemainder allocates exactly max(round(total), len(shares))
// FTE. Each skill first gets max(1, floor(quota)); the difference to the
// target is then added to the largest remainders or taken from the most
// over-allocated skills. Ties go to higher weight, then lower name.
func reconcileLargestRemainder(total float64, shares []skillShare) []int {
	target := max(roundFTE(total), len(shares))

	ftes := make([]int, len(shares))
	remainders := make([]float64, len(shares))
	assigned := 0
	for i, s := range shares {
		quota := total * s.proportion
		ftes[i] = max(1, int(math.Floor(quota)))
		remainders[i] = quota - float64(ftes[i])
		assigned += ftes[i]
	}

	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if remainders[i] != remainders[j] {
			return remainders[i] > remainders[j]
		}
		if shares[i].benchmark.Weight != shares[j].benchmark.Weight {
			return shares[i].benchmark.Weight > shares[j].benchmark.Weight
		}
		return shares[i].name < shares[j].name
	})

	for k := 0; assigned < target; k++ {
		ftes[order[k%len(order)]]++
		assigned++
	}

	// Most over-allocated first: walk the order backwards.
	for k := len(order) - 1; assigned > target; k-- {
		if k < 0 {
			k = len(order) - 1
		}
		if idx := order[k]; ftes[idx] > 1 {
			ftes[idx]--
			assigned--
		}
	}

	return ftes
}

func (e *Engine) recruitmentRate(salary decimal.Decimal) decimal.Decimal {
	floor := decimal.NewFromFloat(e.params.RecruitmentRateFloor)
	ceiling := decimal.NewFromFloat(e.params.RecruitmentRateCeiling)

	rate := salary.Sub(decimal.NewFromFloat(e.params.RecruitmentBaseSalary)).
		Div(decimal.NewFromFloat(e.params.RecruitmentSalarySpan)).
		Add(floor)

	switch {
	case rate.LessThan(floor):
		return floor
	case rate.GreaterThan(ceiling):
		return ceiling
	}
	return rate.Round(6)
}

func (e *Engine) PriorityTier(weight float64) domain.PriorityTier {
	switch {
	case weight >= e.params.CriticalWeight:
		return domain.PriorityCritical
	case weight >= e.params.HighWeight:
		return domain.PriorityHigh
	default:
		return domain.PriorityNormal
	}
}

// roundFTE rounds half away from zero.
func roundFTE(v float64) int {
	return int(math.Round(v))
}
