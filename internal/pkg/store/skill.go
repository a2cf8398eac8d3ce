package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
)

type ListSkillCategoriesOpts struct {
	OnlyActive bool
}

var skillCategoryColumns = []string{"id", "skill_id", "skill_name", "is_active", "current_fte"}

// listSkillCategoriesQuery keeps catalog order stable: the engine's output
// must not depend on how the warehouse happens to return rows.
func listSkillCategoriesQuery(opts ListSkillCategoriesOpts) sq.SelectBuilder {
	query := builder().Select(skillCategoryColumns...).
		From(tableSkillCategories).
		OrderBy("id")

	if opts.OnlyActive {
		query = query.Where(sq.Eq{"is_active": true})
	}

	return query
}

func (s *store) ListSkillCategories(ctx context.Context, opts ListSkillCategoriesOpts) ([]*domain.SkillCategory, error) {
	var selected []*domain.SkillCategory

	err := s.pool.Selectx(ctx, &selected, listSkillCategoriesQuery(opts))
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
