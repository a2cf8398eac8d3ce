package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
)

var regionsColumns = []string{"id", "region_name", "population", "active_employee_count", "avg_utilization_pct"}

func getRegionQuery(regionID int64) sq.SelectBuilder {
	return builder().Select(regionsColumns...).
		From(tableRegions).
		Where(sq.Eq{"id": regionID})
}

func listRegionsQuery() sq.SelectBuilder {
	return builder().Select(regionsColumns...).
		From(tableRegions).
		OrderBy("region_name")
}

func (s *store) GetRegion(ctx context.Context, regionID int64) (*domain.Region, error) {
	var selected domain.Region
	err := s.pool.Getx(ctx, &selected, getRegionQuery(regionID))
	if err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	var selected []*domain.Region

	err := s.pool.Selectx(ctx, &selected, listRegionsQuery())
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
