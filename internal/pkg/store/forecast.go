package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

var demandForecastColumns = []string{"region_id", "horizon_months", "demand_fte"}

func getDemandForecastQuery(regionID int64, horizonMonths int) sq.SelectBuilder {
	return builder().Select(demandForecastColumns...).
		From(tableDemandForecasts).
		Where(sq.And{
			sq.Eq{"region_id": regionID},
			sq.Eq{"horizon_months": horizonMonths},
		})
}

func (s *store) GetDemandForecast(ctx context.Context, regionID int64, horizonMonths int) (*float64, error) {
	var selected domain.DemandForecast
	err := s.pool.Getx(ctx, &selected, getDemandForecastQuery(regionID, horizonMonths))
	if err != nil {
		err = wrapErr(err)
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &selected.DemandFTE, nil
}
