package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

const (
	tableRegions         = "regions"
	tableSkillCategories = "skill_categories"
	tableDemandForecasts = "demand_forecasts"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if pgxscan.NotFound(err) {
		return constants.ErrDBNotFound
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return errors.Join(constants.ErrWarehouseUnavailable, err)
	}
	return err
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
