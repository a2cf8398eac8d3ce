package store

import (
	"context"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the read-only view of the warehouse used by the planner.
type Store interface {
	GetRegion(ctx context.Context, regionID int64) (*domain.Region, error)
	ListRegions(ctx context.Context) ([]*domain.Region, error)
	ListSkillCategories(ctx context.Context, opts ListSkillCategoriesOpts) ([]*domain.SkillCategory, error)
	// GetDemandForecast returns nil without error when no forecast exists.
	GetDemandForecast(ctx context.Context, regionID int64, horizonMonths int) (*float64, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
