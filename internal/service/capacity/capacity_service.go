package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
	"github.com/ougirez/workforce-planner/internal/pkg/metrics"
	"github.com/ougirez/workforce-planner/internal/pkg/store"
	"github.com/ougirez/workforce-planner/internal/planning"
)

const fetchRetryInterval = 50 * time.Millisecond

type Service struct {
	store        store.Store
	engine       *planning.Engine
	fetchRetries uint64
}

func NewCapacityService(store store.Store, engine *planning.Engine, fetchRetries uint64) *Service {
	return &Service{store: store, engine: engine, fetchRetries: fetchRetries}
}

type regionFacts struct {
	region   *domain.Region
	catalog  []domain.SkillCategory
	forecast *float64
}

func (s *Service) ListScenarios() []domain.Scenario {
	return s.engine.Scenarios()
}

func (s *Service) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	regions, err := s.store.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListRegions: %w", err)
	}

	return regions, nil
}

func (s *Service) GetRegion(ctx context.Context, regionID int64) (*domain.Region, error) {
	region, err := s.store.GetRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("store.GetRegion, region_id-%d: %w", regionID, err)
	}

	return region, nil
}

func (s *Service) ListSkills(ctx context.Context, onlyActive bool) ([]domain.SkillProfile, error) {
	skills, err := s.store.ListSkillCategories(ctx, store.ListSkillCategoriesOpts{OnlyActive: onlyActive})
	if err != nil {
		return nil, fmt.Errorf("store.ListSkillCategories: %w", err)
	}

	res := make([]domain.SkillProfile, 0, len(skills))
	for _, skill := range skills {
		res = append(res, s.engine.DescribeSkill(*skill))
	}

	return res, nil
}

// EvaluateScenario collects the region facts and runs the engine once.
func (s *Service) EvaluateScenario(ctx context.Context, cfg domain.ScenarioConfig) (*domain.ScenarioResult, error) {
	ctx = logger.WithFields(ctx, "region_id", cfg.RegionID, "scenario", cfg.Scenario)

	// caller bugs fail before touching the warehouse
	if err := s.engine.Validate(planning.EvaluationInput{Config: cfg}); err != nil {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(string(cfg.Scenario), metrics.OutcomeError).Inc()
		return nil, err
	}

	facts, err := s.collectFacts(ctx, cfg.RegionID, cfg.HorizonMonths)
	if err != nil {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(string(cfg.Scenario), metrics.OutcomeError).Inc()
		return nil, err
	}

	return s.evaluate(ctx, facts, cfg)
}

// CompareScenarios evaluates every known scenario against the same facts.
// Results follow the scenario table order.
func (s *Service) CompareScenarios(ctx context.Context, regionID int64, horizonMonths int, includeAttrition bool) ([]*domain.ScenarioResult, error) {
	ctx = logger.WithFields(ctx, "region_id", regionID)

	check := domain.ScenarioConfig{RegionID: regionID, Scenario: domain.ScenarioBaseline, HorizonMonths: horizonMonths}
	if err := s.engine.Validate(planning.EvaluationInput{Config: check}); err != nil {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(metrics.ScenarioAll, metrics.OutcomeError).Inc()
		return nil, err
	}

	facts, err := s.collectFacts(ctx, regionID, horizonMonths)
	if err != nil {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(metrics.ScenarioAll, metrics.OutcomeError).Inc()
		return nil, err
	}

	scenarios := s.engine.Scenarios()
	results := make([]*domain.ScenarioResult, len(scenarios))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		i, sc := i, sc
		eg.Go(func() error {
			cfg := domain.ScenarioConfig{
				RegionID:         regionID,
				Scenario:         sc.Kind,
				HorizonMonths:    horizonMonths,
				IncludeAttrition: includeAttrition,
			}

			res, err := s.evaluate(logger.WithFields(egCtx, "scenario", sc.Kind), facts, cfg)
			if err != nil {
				return fmt.Errorf("evaluate, scenario-%s: %w", sc.Kind, err)
			}

			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Service) evaluate(ctx context.Context, facts *regionFacts, cfg domain.ScenarioConfig) (*domain.ScenarioResult, error) {
	res, err := s.engine.Evaluate(planning.EvaluationInput{
		Region:   *facts.region,
		Config:   cfg,
		Catalog:  facts.catalog,
		Forecast: facts.forecast,
	})
	if err != nil {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(string(cfg.Scenario), metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("engine.Evaluate: %w", err)
	}

	if res.Snapshot.IsShortage() {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(string(cfg.Scenario), metrics.OutcomeShortage).Inc()
		metrics.ShortageFTE.Observe(planning.ShortageFTE(res.Snapshot))
	} else {
		metrics.ScenarioEvaluationsTotal.WithLabelValues(string(cfg.Scenario), metrics.OutcomeSurplus).Inc()
	}

	if res.Snapshot.CapacitySource == domain.CapacityFromPopulation {
		logger.Warnf(ctx, "no usable headcount for region, capacity estimated from population %d", facts.region.Population)
	}
	logger.Infof(ctx, "gap %.2f fte (%.1f%%), %d skills in plan", res.Snapshot.GapFTE, res.Snapshot.GapPct, len(res.HiringPlan))

	return res, nil
}

// collectFacts reads region, catalog and forecast concurrently. Transient
// warehouse failures are retried; a missing region is not.
func (s *Service) collectFacts(ctx context.Context, regionID int64, horizonMonths int) (*regionFacts, error) {
	start := time.Now()
	defer func() {
		metrics.WarehouseFetchDuration.Observe(time.Since(start).Seconds())
	}()

	facts := new(regionFacts)
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return s.retry(egCtx, func() (err error) {
			facts.region, err = s.store.GetRegion(egCtx, regionID)
			if err != nil {
				return fmt.Errorf("store.GetRegion, region_id-%d: %w", regionID, err)
			}
			return nil
		})
	})

	eg.Go(func() error {
		return s.retry(egCtx, func() error {
			skills, err := s.store.ListSkillCategories(egCtx, store.ListSkillCategoriesOpts{OnlyActive: true})
			if err != nil {
				return fmt.Errorf("store.ListSkillCategories: %w", err)
			}
			facts.catalog = make([]domain.SkillCategory, 0, len(skills))
			for _, skill := range skills {
				facts.catalog = append(facts.catalog, *skill)
			}
			return nil
		})
	})

	eg.Go(func() error {
		return s.retry(egCtx, func() (err error) {
			facts.forecast, err = s.store.GetDemandForecast(egCtx, regionID, horizonMonths)
			if err != nil {
				return fmt.Errorf("store.GetDemandForecast, region_id-%d: %w", regionID, err)
			}
			return nil
		})
	})

	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "collectFacts: %s", err.Error())
		return nil, err
	}

	if len(facts.catalog) == 0 {
		logger.Warn(ctx, "skill catalog is empty, default role distribution will be used")
	}

	return facts, nil
}

func (s *Service) retry(ctx context.Context, op func() error) error {
	return backoff.Retry(
		func() error {
			err := op()
			if errors.Is(err, constants.ErrDBNotFound) {
				return backoff.Permanent(err)
			}
			return err
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(fetchRetryInterval), s.fetchRetries),
			ctx,
		),
	)
}
