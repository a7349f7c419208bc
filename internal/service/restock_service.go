package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prasetyadi/dealer-restock/internal/cache"
	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/planner"
	"github.com/prasetyadi/dealer-restock/internal/repository"
	"github.com/prasetyadi/dealer-restock/internal/storage"
)

// RestockService loads a dealer's feed snapshot and runs the planning
// engine. Every call recomputes from scratch; the cache only shields the
// display layer from hammering identical requests.
type RestockService struct {
	repo    repository.SnapshotRepository
	cache   cache.PlanCache
	archive storage.ObjectStorage
	now     func() time.Time
}

func NewRestockService(repo repository.SnapshotRepository, planCache cache.PlanCache, archive storage.ObjectStorage) *RestockService {
	if planCache == nil {
		planCache = cache.NewNoopPlanCache()
	}
	return &RestockService{
		repo:    repo,
		cache:   planCache,
		archive: archive,
		now:     time.Now,
	}
}

// Plan produces the full planning result for one dealer.
func (s *RestockService) Plan(ctx context.Context, dealer string) (*domain.PlanResult, error) {
	if result, ok, err := s.cache.Get(ctx, dealer); err == nil && ok {
		return result, nil
	} else if err != nil {
		log.Warn().Err(err).Str("dealer", dealer).Msg("restock: cache get failed")
	}

	feeds, err := s.repo.LoadFeeds(ctx, dealer)
	if err != nil {
		return nil, fmt.Errorf("load feeds for %s: %w", dealer, err)
	}

	snap := planner.BuildSnapshot(dealer, *feeds)
	result := planner.NewEngine(s.now()).Plan(snap)

	if err := s.cache.Set(ctx, dealer, &result); err != nil {
		log.Warn().Err(err).Str("dealer", dealer).Msg("restock: cache set failed")
	}

	s.archiveRun(ctx, dealer, feeds, &result)

	return &result, nil
}

// Aggregates returns only the per-model activity table.
func (s *RestockService) Aggregates(ctx context.Context, dealer string) (map[string]domain.ModelAggregate, error) {
	result, err := s.Plan(ctx, dealer)
	if err != nil {
		return nil, err
	}
	return result.Aggregates, nil
}

// Capacity returns only the capacity summary.
func (s *RestockService) Capacity(ctx context.Context, dealer string) (*domain.CapacitySummary, error) {
	result, err := s.Plan(ctx, dealer)
	if err != nil {
		return nil, err
	}
	return &result.Capacity, nil
}

// Checkpoint returns only the stock-min checkpoint report.
func (s *RestockService) Checkpoint(ctx context.Context, dealer string) (*domain.StockMinReport, error) {
	result, err := s.Plan(ctx, dealer)
	if err != nil {
		return nil, err
	}
	return &result.Checkpoint, nil
}

// archiveRun stores the run's input and output for offline replay. Best
// effort: archive failures never fail the plan.
func (s *RestockService) archiveRun(ctx context.Context, dealer string, feeds *planner.RawFeeds, result *domain.PlanResult) {
	if s.archive == nil {
		return
	}
	payload, err := storage.EncodeRun(feeds, result)
	if err != nil {
		log.Warn().Err(err).Str("dealer", dealer).Msg("restock: encode run archive failed")
		return
	}
	key := storage.RunKey(dealer, result.GeneratedAt)
	if err := s.archive.UploadObject(ctx, key, payload); err != nil {
		log.Warn().Err(err).Str("dealer", dealer).Str("key", key).Msg("restock: upload run archive failed")
	}
}
