package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prasetyadi/dealer-restock/internal/config"
	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	planKeyPrefix     = "restock:plan"
	planScanBatchSize = 100
)

// PlanCache caches whole planning runs per dealer. Plans recompute from
// scratch on every invocation, so a short TTL is the only freshness control
// needed.
type PlanCache interface {
	Get(ctx context.Context, dealer string) (*domain.PlanResult, bool, error)
	Set(ctx context.Context, dealer string, result *domain.PlanResult) error
	Invalidate(ctx context.Context, dealer string) error
	InvalidateAll(ctx context.Context) error
}

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopPlanCache struct{}

func NewPlanCache(cfg config.CacheConfig) (PlanCache, error) {
	if !cfg.Enabled {
		return &noopPlanCache{}, nil
	}

	client, err := dialRedis(cfg)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.PlanTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &redisPlanCache{client: client, ttl: ttl}, nil
}

func NewNoopPlanCache() PlanCache {
	return &noopPlanCache{}
}

func (c *redisPlanCache) Get(ctx context.Context, dealer string) (*domain.PlanResult, bool, error) {
	payload, err := c.client.Get(ctx, buildPlanKey(dealer)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result domain.PlanResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode plan cache: %w", err)
	}
	return &result, true, nil
}

func (c *redisPlanCache) Set(ctx context.Context, dealer string, result *domain.PlanResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode plan cache: %w", err)
	}
	if err := c.client.Set(ctx, buildPlanKey(dealer), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisPlanCache) Invalidate(ctx context.Context, dealer string) error {
	return c.client.Del(ctx, buildPlanKey(dealer)).Err()
}

func (c *redisPlanCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, planKeyPrefix, planScanBatchSize)
}

func (n *noopPlanCache) Get(ctx context.Context, dealer string) (*domain.PlanResult, bool, error) {
	return nil, false, nil
}

func (n *noopPlanCache) Set(ctx context.Context, dealer string, result *domain.PlanResult) error {
	return nil
}

func (n *noopPlanCache) Invalidate(ctx context.Context, dealer string) error {
	return nil
}

func (n *noopPlanCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// buildPlanKey hashes the dealer slug so arbitrary feed identifiers cannot
// produce unsafe key characters.
func buildPlanKey(dealer string) string {
	normalized := strings.ToLower(strings.TrimSpace(dealer))
	sum := sha1.Sum([]byte(normalized))
	return fmt.Sprintf("%s:%s", planKeyPrefix, hex.EncodeToString(sum[:]))
}
