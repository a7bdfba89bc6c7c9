package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/analysis"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
)

const (
	sentimentCacheKey   = "agg:sentiment"
	themeMatrixCacheKey = "agg:theme_matrix"
	themesCachePrefix   = "agg:themes:"
)

// AggregateCacheRepo caches computed aggregates in Redis. All failures are
// logged and treated as misses so the service can recompute from PostgreSQL.
type AggregateCacheRepo struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

var _ domain.AggregateCache = (*AggregateCacheRepo)(nil)

func NewAggregateCacheRepo(rdb goredis.Cmdable, ttl time.Duration) *AggregateCacheRepo {
	return &AggregateCacheRepo{rdb: rdb, ttl: ttl}
}

func (r *AggregateCacheRepo) GetSentiment(ctx context.Context) (analysis.SentimentCounts, bool) {
	var counts analysis.SentimentCounts
	if !r.getCached(ctx, sentimentCacheKey, &counts) {
		return analysis.SentimentCounts{}, false
	}
	return counts, true
}

func (r *AggregateCacheRepo) SetSentiment(ctx context.Context, counts analysis.SentimentCounts) {
	r.writeCache(ctx, sentimentCacheKey, counts)
}

func (r *AggregateCacheRepo) GetThemes(ctx context.Context, productID string) (map[string]int, bool) {
	var counts map[string]int
	if !r.getCached(ctx, themesCacheKey(productID), &counts) {
		return nil, false
	}
	return counts, true
}

func (r *AggregateCacheRepo) SetThemes(ctx context.Context, productID string, counts map[string]int) {
	r.writeCache(ctx, themesCacheKey(productID), counts)
}

func (r *AggregateCacheRepo) GetThemeMatrix(ctx context.Context) (analysis.ThemeMatrix, bool) {
	var matrix analysis.ThemeMatrix
	if !r.getCached(ctx, themeMatrixCacheKey, &matrix) {
		return analysis.ThemeMatrix{}, false
	}
	return matrix, true
}

func (r *AggregateCacheRepo) SetThemeMatrix(ctx context.Context, matrix analysis.ThemeMatrix) {
	r.writeCache(ctx, themeMatrixCacheKey, matrix)
}

// InvalidateAll evicts every aggregate key. The key set is bounded by the
// product catalog, so a single DEL covers everything.
func (r *AggregateCacheRepo) InvalidateAll(ctx context.Context) error {
	keys := []string{sentimentCacheKey, themeMatrixCacheKey, themesCacheKey("")}
	for _, product := range domain.ValidProducts {
		keys = append(keys, themesCacheKey(product))
	}

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	return nil
}

func (r *AggregateCacheRepo) writeCache(ctx context.Context, key string, value any) {
	encoded, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to marshal aggregate for Redis cache", "key", key, "error", err)
		return
	}

	if err := r.rdb.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		slog.Warn("Failed to populate Redis aggregate cache", "key", key, "error", err)
	}
}

func (r *AggregateCacheRepo) getCached(ctx context.Context, key string, out any) bool {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			slog.Warn("Redis aggregate cache GET failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("Failed to unmarshal cached aggregate", "key", key, "error", err)
		return false
	}
	return true
}

func themesCacheKey(productID string) string {
	if productID == "" {
		return themesCachePrefix + "all"
	}
	return themesCachePrefix + productID
}
