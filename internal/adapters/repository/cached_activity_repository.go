package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

var _ domain.ActivitySource = (*CachedActivitySource)(nil)

const DefaultCacheTTL = 30 * time.Minute

// CachedActivitySource keeps one Redis hash per user, one field per
// requested date range, so a single DEL drops every cached window.
type CachedActivitySource struct {
	next  domain.ActivitySource
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedActivitySource(next domain.ActivitySource, cache *redis.Client, ttl time.Duration) *CachedActivitySource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedActivitySource{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedActivitySource) cacheKey(userID string) string {
	return fmt.Sprintf("activity:%s", userID)
}

func rangeField(from, to time.Time) string {
	return domain.CivilDate(from).Format(domain.DateLayout) + ":" + domain.CivilDate(to).Format(domain.DateLayout)
}

func (r *CachedActivitySource) Invalidate(ctx context.Context, userID string) error {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache: failed to invalidate user %s: %w", userID, err)
	}
	return nil
}

func (r *CachedActivitySource) DailySeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DayRecord, error) {
	key := r.cacheKey(userID)
	field := rangeField(from, to)

	val, err := r.cache.HGet(ctx, key, field).Result()
	if err == nil {
		var series []domain.DayRecord
		if err := json.Unmarshal([]byte(val), &series); err == nil {
			return series, nil
		}

		log.Printf("[CACHE] Corrupted series for user %s (%s), cleaning up field", userID, field)
		r.cache.HDel(ctx, key, field)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	series, err := r.next.DailySeries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(series); err == nil {
		pipe := r.cache.TxPipeline()
		pipe.HSet(ctx, key, field, data)
		pipe.Expire(ctx, key, r.ttl)
		if _, setErr := pipe.Exec(ctx); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return series, nil
}
