package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	AnalyticsTTL       = 60 * time.Second
	AnalyticsKeyPrefix = "analytics:event" // 整包JSON快照
)

// AnalyticsCacheRepository 分析结果短TTL缓存
// 写侧（RSVP/反馈落库后）删Key，读侧惰性重建
type AnalyticsCacheRepository struct {
	RDB *redis.Client
	ttl time.Duration
}

func NewAnalyticsCacheRepository(rdb *redis.Client) *AnalyticsCacheRepository {
	return &AnalyticsCacheRepository{RDB: rdb, ttl: AnalyticsTTL}
}

func (r *AnalyticsCacheRepository) key(eventID uint64) string {
	return fmt.Sprintf("%s:%d", AnalyticsKeyPrefix, eventID)
}

func (r *AnalyticsCacheRepository) Get(ctx context.Context, eventID uint64) ([]byte, bool, error) {
	val, err := r.RDB.Get(ctx, r.key(eventID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *AnalyticsCacheRepository) Set(ctx context.Context, eventID uint64, payload []byte) error {
	return r.RDB.Set(ctx, r.key(eventID), payload, r.ttl).Err()
}

// Delete 写路径失效，失败忽略交给TTL兜底
func (r *AnalyticsCacheRepository) Delete(ctx context.Context, eventID uint64) error {
	if err := r.RDB.Del(ctx, r.key(eventID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
