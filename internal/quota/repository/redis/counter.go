package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"smap-engine/internal/quota/repository"
)

func counterKey(quotaID, periodKey string) string {
	return fmt.Sprintf("quota_counter:%s:%s", quotaID, periodKey)
}

func (r *implCounterRepository) Increment(ctx context.Context, quotaID, periodKey string, ttl time.Duration) (int64, error) {
	count, err := r.redis.IncrBy(ctx, counterKey(quotaID, periodKey), 1, ttl)
	if err != nil {
		r.l.Errorf(ctx, "internal.quota.repository.redis.Increment.IncrBy: %v", err)
		return 0, err
	}

	return count, nil
}

func (r *implCounterRepository) GetMany(ctx context.Context, keys []repository.CounterKey) (map[string]int64, error) {
	if len(keys) == 0 {
		return map[string]int64{}, nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = counterKey(k.QuotaID, k.PeriodKey)
	}

	values, err := r.redis.MGet(ctx, redisKeys...)
	if err != nil {
		r.l.Errorf(ctx, "internal.quota.repository.redis.GetMany.MGet: %v", err)
		return nil, err
	}

	counts := make(map[string]int64, len(keys))
	for i, v := range values {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		count, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			r.l.Warnf(ctx, "internal.quota.repository.redis.GetMany.ParseInt: %v (key %s)", err, redisKeys[i])
			continue
		}
		counts[keys[i].QuotaID] = count
	}

	return counts, nil
}
