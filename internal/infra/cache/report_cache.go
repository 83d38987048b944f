package cache

import (
	"context"
	"encoding/json"
	"time"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "stampcard:report:"

// redisReportCache stores report summaries as JSON strings.
type redisReportCache struct {
	client *redis.Client
}

// noopReportCache is used when Redis is not configured.
type noopReportCache struct{}

// NewReportCache returns a Redis-backed report cache, or a no-op cache for a nil client.
func NewReportCache(client *redis.Client) service.ReportCache {
	if client == nil {
		return noopReportCache{}
	}

	return &redisReportCache{client: client}
}

func (c *redisReportCache) Get(ctx context.Context, key string) (*entity.ReportSummary, bool, error) {
	raw, err := c.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read cached report")
	}

	var summary entity.ReportSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached report")
	}

	return &summary, true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key string, summary *entity.ReportSummary, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}

	return errors.Wrap(c.client.Set(ctx, reportKeyPrefix+key, raw, ttl).Err(), "failed to cache report")
}

func (noopReportCache) Get(context.Context, string) (*entity.ReportSummary, bool, error) {
	return nil, false, nil
}

func (noopReportCache) Set(context.Context, string, *entity.ReportSummary, time.Duration) error {
	return nil
}
