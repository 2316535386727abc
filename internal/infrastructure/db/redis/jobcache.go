package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joblane/careers-api/internal/core/ports"
)

const jobCacheTTL = 10 * time.Minute

// JobCache fronts a JobCatalog with a Redis cache of positive existence
// lookups. Negative results are never cached, so a freshly published job is
// visible immediately. Redis failures fall through to the inner catalog.
type JobCache struct {
	client *redis.Client
	inner  ports.JobCatalog
}

func NewJobCache(client *redis.Client, inner ports.JobCatalog) *JobCache {
	return &JobCache{client: client, inner: inner}
}

func (c *JobCache) Exists(ctx context.Context, jobID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(jobID)).Result()
	if err == nil && n > 0 {
		return true, nil
	}

	ok, err := c.inner.Exists(ctx, jobID)
	if err != nil {
		return false, err
	}
	if ok {
		_ = c.client.Set(ctx, c.key(jobID), "1", jobCacheTTL).Err()
	}
	return ok, nil
}

func (c *JobCache) key(jobID string) string {
	return fmt.Sprintf("jobs:exists:%s", jobID)
}
