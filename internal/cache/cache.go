// Package cache memoizes rendered reports behind a content hash of their
// inputs, mirroring the teacher's pkg/cache/optimization_cache.go Redis
// cache. It sits strictly in front of the core: the core itself never
// consults or populates it, keeping the solver collaborator-free per
// spec.md §5.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "teamselect:report:"

// ReportCache caches rendered report text behind a request's input hash.
type ReportCache struct {
	client *redis.Client
	logger *logrus.Logger
}

// New creates a ReportCache backed by client.
func New(client *redis.Client, logger *logrus.Logger) *ReportCache {
	return &ReportCache{client: client, logger: logger}
}

// Key derives a cache key from the exact role-file and table bytes a request
// carried, the same way the teacher hashes optimization request bodies.
func Key(roleFileBytes, tableBytes []byte) string {
	h := md5.New()
	h.Write(roleFileBytes)
	h.Write([]byte{0})
	h.Write(tableBytes)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached report for key, if present.
func (c *ReportCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get failed: %w", err)
	}
	return val, true, nil
}

// Set stores report under key with the given expiration.
func (c *ReportCache) Set(ctx context.Context, key, report string, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, report, ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"cache_key": key,
			"ttl":       ttl,
		}).Debug("cached team selection report")
	}
	return nil
}
