package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Every cached schedule read embeds the current version in its key. A write
// bumps the version, so stale entries are never read again and simply expire.
const (
	CacheVersionKey = "schedule:cache:version"
	cacheKeyPrefix  = "schedule:"
)

func CacheKey(kind, version string, parts ...string) string {
	return fmt.Sprintf("%s%s:v%s:%s", cacheKeyPrefix, kind, version, strings.Join(parts, ":"))
}

func (s *service) cacheVersion(ctx context.Context) (string, bool) {
	v, err := s.rdb.Get(ctx, CacheVersionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "0", true
	}
	if err != nil {
		s.logger.Warn("schedule cache version unavailable", zap.Error(err))
		return "", false
	}
	return v, true
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, CacheVersionKey).Err(); err != nil {
		s.logger.Error("failed to invalidate schedule cache",
			zap.String("key", CacheVersionKey),
			zap.Error(err),
		)
	}
}

// cachedRead serves kind/parts from redis when present and collapses
// concurrent misses for the same key into one load.
func cachedRead[T any](ctx context.Context, s *service, kind string, parts []string, load func(context.Context) (T, error)) (T, error) {
	if s.rdb == nil {
		return load(ctx)
	}
	version, ok := s.cacheVersion(ctx)
	if !ok {
		return load(ctx)
	}
	key := CacheKey(kind, version, parts...)

	if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var out T
		if json.Unmarshal(cached, &out) == nil {
			s.metrics.ObserveCache(kind, true)
			return out, nil
		}
	}
	s.metrics.ObserveCache(kind, false)

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		res, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(res); err == nil {
			if err := s.rdb.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
