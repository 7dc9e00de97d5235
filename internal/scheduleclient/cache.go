package scheduleclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-resto/internal/schedule"

	"golang.org/x/sync/singleflight"
)

const DefaultStaleTime = 5 * time.Minute

type cacheEntry struct {
	value     any
	fetchedAt time.Time
}

// QueryCache keeps read results for a staleness window. Concurrent misses for
// the same key share one fetch.
type QueryCache struct {
	mu        sync.Mutex
	entries   map[string]cacheEntry
	gen       uint64
	group     singleflight.Group
	staleTime time.Duration
	now       func() time.Time
}

func NewQueryCache(staleTime time.Duration) *QueryCache {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &QueryCache{
		entries:   make(map[string]cacheEntry),
		staleTime: staleTime,
		now:       time.Now,
	}
}

// lookup returns the entry for key and the generation it was checked against.
func (q *QueryCache) lookup(key string) (any, uint64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	if !ok || q.now().Sub(e.fetchedAt) >= q.staleTime {
		return nil, q.gen, false
	}
	return e.value, q.gen, true
}

// storeAt keeps v only if no Invalidate happened since gen was read.
func (q *QueryCache) storeAt(key string, gen uint64, v any) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if gen != q.gen {
		return false
	}
	q.entries[key] = cacheEntry{value: v, fetchedAt: q.now()}
	return true
}

// Invalidate drops every entry. Loads started before the call finish for their
// own callers but are neither stored nor shared with later readers.
func (q *QueryCache) Invalidate() {
	q.mu.Lock()
	q.entries = make(map[string]cacheEntry)
	q.gen++
	q.mu.Unlock()
}

func (q *QueryCache) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func cached[T any](ctx context.Context, q *QueryCache, key string, load func(context.Context) (T, error)) (T, error) {
	v, gen, ok := q.lookup(key)
	if ok {
		return v.(T), nil
	}
	// The generation is part of the flight key so a reader arriving after an
	// Invalidate never joins a load that started before it.
	v, err, _ := q.group.Do(fmt.Sprintf("%d|%s", gen, key), func() (any, error) {
		res, err := load(ctx)
		if err != nil {
			return nil, err
		}
		q.storeAt(key, gen, res)
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func cacheKey(kind string, f schedule.Filter) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d", kind, f.StartDate, f.EndDate, f.LocationID, f.RoleID)
}

// CachedReader fronts the read calls of a Client with a QueryCache.
type CachedReader struct {
	client *Client
	cache  *QueryCache
}

func NewCachedReader(client *Client, cache *QueryCache) *CachedReader {
	return &CachedReader{client: client, cache: cache}
}

func (r *CachedReader) Shifts(ctx context.Context, f schedule.Filter) ([]schedule.ShiftResponse, error) {
	return cached(ctx, r.cache, cacheKey("shifts", f), func(ctx context.Context) ([]schedule.ShiftResponse, error) {
		return r.client.ListShifts(ctx, f)
	})
}

func (r *CachedReader) Assignments(ctx context.Context, f schedule.Filter) ([]schedule.Assignment, error) {
	return cached(ctx, r.cache, cacheKey("assignments", f), func(ctx context.Context) ([]schedule.Assignment, error) {
		return r.client.ListAssignments(ctx, f)
	})
}

func (r *CachedReader) EmployeeSchedules(ctx context.Context, f schedule.Filter) ([]schedule.EmployeeScheduleResponse, error) {
	return cached(ctx, r.cache, cacheKey("employee-schedules", f), func(ctx context.Context) ([]schedule.EmployeeScheduleResponse, error) {
		return r.client.ListEmployeeSchedules(ctx, f)
	})
}
