package loader

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"go-freight-dashboard/internal/model"
	"go-freight-dashboard/internal/sheets"
)

// DefaultTTL matches the dashboard's freshness window.
const DefaultTTL = 10 * time.Minute

// ValuesFetcher is the upstream the cache sits in front of.
type ValuesFetcher interface {
	Values(ctx context.Context, loc sheets.Locator) ([][]string, error)
}

// RefreshInfo describes one completed (or failed) reload of a range.
type RefreshInfo struct {
	Locator  sheets.Locator
	Trigger  string // "expiry" or "manual"
	Rows     int
	Duration time.Duration
	Err      error
}

type entry struct {
	table     *model.Table
	fetchedAt time.Time
}

// CachedLoader caches built tables per locator with a TTL. Concurrent loads
// of the same expired range collapse into one upstream fetch; while a fetch
// is in flight other callers block on its result rather than racing it.
// Errors are never cached, so the next call retries.
type CachedLoader struct {
	fetcher ValuesFetcher
	now     func() time.Time

	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	group      singleflight.Group
	generation atomic.Uint64

	// OnRefresh, when set, is called after every upstream fetch, successful
	// or not. Called from whichever goroutine performed the fetch.
	OnRefresh func(RefreshInfo)
}

// NewCachedLoader wraps fetcher with a TTL cache. ttl <= 0 means DefaultTTL.
func NewCachedLoader(fetcher ValuesFetcher, ttl time.Duration) *CachedLoader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedLoader{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Load returns the cached table for loc, fetching and rebuilding it when
// absent or older than the TTL.
func (c *CachedLoader) Load(ctx context.Context, loc sheets.Locator) (*model.Table, error) {
	key := loc.Key()

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return e.table, nil
	}
	c.mu.Unlock()

	return c.fetch(ctx, loc, "expiry")
}

// Refresh drops the cached entry for loc and fetches it again immediately.
func (c *CachedLoader) Refresh(ctx context.Context, loc sheets.Locator) (*model.Table, error) {
	key := loc.Key()

	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.group.Forget(key)

	return c.fetch(ctx, loc, "manual")
}

// SetTTL changes the freshness window for subsequent Loads. Existing
// entries are re-judged against the new TTL, not flushed.
func (c *CachedLoader) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	c.ttl = ttl
	c.mu.Unlock()
}

// Invalidate drops every cached entry. The next Load refetches.
func (c *CachedLoader) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Generation increments on every successful fetch; pollers compare it to
// learn that fresher data landed.
func (c *CachedLoader) Generation() uint64 {
	return c.generation.Load()
}

func (c *CachedLoader) fetch(ctx context.Context, loc sheets.Locator, trigger string) (*model.Table, error) {
	key := loc.Key()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		start := c.now()
		values, err := c.fetcher.Values(ctx, loc)
		var table *model.Table
		if err == nil {
			table, err = BuildTable(values)
		}

		info := RefreshInfo{Locator: loc, Trigger: trigger, Duration: c.now().Sub(start), Err: err}
		if err == nil {
			info.Rows = table.Len()
			c.mu.Lock()
			c.entries[key] = entry{table: table, fetchedAt: c.now()}
			c.mu.Unlock()
			c.generation.Add(1)
		}
		if c.OnRefresh != nil {
			c.OnRefresh(info)
		}

		if err != nil {
			return nil, err
		}
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Table), nil
}
