package pipeline

import "sync"

// cacheKey identifies one (input bytes, options) combination.
type cacheKey struct {
	hash [32]byte
	opts Options
}

// resultCache memoizes pipeline results. Eviction is whole-cache on
// overflow; inputs are large relative to the cache bound and precision
// eviction buys nothing here.
type resultCache struct {
	mu      sync.Mutex
	max     int
	entries map[cacheKey]*Result
}

func newResultCache(max int) *resultCache {
	return &resultCache{max: max, entries: make(map[cacheKey]*Result)}
}

func (c *resultCache) get(key cacheKey) (*Result, bool) {
	if c.max <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *resultCache) put(key cacheKey, res *Result) {
	if c.max <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		c.entries = make(map[cacheKey]*Result, c.max)
	}
	c.entries[key] = res
}
