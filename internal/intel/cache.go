package intel

import (
	"sync"
	"time"

	"github.com/arjunmalhotra/portwise/pkg/model"
)

type cacheEntry struct {
	intel    model.ProcessIntelligence
	storedAt time.Time
}

// cache holds computed intelligence per PID for a short TTL. A PID can be
// reused by the OS between scans; within the 30-second window that
// staleness is accepted rather than re-validated.
type cache struct {
	mu             sync.Mutex
	entries        map[int]cacheEntry
	ttl            time.Duration
	pruneThreshold int
	staleAge       time.Duration
}

func newCache(cfg Config) *cache {
	return &cache{
		entries:        make(map[int]cacheEntry),
		ttl:            cfg.CacheTTL,
		pruneThreshold: cfg.CachePruneThreshold,
		staleAge:       cfg.CacheStaleAge,
	}
}

func (c *cache) get(pid int, now time.Time) (model.ProcessIntelligence, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[pid]
	if !ok || now.Sub(e.storedAt) >= c.ttl {
		return model.ProcessIntelligence{}, false
	}
	return e.intel, true
}

func (c *cache) put(pid int, intel model.ProcessIntelligence, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[pid] = cacheEntry{intel: intel, storedAt: now}

	// Opportunistic prune, triggered by growth rather than a timer.
	if len(c.entries) > c.pruneThreshold {
		for pid, e := range c.entries {
			if now.Sub(e.storedAt) > c.staleAge {
				delete(c.entries, pid)
			}
		}
	}
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
