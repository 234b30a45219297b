package wttr

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-cli/internal/domain"
	"github.com/couchcryptid/weather-cli/internal/observability"
)

// CachedFetcher wraps a ReportFetcher with an in-memory LRU cache whose
// entries expire after a fixed TTL. Errors are never cached.
type CachedFetcher struct {
	inner   domain.ReportFetcher
	cache   *lruCache
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCachedFetcher creates a cache decorator around a fetcher.
func NewCachedFetcher(inner domain.ReportFetcher, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

// Fetch returns a fresh cached report or fetches a new one.
func (c *CachedFetcher) Fetch(ctx context.Context, location string) (domain.Report, error) {
	key := cacheKey(location)
	rep, storedAt, ok := c.cache.get(key)
	switch {
	case ok && c.clock.Since(storedAt) < c.ttl:
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return rep, nil
	case ok:
		c.metrics.CacheLookups.WithLabelValues("expired").Inc()
	default:
		c.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}
	return c.Refresh(ctx, location)
}

// Refresh fetches location from the inner fetcher and stores the result.
func (c *CachedFetcher) Refresh(ctx context.Context, location string) (domain.Report, error) {
	rep, err := c.inner.Fetch(ctx, location)
	if err != nil {
		return rep, err
	}
	c.cache.put(cacheKey(location), rep, c.clock.Now())
	c.metrics.CacheEntries.Set(float64(c.cache.len()))
	return rep, nil
}

// cacheKey folds case and whitespace so "oslo" and " Oslo " share an entry.
func cacheKey(location string) string {
	return strings.Join(strings.Fields(strings.ToLower(location)), " ")
}

// lruCache is a simple thread-safe LRU cache of reports with insert times.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key      string
	value    domain.Report
	storedAt time.Time
	prev     *entry
	next     *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.Report, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Report{}, time.Time{}, false
	}
	c.moveToFront(e)
	return e.value, e.storedAt, true
}

func (c *lruCache) put(key string, value domain.Report, storedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.storedAt = storedAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, storedAt: storedAt}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
