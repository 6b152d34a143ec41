package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"perf-bi/internal/core/domain"
)

// maxCacheEntries bounds the decode cache. When full the cache is reset,
// which is enough for a handful of datasets refreshed in place.
const maxCacheEntries = 64

// decodeCache memoises decoded datasets keyed strictly by a hash of the
// raw rows, so a changed sheet can never be served stale.
type decodeCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	records any
	report  domain.DecodeReport
}

func newDecodeCache() *decodeCache {
	return &decodeCache{entries: make(map[string]cacheEntry)}
}

// contentKey hashes dataset and rows. encoding/json sorts map keys, so the
// same content always produces the same key.
func contentKey(dataset string, rows []domain.Row) (string, bool) {
	b, err := json.Marshal(rows)
	if err != nil {
		return "", false
	}
	h := sha256.New()
	h.Write([]byte(dataset))
	h.Write([]byte{0})
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil)), true
}

func (c *decodeCache) get(key string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e, ok
}

func (c *decodeCache) put(key string, e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= maxCacheEntries {
		c.entries = make(map[string]cacheEntry)
	}
	c.entries[key] = e
}

// decodeWith runs decode through the cache when one is configured.
func decodeWith[T any](u *DashboardUseCase, dataset string, rows []domain.Row, decode func([]domain.Row) ([]T, domain.DecodeReport)) ([]T, domain.DecodeReport) {
	if u.cache == nil {
		return decode(rows)
	}
	key, ok := contentKey(dataset, rows)
	if !ok {
		return decode(rows)
	}
	if e, hit := u.cache.get(key); hit {
		if recs, ok := e.records.([]T); ok {
			u.observeCache("hit")
			return recs, e.report
		}
	}
	u.observeCache("miss")
	recs, rep := decode(rows)
	u.cache.put(key, cacheEntry{records: recs, report: rep})
	return recs, rep
}
