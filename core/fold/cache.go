// core/fold/cache.go
package fold

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	seq   string
	tempC float64
}

// Cache is an Oracle decorator memoizing successful Results keyed on
// (sequence, temperature). Folding is the expensive step of the
// pipeline; everything downstream is cheap pure derivation, so this is
// the only cache the engine carries.
type Cache struct {
	inner Oracle
	lru   *lru.Cache[cacheKey, Result]
}

// NewCache wraps inner with an LRU of at most size entries.
func NewCache(inner Oracle, size int) (*Cache, error) {
	l, err := lru.New[cacheKey, Result](size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner, lru: l}, nil
}

// Fold implements Oracle. Errors are not cached; a failed fold will be
// retried on the next call.
func (c *Cache) Fold(ctx context.Context, seq string, tempC float64) (Result, error) {
	key := cacheKey{seq: seq, tempC: tempC}
	if r, ok := c.lru.Get(key); ok {
		return r, nil
	}
	r, err := c.inner.Fold(ctx, seq, tempC)
	if err != nil {
		return r, err
	}
	r = Sanitize(r)
	c.lru.Add(key, r)
	return r, nil
}

// Len reports the number of cached fold results.
func (c *Cache) Len() int { return c.lru.Len() }
