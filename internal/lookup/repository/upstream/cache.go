package upstream

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// responseCache keeps successful bodies keyed by request URL.
type responseCache struct {
	lru *expirable.LRU[string, []byte]
}

// newResponseCache returns nil when size <= 0, which disables caching.
func newResponseCache(size int, ttl time.Duration) *responseCache {
	if size <= 0 {
		return nil
	}
	return &responseCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *responseCache) set(key string, body []byte) {
	if c == nil {
		return
	}
	c.lru.Add(key, body)
}

// remove drops base and every key of base with a query string.
func (c *responseCache) remove(base string) {
	if c == nil {
		return
	}
	for _, key := range c.lru.Keys() {
		if key == base || strings.HasPrefix(key, base+"?") {
			c.lru.Remove(key)
		}
	}
}
