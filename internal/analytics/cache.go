package analytics

import (
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// ResponseCache keeps marshalled analytics responses. Any log write makes
// every cached response stale, so invalidation drops everything.
type ResponseCache struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewResponseCache(sizeMB, expireSeconds int) *ResponseCache {
	return &ResponseCache{
		cache:         freecache.NewCache(sizeMB * 1024 * 1024),
		expireSeconds: expireSeconds,
	}
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	value, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("analytics cache get [%s]: %s", key, err)
		}
		return nil, false
	}
	return value, true
}

func (c *ResponseCache) Set(key string, value []byte) {
	if err := c.cache.Set([]byte(key), value, c.expireSeconds); err != nil {
		log.Warnf("analytics cache set [%s]: %s", key, err)
	}
}

func (c *ResponseCache) Invalidate() {
	c.cache.Clear()
}

func (c *ResponseCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
