package sentry_ext

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	recentErrorDuration = time.Minute * 5
	defaultCacheSize    = 100
)

type cache struct {
	*lru.Cache

	// now is replaceable in tests.
	now func() time.Time
}

func newCache(size int) (*cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &cache{Cache: c, now: time.Now}, nil
}

// shouldCapture reports whether err was not sent within the last
// recentErrorDuration, and records it as sent if so.
func (c *cache) shouldCapture(err error) bool {
	sum := md5.Sum([]byte(err.Error()))
	hash := hex.EncodeToString(sum[:])

	now := c.now()
	if lastSent, exists := c.Get(hash); exists {
		if now.Sub(lastSent.(time.Time)) < recentErrorDuration {
			return false
		}
	}

	c.Add(hash, now)
	return true
}
