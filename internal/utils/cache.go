package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem enveloppe la valeur avec sa date d'expiration
type CacheItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// TTLCache cache LRU borné avec expiration, utilisé pour les réponses TMDB
type TTLCache[T any] struct {
	storage *lru.Cache[string, CacheItem[T]]
	ttl     time.Duration
}

// NewTTLCache size est le nombre maximal d'entrées, ttl la durée de validité
func NewTTLCache[T any](size int, ttl time.Duration) *TTLCache[T] {
	// lru.New est thread-safe
	c, _ := lru.New[string, CacheItem[T]](size)
	return &TTLCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

func (c *TTLCache[T]) Set(key string, value T) {
	item := CacheItem[T]{
		Value:     value,
		ExpiredAt: time.Now().Add(c.ttl),
	}
	c.storage.Add(key, item)
}

// Get lecture avec contrôle d'expiration
func (c *TTLCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}

	if time.Now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}

	return item.Value, true
}

func (c *TTLCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

func (c *TTLCache[T]) Clear() {
	c.storage.Purge()
}

func (c *TTLCache[T]) Len() int {
	return c.storage.Len()
}
