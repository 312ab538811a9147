// Package handler provides the HTTP layer: gin handlers, middleware, and the
// diagnosis response cache.
package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
)

const (
	// DefaultCacheTTL is the default time-to-live for cached diagnoses.
	DefaultCacheTTL = 5 * time.Minute

	// cleanupInterval is how often the background cleaner runs.
	cleanupInterval = 1 * time.Minute
)

// cacheEntry is a cached diagnosis with its expiration time.
type cacheEntry struct {
	result   domain.DiagnosisResult
	expireAt time.Time
}

// ResultCache is a thread-safe in-memory cache for diagnosis results. The
// external API is slow and metered, so identical resubmissions of the same
// code or file are answered locally within the TTL.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	logger  *slog.Logger

	hits   int64
	misses int64
}

// ResultCacheOption is a functional option for configuring ResultCache.
type ResultCacheOption func(*ResultCache)

// WithCacheTTL sets a custom TTL for cache entries.
func WithCacheTTL(ttl time.Duration) ResultCacheOption {
	return func(c *ResultCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheLogger sets a custom logger.
func WithCacheLogger(logger *slog.Logger) ResultCacheOption {
	return func(c *ResultCache) {
		c.logger = logger
	}
}

// NewResultCache creates a ResultCache and starts its background cleaner.
func NewResultCache(opts ...ResultCacheOption) *ResultCache {
	c := &ResultCache{
		entries: make(map[string]cacheEntry),
		ttl:     DefaultCacheTTL,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	go c.startCleanup()

	return c
}

// HashInput derives the cache key from the submitted input bytes. The kind
// is mixed in so two inputs with identical bytes but different kinds never
// collide.
func HashInput(kind string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached diagnosis for a key, if present and unexpired.
func (c *ResultCache) Get(key string) (domain.DiagnosisResult, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists || time.Now().After(entry.expireAt) {
		c.mu.Lock()
		if exists {
			delete(c.entries, key)
		}
		c.misses++
		c.mu.Unlock()
		return domain.DiagnosisResult{}, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()

	return entry.result, true
}

// Set stores a diagnosis under the given key with the configured TTL.
func (c *ResultCache) Set(key string, result domain.DiagnosisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		result:   result,
		expireAt: time.Now().Add(c.ttl),
	}
}

// Stats returns hit/miss counters and the current entry count.
func (c *ResultCache) Stats() (hits, misses int64, size int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses, len(c.entries)
}

// startCleanup periodically evicts expired entries.
func (c *ResultCache) startCleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *ResultCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expired := 0
	for key, entry := range c.entries {
		if now.After(entry.expireAt) {
			delete(c.entries, key)
			expired++
		}
	}

	if expired > 0 {
		c.logger.Debug("cache cleanup",
			slog.Int("expired_entries", expired),
			slog.Int("remaining_entries", len(c.entries)),
		)
	}
}
