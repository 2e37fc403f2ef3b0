package nip44

import (
	"crypto/sha256"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"nip44/internal/domain"
)

// DefaultCacheSize is the number of key pairs a Codec remembers by default.
const DefaultCacheSize = 1024

// ComputeFunc derives the conversation key for a pair on a cache miss.
type ComputeFunc func(priv domain.PrivateKey, pub domain.PublicKey) (ConversationKey, error)

// ConversationKeyCache memoises conversation keys per (private, public) pair.
//
// Entries are evicted least recently used first. Concurrent misses for the
// same pair share one computation. Clear drops every entry, and a computation
// that was already running when Clear was called does not repopulate the cache.
type ConversationKeyCache struct {
	entries *lru.Cache
	flight  singleflight.Group
	compute ComputeFunc

	mu  sync.Mutex
	gen uint64
}

// NewConversationKeyCache returns a cache holding at most size pairs.
func NewConversationKeyCache(size int, compute ComputeFunc) (*ConversationKeyCache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("nip44: conversation key cache: %w", err)
	}
	return &ConversationKeyCache{entries: entries, compute: compute}, nil
}

// Entries are keyed by a digest of the pair so private keys are not kept as
// map keys.
func pairKey(priv domain.PrivateKey, pub domain.PublicKey) [32]byte {
	h := sha256.New()
	h.Write(priv[:])
	h.Write(pub[:])
	var k [32]byte
	h.Sum(k[:0])
	return k
}

// Get returns the cached key for the pair, if any.
func (c *ConversationKeyCache) Get(priv domain.PrivateKey, pub domain.PublicKey) (ConversationKey, bool) {
	v, ok := c.entries.Get(pairKey(priv, pub))
	if !ok {
		return ConversationKey{}, false
	}
	return v.(ConversationKey), true
}

// GetOrCompute returns the cached key for the pair or computes and stores it.
func (c *ConversationKeyCache) GetOrCompute(priv domain.PrivateKey, pub domain.PublicKey) (ConversationKey, error) {
	k := pairKey(priv, pub)
	if v, ok := c.entries.Get(k); ok {
		return v.(ConversationKey), nil
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.flight.Do(string(k[:]), func() (interface{}, error) {
		if v, ok := c.entries.Get(k); ok {
			return v, nil
		}
		ck, err := c.compute(priv, pub)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen == gen {
			c.entries.Add(k, ck)
		}
		c.mu.Unlock()
		return ck, nil
	})
	if err != nil {
		return ConversationKey{}, err
	}
	return v.(ConversationKey), nil
}

// Clear removes every cached key.
func (c *ConversationKeyCache) Clear() {
	c.mu.Lock()
	c.gen++
	c.entries.Purge()
	c.mu.Unlock()
}

// Len returns the number of cached pairs.
func (c *ConversationKeyCache) Len() int { return c.entries.Len() }
