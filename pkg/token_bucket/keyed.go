package token_bucket

import (
	"sync"
	"time"
)

// Keyed keeps one TokenBucket per key, typically the client address.
// Buckets unused for idleTTL are dropped, a dropped key starts again with a full bucket.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	opts       []Option
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*keyedEntry
	lastSweep time.Time
}

type keyedEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration, opts ...Option) *Keyed {
	o := buildOptions(opts)
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		opts:       opts,
		now:        o.now,
		buckets:    make(map[string]*keyedEntry),
		lastSweep:  o.now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	now := k.now()
	if k.idleTTL > 0 && now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedEntry{bucket: NewTokenBucket(k.capacity, k.refillRate, k.opts...)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Len is the number of tracked keys.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *Keyed) sweep(now time.Time) {
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
