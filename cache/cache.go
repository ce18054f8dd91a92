package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vfedotov/lazycache/internal/singleflight"
	"github.com/vfedotov/lazycache/internal/util"
)

const (
	// maxCapacity caps Options.Capacity; larger values are clamped.
	maxCapacity = 1 << 30

	// maxMapHint bounds the initial map allocation so a huge Capacity does
	// not preallocate gigabytes of buckets up front.
	maxMapHint = 1 << 16
)

// cache is an in-memory KV store: a hash index over an intrusive doubly
// linked list, with a fixed entry capacity and a pluggable eviction
// strategy (LRU or FIFO).
// All methods are safe for concurrent use by multiple goroutines.
type cache[K comparable, V any] struct {
	capacity int
	strat    Strategy

	// Whether K / V can be nil at all; when false the per-op nil checks
	// reduce to a single branch.
	keyNilable bool
	valNilable bool

	// ---- guarded by mu ----
	mu sync.RWMutex
	m  map[K]*node[K, V]

	// List links: head is the most recent (LRU) or newest (FIFO) entry,
	// tail is the eviction candidate. LRU guards them with listMu so the
	// promoter can relink entries without holding mu; FIFO has no promoter
	// and mutates them under the write side of mu alone.
	listMu sync.Mutex
	head   *node[K, V]
	tail   *node[K, V]

	// recent carries read-touched nodes to the promoter (LRU only).
	recent chan *node[K, V]
	closed atomic.Bool

	opt Options[K, V]

	// singleflight group for coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group[K, V]

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_       util.CacheLinePad
	hits    util.PaddedAtomicInt64
	misses  util.PaddedAtomicInt64
	evicts  util.PaddedAtomicUint64
	applied util.PaddedAtomicUint64
	dropped util.PaddedAtomicUint64
}

// New constructs a cache with the provided Options.
// Defaults:
//   - zero Strategy => LRU
//   - nil Metrics   => NoopMetrics
//
// Capacity must be >= 0 (zero stores nothing); values above 2^30 are
// clamped. An LRU cache starts one background promoter goroutine; call
// Close to stop it.
func New[K comparable, V any](opt Options[K, V]) (Cache[K, V], error) {
	if opt.Capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opt.Capacity)
	}
	switch opt.Strategy {
	case LRU, FIFO:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, uint8(opt.Strategy))
	}
	capacity := opt.Capacity
	if capacity > maxCapacity {
		capacity = maxCapacity
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	hint := capacity
	if hint > maxMapHint {
		hint = maxMapHint
	}
	c := &cache[K, V]{
		capacity:   capacity,
		strat:      opt.Strategy,
		keyNilable: nilable[K](),
		valNilable: nilable[V](),
		m:          make(map[K]*node[K, V], hint),
		opt:        opt,
	}
	if c.strat == LRU {
		c.recent = make(chan *node[K, V], promoteQueueCap(capacity))
		go c.promoteLoop()
	}
	// return pointer-to-impl as the interface (avoids unexported-return lint)
	return c, nil
}

// ---- Cache[K,V] implementation ----

// Get returns the value for k and a presence flag.
// On an LRU hit the entry is offered to the promoter; the read itself
// never reorders the list. A nil key is a plain miss.
func (c *cache[K, V]) Get(k K) (V, bool) {
	var zero V
	if c.keyNilable && isNil(k) {
		return zero, false
	}

	c.mu.RLock()
	n, ok := c.m[k]
	if !ok {
		c.mu.RUnlock()
		c.misses.Add(1)
		c.opt.Metrics.Miss()
		return zero, false
	}
	v := n.val
	if c.strat == LRU {
		// Offered while still under the read lock, so the node cannot be
		// evicted before it reaches the queue. Bounded by offerTimeout.
		c.offer(n, offerTimeout)
	}
	c.mu.RUnlock()

	c.hits.Add(1)
	c.opt.Metrics.Hit()
	return v, true
}

// Put inserts or updates k→v. Updating an existing key replaces the value
// in place; under LRU it also counts as a touch, under FIFO it does not
// refresh the entry's age.
func (c *cache[K, V]) Put(k K, v V) error {
	if c.keyNilable && isNil(k) {
		return ErrNilKey
	}
	if c.valNilable && isNil(v) {
		return ErrNilValue
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.m[k]; ok {
		n.val = v
		if c.strat == LRU {
			// Writers never wait for a queue slot.
			c.offer(n, 0)
		}
		return nil
	}
	if c.capacity == 0 {
		return nil
	}
	c.insertLocked(&node[K, V]{key: k, val: v})
	return nil
}

// Add inserts k→v only if k is not present.
// Returns false if the key already exists (no update, no touch).
func (c *cache[K, V]) Add(k K, v V) (bool, error) {
	if c.keyNilable && isNil(k) {
		return false, ErrNilKey
	}
	if c.valNilable && isNil(v) {
		return false, ErrNilValue
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.m[k]; ok {
		return false, nil
	}
	if c.capacity == 0 {
		return false, nil
	}
	c.insertLocked(&node[K, V]{key: k, val: v})
	return true, nil
}

// Remove deletes k if present and returns true on success.
// Explicit removal is not counted as an eviction and does not call OnEvict.
func (c *cache[K, V]) Remove(k K) bool {
	if c.keyNilable && isNil(k) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.m[k]
	if !ok {
		return false
	}
	if c.strat == LRU {
		c.listMu.Lock()
		c.unlink(n)
		c.listMu.Unlock()
	} else {
		c.unlink(n)
	}
	delete(c.m, k)
	c.opt.Metrics.Size(len(c.m))
	return true
}

// Len returns the number of resident entries.
func (c *cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// GetOrLoad returns the value for k; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same key (singleflight).
// If no Loader is configured, returns ErrNoLoader.
func (c *cache[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	if v, ok := c.Get(k); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	// singleflight: exactly one real load for the key
	return c.sf.Do(ctx, k, func() (V, error) {
		// double-check after flight join
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, k)
		if err == nil {
			_ = c.Put(k, v) // a nil-valued load is served but not cached
		}
		return v, err
	})
}

// Close stops the promoter (if any) and returns nil. It never blocks and
// is safe to call more than once. The cache itself stays usable: Get/Put
// keep working after Close, only recency updates stop being applied.
func (c *cache[K, V]) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.recent != nil {
		// Nudge the promoter so it exits without waiting for the poll tick.
		select {
		case c.recent <- nil:
		default:
		}
	}
	return nil
}

// ---- internals (mu held for writing) ----

// insertLocked links a fresh node as the newest entry, evicting the tail
// first when the cache is full. LRU wraps the eviction and insertion in
// listMu so the promoter never observes a half-linked list; FIFO owns the
// list exclusively under mu.
func (c *cache[K, V]) insertLocked(n *node[K, V]) {
	var ev *node[K, V]
	switch c.strat {
	case FIFO:
		if len(c.m) >= c.capacity {
			ev = c.evictTailLocked()
		}
		c.pushFront(n)
	default: // LRU
		c.listMu.Lock()
		if len(c.m) >= c.capacity {
			ev = c.evictTailLocked()
		}
		c.pushFront(n)
		c.listMu.Unlock()
	}
	c.m[n.key] = n

	if ev != nil {
		c.evicts.Add(1)
		c.opt.Metrics.Evict()
		if cb := c.opt.OnEvict; cb != nil {
			// Called under mu (outside listMu); keep callbacks lightweight.
			cb(ev.key, ev.val)
		}
	}
	c.opt.Metrics.Size(len(c.m))
}

// evictTailLocked unlinks the eviction candidate and drops it from the
// index. Callers hold the write side of mu and, in LRU mode, listMu.
func (c *cache[K, V]) evictTailLocked() *node[K, V] {
	n := c.back()
	if n == nil {
		return nil
	}
	c.unlink(n)
	delete(c.m, n.key)
	return n
}
