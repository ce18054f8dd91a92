// Package cache provides a fast, generic, fixed-capacity in-memory cache
// with two interchangeable eviction strategies (LRU and FIFO), optional
// singleflight loading, and lightweight metrics hooks.
//
// Design
//
//   - Storage: a map[K]*node for lookups over an intrusive doubly linked
//     list for ordering. The head is the most recent (LRU) or newest
//     (FIFO) entry, the tail is the eviction candidate. All operations
//     are O(1) expected.
//
//   - Concurrency: the index and values are protected by an RWMutex, so
//     reads run in parallel. The list has its own mutex in LRU mode: a
//     read never reorders the list inline. Instead a hit is offered to a
//     bounded promotion queue, and a single background promoter goroutine
//     drains it and relinks entries at the head. Readers therefore never
//     wait for list surgery, at the price of slightly stale recency.
//
//   - Backpressure: offering to a full queue waits at most 1ms on the
//     read path and not at all on the write path; the update is then
//     dropped. A dropped promotion only means the entry keeps its current
//     position, so correctness of Get/Put is unaffected.
//
//   - FIFO: insertion order is the eviction order. Reads and in-place
//     updates do not refresh an entry's age, and no promoter runs.
//
//   - GetOrLoad: coalesces concurrent loads for the same key using
//     singleflight. If Loader is nil, GetOrLoad returns ErrNoLoader.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Promoted/
//     PromotionDropped/Size signals. By default NoopMetrics is used;
//     plug the Prometheus adapter from metrics/prom to export them.
//
//   - Callbacks: Options.OnEvict(k, v) is called for capacity evictions
//     (not for explicit Remove).
//
// Basic usage
//
//	// Create an LRU cache with capacity for 10k entries.
//	c, err := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 10_000})
//	if err != nil {
//	    // invalid Options
//	}
//	defer c.Close()
//	_ = c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// FIFO eviction
//
//	c, _ := cache.New[int, string](cache.Options[int, string]{
//	    Capacity: 1024,
//	    Strategy: cache.FIFO,
//	})
//
// With GetOrLoad (singleflight)
//
//	c, _ := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        // e.g. fetch from DB
//	        return "v:" + k, nil
//	    },
//	})
//	v, err := c.GetOrLoad(context.Background(), "key")
//
// Exporting metrics (Prometheus adapter)
//
//	m := prom.New(nil, "lazycache", "demo", nil) // implements Metrics
//	c, _ := cache.New[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
//
// Shutdown
//
// Close stops the promoter goroutine of an LRU cache and is a no-op for
// FIFO. It never blocks, is idempotent, and deliberately leaves the cache
// operational: reads and writes keep working, recency just freezes.
//
// Thread-safety & complexity
//
// All methods on Cache are safe for concurrent use. Typical operation cost
// is O(1) expected time: one map access and a constant amount of pointer
// fixes. Eviction work is also O(1) per removed item.
//
// See options.go for all available Options fields and the metrics/prom
// package for the Prometheus adapter.
package cache
