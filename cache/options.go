package cache

import "context"

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	// Evict is called when an entry is displaced to make room for a new one.
	// Explicit Remove is not reported here.
	Evict()
	// Promoted is called when the promoter applies a queued recency update.
	Promoted()
	// PromotionDropped is called when a recency update is discarded because
	// the promotion queue stayed full for the whole offer window.
	PromotionDropped()
	Size(entries int)
}

// Options configures the cache behavior. Zero values are safe;
// defaults are applied in New():
//   - zero Strategy => LRU
//   - nil Metrics   => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. It must be >= 0; zero means the
	// cache stores nothing. Values above 2^30 are clamped.
	Capacity int

	// Strategy selects the eviction policy (LRU or FIFO).
	Strategy Strategy

	// Loader fetches a value on cache miss. Used by GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// Observability
	// OnEvict is called on capacity eviction (not on explicit Remove) under
	// the cache's write lock; keep callbacks lightweight.
	OnEvict func(k K, v V)
	Metrics Metrics
}
