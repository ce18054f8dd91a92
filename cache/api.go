package cache

import "context"

// Cache is a fixed-capacity, in-memory key/value cache interface.
// All methods are safe for concurrent use by multiple goroutines.
//
// Typical complexity for operations is O(1): a map lookup plus
// constant-time adjustments of an intrusive doubly linked list.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a boolean flag indicating presence.
	// Under LRU a hit schedules an asynchronous promotion of the entry;
	// under FIFO a hit has no effect on eviction order.
	// A nil key is reported as a miss.
	Get(k K) (V, bool)

	// Put inserts or updates k→v, evicting the strategy's candidate first
	// when the cache is full. Updating an existing key replaces the value
	// in place. Nil keys and nil values are rejected with ErrNilKey and
	// ErrNilValue.
	Put(k K, v V) error

	// Add inserts k→v only if k is not present.
	// Returns false if the key already exists (no update is performed).
	Add(k K, v V) (bool, error)

	// Remove deletes k if present and returns true on success.
	Remove(k K) bool

	// Len returns the number of resident entries.
	Len() int

	// GetOrLoad returns the value for k, loading it via Options.Loader on miss.
	// Concurrent loads for the same key are coalesced (singleflight).
	// If no Loader was configured, returns ErrNoLoader.
	GetOrLoad(ctx context.Context, k K) (V, error)

	// Close stops the background promoter (if any) and returns nil.
	// It never blocks and may be called more than once. Operations remain
	// usable after Close; only recency updates stop.
	Close() error
}
