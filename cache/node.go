package cache

// node is an intrusive doubly linked list element owned by the cache.
// It stores the key/value alongside the list links used by the eviction
// strategies.
type node[K comparable, V any] struct {
	key K
	val V

	// Intrusive list links: head is most-recent (LRU) or newest (FIFO),
	// tail is the eviction candidate.
	prev *node[K, V]
	next *node[K, V]
}
