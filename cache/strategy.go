package cache

import "fmt"

// Strategy selects the eviction policy applied when the cache is full.
type Strategy uint8

const (
	// LRU evicts the least recently used entry. Reads refresh recency
	// asynchronously through the promotion queue, so they stay cheap and
	// never block behind writers reordering the list.
	LRU Strategy = iota

	// FIFO evicts the oldest inserted entry. Reads do not affect eviction
	// order, and updating an existing key does not refresh its age.
	FIFO
)

// String returns the lowercase strategy name used in flags and errors.
func (s Strategy) String() string {
	switch s {
	case LRU:
		return "lru"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name ("lru", "fifo") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "lru":
		return LRU, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
	}
}
