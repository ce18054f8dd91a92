// Package singleflight coalesces concurrent calls for the same key into
// a single execution whose result is shared by every caller.
package singleflight

import (
	"context"
	"sync"
)

// Group deduplicates concurrent work per key K: the first caller becomes
// the leader and runs fn, later callers for the same key wait for the
// leader's result instead of repeating the work.
//
// Concurrency notes:
//   - Followers wait on the flight's done channel. Publishing (val, err)
//     happens-before close(done), so reads after <-done observe the
//     final values.
//   - Cancelling ctx in a follower unblocks only that follower; it does
//     NOT cancel the leader's fn. If the work itself must be cancellable,
//     pass ctx into fn and handle it there.
type Group[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*flight[V]
}

// flight is one in-progress execution shared by all callers of a key.
type flight[V any] struct {
	done chan struct{} // closed when val/err are published
	val  V
	err  error
}

// Do runs fn at most once per key among concurrent callers and returns
// the shared result. A follower whose ctx is cancelled returns ctx.Err()
// while the leader keeps running.
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[K]*flight[V])
	}
	if f, ok := g.m[key]; ok {
		// Join the existing flight and wait (respecting ctx).
		done := f.done
		g.mu.Unlock()

		select {
		case <-done:
			return f.val, f.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	// We are the leader for this key.
	f := &flight[V]{done: make(chan struct{})}
	g.m[key] = f
	g.mu.Unlock()

	// Execute fn outside the lock.
	v, err := fn()

	// Publish the result and wake followers.
	f.val, f.err = v, err
	close(f.done)

	// Retire the flight so the next call starts fresh.
	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()

	return v, err
}
