package cache

import "time"

const (
	// offerTimeout bounds how long a reader waits for a slot in the
	// promotion queue before giving up the recency update.
	offerTimeout = time.Millisecond

	// pollTimeout is the promoter's wakeup interval for rechecking the
	// closed flag while the queue is idle.
	pollTimeout = time.Second

	// minPromoteQueue is the lower bound on the promotion queue length so
	// small caches still absorb read bursts.
	minPromoteQueue = 1 << 7

	// maxPromoteQueue bounds the queue length: channel buffers are
	// allocated eagerly, so capacity/100 of a 2^30 cache must not turn
	// into a multi-megabyte ring.
	maxPromoteQueue = 1 << 16
)

// promoteQueueCap sizes the promotion queue at ~1% of the cache capacity,
// clamped to [minPromoteQueue, maxPromoteQueue].
func promoteQueueCap(capacity int) int {
	q := capacity / 100
	if q < minPromoteQueue {
		q = minPromoteQueue
	}
	if q > maxPromoteQueue {
		q = maxPromoteQueue
	}
	return q
}

// offer hands n to the promoter without ever failing the caller's
// operation. If the queue is full it waits at most wait, then drops the
// update; the entry simply keeps its current position.
//
// Readers call offer while holding the read side of mu, so wait must
// stay small (offerTimeout). Writers pass wait <= 0 and never block.
func (c *cache[K, V]) offer(n *node[K, V], wait time.Duration) {
	if c.closed.Load() {
		return
	}
	select {
	case c.recent <- n:
		return
	default:
	}
	if wait <= 0 {
		c.dropped.Add(1)
		c.opt.Metrics.PromotionDropped()
		return
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case c.recent <- n:
	case <-t.C:
		c.dropped.Add(1)
		c.opt.Metrics.PromotionDropped()
	}
}

// promoteLoop is the promoter: a single background goroutine draining the
// promotion queue and relinking touched entries at the head of the list.
// It holds only listMu, never mu, so readers are never blocked by it.
//
// It exits when Close sets the closed flag; a nil node is the wakeup
// nudge Close sends so shutdown does not wait for the next poll tick.
func (c *cache[K, V]) promoteLoop() {
	tick := time.NewTicker(pollTimeout)
	defer tick.Stop()
	for {
		if c.closed.Load() {
			return
		}
		select {
		case n := <-c.recent:
			if n == nil {
				continue
			}
			c.listMu.Lock()
			c.moveToFront(n)
			c.listMu.Unlock()
			c.applied.Add(1)
			c.opt.Metrics.Promoted()
		case <-tick.C:
		}
	}
}
