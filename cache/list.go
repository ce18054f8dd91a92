package cache

// Intrusive doubly linked list operations. All of them are O(1).
//
// Locking: in LRU mode the links are guarded by listMu, which both the
// writer (Put/Add/Remove, while also holding mu) and the promoter hold.
// In FIFO mode there is no promoter and the links are only ever touched
// under the write side of mu.

// pushFront links n at the head of the list.
func (c *cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// moveToFront promotes n to the head.
//
// A node with nil links that is not the head has been unlinked (evicted
// or removed) after it was offered for promotion; re-linking it would
// resurrect an entry the index no longer knows about, so it is skipped.
func (c *cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	if n.prev == nil && n.next == nil {
		return // detached: unlinked while queued
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.tail == n {
		c.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
}

// unlink removes n from the list and clears its links so a stale
// reference still sitting in the promotion queue is recognizable
// as detached.
func (c *cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if c.head == n {
		c.head = n.next
	}
	if c.tail == n {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// back returns the current eviction candidate.
func (c *cache[K, V]) back() *node[K, V] { return c.tail }
