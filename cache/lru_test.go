package cache

import "testing"

// newLRU builds an LRU cache for the scenario tests below.
func newLRU(t *testing.T, capacity int) Cache[int, string] {
	t.Helper()
	c, err := New[int, string](Options[int, string]{Capacity: capacity, Strategy: LRU})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func mustHit(t *testing.T, c Cache[int, string], k int, want string) {
	t.Helper()
	v, ok := c.Get(k)
	if !ok {
		t.Fatalf("key %d must be present", k)
	}
	if v != want {
		t.Fatalf("key %d: want %q, got %q", k, want, v)
	}
}

func mustMiss(t *testing.T, c Cache[int, string], k int) {
	t.Helper()
	if v, ok := c.Get(k); ok {
		t.Fatalf("key %d must be evicted, got %q", k, v)
	}
}

// A single-slot LRU keeps only the latest insert.
func TestLRU_SingleSlot(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 1)
	_ = c.Put(1, "a")
	_ = c.Put(2, "b")

	mustHit(t, c, 2, "b")
	mustMiss(t, c, 1)
}

// Reading an entry promotes it, so it outlives colder entries once the
// promoter has drained the queue. This is the steady-state contract:
// insert 1..3, read 1, insert 4 and 5; key 1 survives, 2 and 3 do not.
func TestLRU_TouchedEntrySurvives(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 3)
	_ = c.Put(1, "a")
	_ = c.Put(2, "b")
	_ = c.Put(3, "c")

	c.Get(1)
	waitPromotions(t, c, 1)

	_ = c.Put(4, "d")
	_ = c.Put(5, "e")

	mustHit(t, c, 1, "a")
	mustHit(t, c, 4, "d")
	mustHit(t, c, 5, "e")
	mustMiss(t, c, 2)
	mustMiss(t, c, 3)
}

// Updating an existing key counts as a touch as well: the write path
// offers the node to the promoter (without waiting for a slot).
func TestLRU_UpdateCountsAsTouch(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 3)
	_ = c.Put(1, "a")
	_ = c.Put(2, "b")
	_ = c.Put(3, "c")

	_ = c.Put(1, "aa")
	waitPromotions(t, c, 1)

	_ = c.Put(4, "d")
	_ = c.Put(5, "e")

	mustHit(t, c, 1, "aa")
	mustHit(t, c, 4, "d")
	mustHit(t, c, 5, "e")
	mustMiss(t, c, 2)
	mustMiss(t, c, 3)
}

// Entries kept hot by repeated updates survive successive waves of
// inserts; the untouched ones are displaced instead.
func TestLRU_RepeatedUpdatesKeepEntriesHot(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 3)
	_ = c.Put(1, "a")
	_ = c.Put(2, "b")
	_ = c.Put(3, "c")

	_ = c.Put(1, "aa")
	_ = c.Put(2, "bb")
	waitPromotions(t, c, 2)

	_ = c.Put(4, "d")
	_ = c.Put(1, "aaa")
	_ = c.Put(2, "bbb")
	waitPromotions(t, c, 4)

	_ = c.Put(5, "e")

	mustHit(t, c, 1, "aaa")
	mustHit(t, c, 2, "bbb")
	mustHit(t, c, 5, "e")
	mustMiss(t, c, 3)
	mustMiss(t, c, 4)
}

// Entries kept hot by repeated reads survive successive waves of inserts.
func TestLRU_TouchedEntriesSurviveRepeatedly(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 3)
	_ = c.Put(1, "a")
	_ = c.Put(2, "b")
	_ = c.Put(3, "c")

	c.Get(1)
	c.Get(2)
	waitPromotions(t, c, 2)

	_ = c.Put(4, "d")

	c.Get(1)
	c.Get(2)
	waitPromotions(t, c, 4)

	_ = c.Put(5, "e")

	mustHit(t, c, 1, "a")
	mustHit(t, c, 2, "b")
	mustHit(t, c, 5, "e")
	mustMiss(t, c, 3)
	mustMiss(t, c, 4)
}

// Mixed reads and updates shape the order together: the least recently
// touched entry is the one displaced by the next insert.
func TestLRU_MixedTouchAndUpdate(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 3)
	_ = c.Put(1, "a")
	_ = c.Put(2, "b")
	_ = c.Put(3, "c")

	c.Get(1)
	c.Get(2)
	waitPromotions(t, c, 2)

	_ = c.Put(4, "d") // displaces 3

	c.Get(1)
	_ = c.Put(2, "bb")
	_ = c.Put(1, "aa")
	c.Get(4)
	waitPromotions(t, c, 6)

	_ = c.Put(5, "e") // displaces 2: the oldest touch in this round

	mustHit(t, c, 1, "aa")
	mustHit(t, c, 4, "d")
	mustHit(t, c, 5, "e")
	mustMiss(t, c, 2)
	mustMiss(t, c, 3)
}
