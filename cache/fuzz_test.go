//go:build go1.18

package cache

import (
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Add/Remove semantics under arbitrary string inputs
// and both eviction strategies.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetRemove(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings, both strategies.
	f.Add("", "", false)
	f.Add("a", "1", false)
	f.Add("b", "2", true)
	f.Add("αβγ", "δ", false)
	f.Add("emoji🙂", "🙂🙂", true)
	f.Add("long", strings.Repeat("x", 1024), false)

	f.Fuzz(func(t *testing.T, k, v string, useFIFO bool) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		strat := LRU
		if useFIFO {
			strat = FIFO
		}
		c, err := New[string, string](Options[string, string]{Capacity: 16, Strategy: strat})
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = c.Close() })

		// Put -> Get must return the same value.
		if err := c.Put(k, v); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, ok)
		}

		// Add duplicate must not overwrite and must return false.
		if ok, err := c.Add(k, "other"); err != nil || ok {
			t.Fatalf("Add duplicate: ok=%v err=%v", ok, err)
		}
		// Value must remain the same after failed Add.
		if got2, ok := c.Get(k); !ok || got2 != v {
			t.Fatalf("after duplicate Add: want %q, got %q ok=%v", v, got2, ok)
		}

		// Remove must delete and return true once.
		if !c.Remove(k) {
			t.Fatalf("Remove must return true")
		}
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after Remove")
		}

		// After removal, Add should succeed again.
		if ok, err := c.Add(k, v); err != nil || !ok {
			t.Fatalf("Add after Remove: ok=%v err=%v", ok, err)
		}

		if n := c.Len(); n != 1 {
			t.Fatalf("Len want 1, got %d", n)
		}
	})
}
