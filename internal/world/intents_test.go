package world

import "testing"

func TestIntentRegistry(t *testing.T) {
	r := NewIntentRegistry()
	tc := T(2, -1)

	r.Defer(tc, 5)
	r.Defer(tc, 5) // idempotent
	r.Defer(tc, 9)
	r.Defer(T(0, 0), 1)

	if r.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", r.Count())
	}
	if r.Tiles() != 2 {
		t.Errorf("Tiles() = %d, expected 2", r.Tiles())
	}

	r.Cancel(tc, 9)
	if r.Has(tc, 9) {
		t.Error("cancelled intent should be gone")
	}
	r.Cancel(T(7, 7), 3) // unknown tile, no-op

	taken := r.Take(tc)
	if taken.Size() != 1 || !taken.Has(5) {
		t.Errorf("Take() returned %d entries, expected only index 5", taken.Size())
	}
	if again := r.Take(tc); again.Size() != 0 {
		t.Error("second Take() should return an empty set")
	}

	r.Cancel(T(0, 0), 1)
	if r.Tiles() != 0 {
		t.Errorf("cancelling the last index should drop the tile, %d tiles left", r.Tiles())
	}

	r.Defer(tc, 1)
	r.Clear()
	if r.Count() != 0 {
		t.Error("Clear() should drop everything")
	}
}
