package world

import "github.com/zyedidia/generic/mapset"

// IntentRegistry holds actions aimed at tiles that have not been generated
// yet, as sets of tile indices keyed by tile coordinate. Entries are consumed
// once, when the tile is generated.
type IntentRegistry struct {
	pending map[TileCoord]mapset.Set[int]
}

// NewIntentRegistry creates an empty registry.
func NewIntentRegistry() *IntentRegistry {
	return &IntentRegistry{pending: make(map[TileCoord]mapset.Set[int])}
}

// Defer records an intent for the given cell. Recording it twice is a no-op.
func (r *IntentRegistry) Defer(tc TileCoord, index int) {
	set, ok := r.pending[tc]
	if !ok {
		set = mapset.New[int]()
		r.pending[tc] = set
	}
	set.Put(index)
}

// Take removes and returns every pending index for the tile.
// The returned set is empty when nothing was pending.
func (r *IntentRegistry) Take(tc TileCoord) mapset.Set[int] {
	set, ok := r.pending[tc]
	if !ok {
		return mapset.New[int]()
	}
	delete(r.pending, tc)
	return set
}

// Cancel removes a single pending intent, if present.
func (r *IntentRegistry) Cancel(tc TileCoord, index int) {
	set, ok := r.pending[tc]
	if !ok {
		return
	}
	set.Remove(index)
	if set.Size() == 0 {
		delete(r.pending, tc)
	}
}

// Has reports whether an intent is pending for the given cell.
func (r *IntentRegistry) Has(tc TileCoord, index int) bool {
	set, ok := r.pending[tc]
	return ok && set.Has(index)
}

// Tiles returns the number of tiles with pending intents.
func (r *IntentRegistry) Tiles() int {
	return len(r.pending)
}

// Count returns the number of pending intents across all tiles.
func (r *IntentRegistry) Count() int {
	total := 0
	for _, set := range r.pending {
		total += set.Size()
	}
	return total
}

// Clear drops every pending intent.
func (r *IntentRegistry) Clear() {
	r.pending = make(map[TileCoord]mapset.Set[int])
}
