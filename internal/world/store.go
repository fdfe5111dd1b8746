// Package world owns the lazily generated tile cache: coordinates, tiles,
// deferred intents, and the deterministic tile generator.
package world

import "github.com/gammazero/deque"

// SlotState describes a cache slot.
type SlotState uint8

const (
	SlotAbsent  SlotState = iota // Never requested
	SlotPending                  // Queued for generation
	SlotReady                    // Generated and cached
)

// String returns a human-readable name for the slot state.
func (s SlotState) String() string {
	switch s {
	case SlotAbsent:
		return "absent"
	case SlotPending:
		return "pending"
	case SlotReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Counts tallies cell states across the generated tiles of a store.
type Counts struct {
	Revealed    int
	Flagged     int
	Grown       int // Cells with any growth
	TotalGrowth int // Sum of growth levels
	Corrupted   int
}

func (c *Counts) add(t *Tile) {
	for i := range t.Growth {
		if t.Revealed[i] {
			c.Revealed++
		}
		if t.Flagged[i] {
			c.Flagged++
		}
		if t.Growth[i] > 0 {
			c.Grown++
			c.TotalGrowth += int(t.Growth[i])
		}
		if t.Corrupted[i] {
			c.Corrupted++
		}
	}
}

type slot struct {
	state SlotState
	tile  *Tile // Set only when state is SlotReady
}

// Store is the tile cache plus its generation queue and intent registries.
// All tile data is owned here; callers only ever see copies or cell views.
type Store struct {
	params  Params
	seed    uint32
	gen     *Generator
	slots   map[TileCoord]slot
	queue   deque.Deque[TileCoord]
	reveals *IntentRegistry
	corrupt *IntentRegistry
	ready   int
	counts  Counts
}

// NewStore creates an empty store for the given world seed.
func NewStore(p Params, seed uint32) *Store {
	return &Store{
		params:  p,
		seed:    seed,
		gen:     NewGenerator(p),
		slots:   make(map[TileCoord]slot),
		reveals: NewIntentRegistry(),
		corrupt: NewIntentRegistry(),
	}
}

// Params returns the store's mechanics.
func (s *Store) Params() Params {
	return s.params
}

// Seed returns the world seed tiles are generated from.
func (s *Store) Seed() uint32 {
	return s.seed
}

// Reset drops every tile, queued request, and intent, and switches to a new seed.
func (s *Store) Reset(seed uint32) {
	s.seed = seed
	s.slots = make(map[TileCoord]slot)
	s.queue.Clear()
	s.reveals.Clear()
	s.corrupt.Clear()
	s.ready = 0
	s.counts = Counts{}
}

// Lookup returns the generated tile at tc. An absent tile is marked pending
// and queued for generation; a pending tile is not queued again.
func (s *Store) Lookup(tc TileCoord) (*Tile, bool) {
	sl := s.slots[tc]
	switch sl.state {
	case SlotReady:
		return sl.tile, true
	case SlotPending:
		return nil, false
	default:
		s.slots[tc] = slot{state: SlotPending}
		s.queue.PushBack(tc)
		return nil, false
	}
}

// State returns the slot state of tc without requesting generation.
func (s *Store) State(tc TileCoord) SlotState {
	return s.slots[tc].state
}

// GenerateOne generates the tile at the head of the queue.
// It returns false when the queue is empty.
func (s *Store) GenerateOne() bool {
	if s.queue.Len() == 0 {
		return false
	}
	tc := s.queue.PopFront()
	if s.slots[tc].state == SlotReady {
		return true
	}

	tile := s.gen.Generate(tc, s.seed, s.reveals.Take(tc), s.corrupt.Take(tc))
	s.slots[tc] = slot{state: SlotReady, tile: tile}
	s.ready++
	s.counts.add(tile)
	return true
}

// Step generates up to budget queued tiles and returns how many were generated.
func (s *Store) Step(budget int) int {
	done := 0
	for done < budget && s.GenerateOne() {
		done++
	}
	return done
}

// Pending returns the number of tiles waiting for generation.
func (s *Store) Pending() int {
	return s.queue.Len()
}

// Ready returns the number of generated tiles.
func (s *Store) Ready() int {
	return s.ready
}

// Counts returns the cell tallies, kept current by every store operation.
func (s *Store) Counts() Counts {
	return s.counts
}

// RevealIntents exposes the pending reveal registry.
func (s *Store) RevealIntents() *IntentRegistry {
	return s.reveals
}

// CorruptIntents exposes the pending corruption registry.
func (s *Store) CorruptIntents() *IntentRegistry {
	return s.corrupt
}

// EachTile calls fn for every generated tile. Iteration order is unspecified.
func (s *Store) EachTile(fn func(t *Tile)) {
	for _, sl := range s.slots {
		if sl.state == SlotReady {
			fn(sl.tile)
		}
	}
}
