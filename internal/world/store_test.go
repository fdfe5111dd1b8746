package world

import (
	"reflect"
	"testing"
)

func TestStoreLookupLifecycle(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	tc := T(0, 0)

	if s.State(tc) != SlotAbsent {
		t.Fatalf("State() = %v, expected absent", s.State(tc))
	}

	if _, ok := s.Lookup(tc); ok {
		t.Fatal("first Lookup() should miss")
	}
	if s.State(tc) != SlotPending || s.Pending() != 1 {
		t.Fatalf("tile should be pending once, state=%v pending=%d", s.State(tc), s.Pending())
	}

	// Pending tiles are not queued twice
	s.Lookup(tc)
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d after second lookup, expected 1", s.Pending())
	}

	if !s.GenerateOne() {
		t.Fatal("GenerateOne() should process the queued tile")
	}
	if s.GenerateOne() {
		t.Error("GenerateOne() on empty queue should report false")
	}

	tile, ok := s.Lookup(tc)
	if !ok || tile == nil {
		t.Fatal("tile should be ready after generation")
	}
	if s.State(tc) != SlotReady || s.Ready() != 1 {
		t.Errorf("state=%v ready=%d", s.State(tc), s.Ready())
	}
}

func TestStoreGeneratesInRequestOrder(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	order := []TileCoord{T(3, 1), T(-2, 0), T(0, 7), T(1, 1)}
	for _, tc := range order {
		s.Lookup(tc)
	}
	if s.Pending() != len(order) {
		t.Fatalf("Pending() = %d, expected %d", s.Pending(), len(order))
	}

	for i, tc := range order {
		if !s.GenerateOne() {
			t.Fatalf("GenerateOne() #%d found an empty queue", i)
		}
		if s.State(tc) != SlotReady {
			t.Fatalf("tile %v not ready after %d generations", tc, i+1)
		}
		for _, later := range order[i+1:] {
			if s.State(later) != SlotPending {
				t.Errorf("tile %v generated ahead of %v", later, tc)
			}
		}
	}

	s.Lookup(T(9, 9))
	s.Reset(testSeed)
	if s.Pending() != 0 || s.GenerateOne() {
		t.Errorf("Reset() left %d queued tiles", s.Pending())
	}
}

func TestStoreDeferredReveal(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)

	if s.Reveal(G(0, 0)) {
		t.Fatal("Reveal() on an ungenerated world should defer")
	}
	if s.State(T(0, 0)) != SlotPending {
		t.Error("reveal should queue the tile for generation")
	}
	if !s.RevealIntents().Has(T(0, 0), 0) {
		t.Fatal("reveal intent for index 0 should be registered")
	}

	s.Step(10)

	cell, ok := s.Cell(G(0, 0))
	if !ok || !cell.Revealed {
		t.Error("cell should be revealed after generation")
	}
	if s.RevealIntents().Tiles() != 0 {
		t.Error("registry entry should be consumed by generation")
	}
}

func TestStoreObscureCancelsDeferredReveal(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	s.Reveal(G(5, 5))
	s.Obscure(G(5, 5))
	s.Step(10)

	cell, _ := s.Cell(G(5, 5))
	if cell.Revealed {
		t.Error("cancelled reveal must not be applied")
	}
}

func TestStoreDeferredCorrupt(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	g := G(40, 0) // border cell of tile (2, 0)

	s.Corrupt(g)
	if !s.CorruptIntents().Has(T(2, 0), 0) {
		t.Fatal("corrupt intent should be registered")
	}
	s.Step(10)

	cell, ok := s.Cell(g)
	if !ok || !cell.Corrupted {
		t.Error("deferred corruption should be applied at generation")
	}

	// Direct write on a generated tile
	s.Corrupt(G(41, 0))
	if cell, _ := s.Cell(G(41, 0)); !cell.Corrupted {
		t.Error("Corrupt() on a generated tile should apply immediately")
	}
}

func TestStoreIntentsDoNotLeak(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	s.Reveal(G(0, 0))
	s.Step(10)

	// A different tile never sees the consumed intent
	s.Lookup(T(1, 0))
	s.Step(10)
	tile, _ := s.Lookup(T(1, 0))
	if tile.Revealed[0] {
		t.Error("intent leaked into another tile")
	}
}

func TestStoreGenerationMatchesGenerator(t *testing.T) {
	p := DefaultParams()
	s := NewStore(p, testSeed)
	s.Lookup(T(3, -2))
	s.Step(1)
	cached, _ := s.Lookup(T(3, -2))

	direct := NewGenerator(p).Generate(T(3, -2), testSeed, empty(), empty())
	if !reflect.DeepEqual(cached, direct) {
		t.Error("cached tile should match a direct generation")
	}
}

// loadAround generates tiles until the neighborhood of g is known.
func loadAround(t *testing.T, s *Store, g GridCoord) Neighborhood {
	t.Helper()
	for i := 0; i < 16; i++ {
		if n, ok := s.Neighborhood(g); ok {
			return n
		}
		s.Step(100)
	}
	t.Fatalf("neighborhood of %v never became known", g)
	return Neighborhood{}
}

func TestStoreNeighborhood(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)

	// (0,0) touches four tiles
	if _, ok := s.Neighborhood(G(0, 0)); ok {
		t.Fatal("neighborhood should be unknown before generation")
	}
	loadAround(t, s, G(0, 0))
	if s.Ready() != 4 {
		t.Errorf("Ready() = %d, expected the 4 tiles around the origin", s.Ready())
	}

	// Row-major from (-1,-1) to (1,1)
	s.Corrupt(G(1, -1))
	n := loadAround(t, s, G(0, 0))
	if !n[2].Corrupted {
		t.Error("index 2 should be the (x+1, y-1) cell")
	}
	if n.CorruptCount() < 1 || !n.Contaminated() {
		t.Error("contamination should be reported")
	}

	center, _ := s.Cell(G(0, 0))
	if n.Center() != center {
		t.Error("Center() should be the queried cell")
	}
}

func TestStoreCellOperations(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	g := G(0, 0)
	s.Lookup(g.Tile(20))
	s.Step(1)

	// Flags only apply to hidden cells
	if !s.ToggleFlag(g) {
		t.Fatal("ToggleFlag() on generated tile should succeed")
	}
	if flagged, ok := s.IsFlagged(g); !ok || !flagged {
		t.Error("cell should be flagged")
	}

	s.Reveal(g)
	cell, _ := s.Cell(g)
	if !cell.Revealed || cell.Flagged {
		t.Error("reveal should clear the flag")
	}

	s.ToggleFlag(g)
	if flagged, _ := s.IsFlagged(g); flagged {
		t.Error("revealed cells cannot be flagged")
	}

	// Growth is monotonic and capped
	for i := 0; i < 10; i++ {
		s.RaiseGrowth(g, 3)
	}
	cell, _ = s.Cell(g)
	if cell.Growth != 3 {
		t.Errorf("growth = %d, expected cap 3", cell.Growth)
	}
	level, _, _ := s.RaiseGrowth(g, 1)
	if level != 3 {
		t.Errorf("lower cap must not reduce growth, got %d", level)
	}
	for i := 0; i < 10; i++ {
		level, _, _ = s.RaiseGrowth(g, 99)
	}
	if level != DefaultParams().MaxGrowth {
		t.Errorf("growth = %d, expected MaxGrowth", level)
	}

	if !s.Kill(g) {
		t.Fatal("Kill() should succeed on a generated tile")
	}
	cell, _ = s.Cell(g)
	if cell.Growth != 0 {
		t.Error("Kill() should reset growth to zero")
	}

	s.Obscure(g)
	cell, _ = s.Cell(g)
	if cell.Revealed {
		t.Error("Obscure() should hide the cell")
	}
}

// walkCounts recounts every generated cell.
func walkCounts(s *Store) Counts {
	var c Counts
	s.EachTile(c.add)
	return c
}

func TestStoreCountsTrackCells(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	s.Reveal(G(3, 3))
	s.Corrupt(G(-4, 7))
	loadAround(t, s, G(0, 0))

	g := G(1, 1)
	steps := []struct {
		name string
		op   func()
	}{
		{"flag", func() { s.ToggleFlag(g) }},
		{"unflag", func() { s.ToggleFlag(g) }},
		{"flag again", func() { s.ToggleFlag(g) }},
		{"reveal clears flag", func() { s.Reveal(g) }},
		{"reveal twice", func() { s.Reveal(g) }},
		{"grow", func() { s.RaiseGrowth(g, 3) }},
		{"grow more", func() { s.RaiseGrowth(g, 3) }},
		{"grow neighbor", func() { s.RaiseGrowth(G(2, 1), 9) }},
		{"corrupt", func() { s.Corrupt(g) }},
		{"corrupt twice", func() { s.Corrupt(g) }},
		{"kill", func() { s.Kill(g) }},
		{"kill empty", func() { s.Kill(g) }},
		{"obscure", func() { s.Obscure(g) }},
		{"corrupt far tile", func() { s.Corrupt(G(60, 60)); s.Step(8) }},
	}
	for _, st := range steps {
		st.op()
		if got, want := s.Counts(), walkCounts(s); got != want {
			t.Fatalf("after %s: Counts() = %+v, full walk %+v", st.name, got, want)
		}
	}

	s.Reset(testSeed)
	if s.Counts() != (Counts{}) {
		t.Errorf("Counts() = %+v after reset, expected zero", s.Counts())
	}
}

func TestStoreUngeneratedOperations(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	g := G(100, 100)

	if s.ToggleFlag(g) {
		t.Error("ToggleFlag() should fail on an ungenerated tile")
	}
	if _, ok := s.IsFlagged(g); ok {
		t.Error("IsFlagged() should be unknown")
	}
	if s.Kill(g) {
		t.Error("Kill() should fail on an ungenerated tile")
	}
	if _, _, ok := s.RaiseGrowth(g, 2); ok {
		t.Error("RaiseGrowth() should fail on an ungenerated tile")
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore(DefaultParams(), testSeed)
	s.Reveal(G(0, 0))
	s.Corrupt(G(50, 50))
	s.Step(1)

	s.Reset(7)
	if s.Seed() != 7 || s.Ready() != 0 || s.Pending() != 0 {
		t.Errorf("reset incomplete: seed=%d ready=%d pending=%d", s.Seed(), s.Ready(), s.Pending())
	}
	if s.RevealIntents().Count() != 0 || s.CorruptIntents().Count() != 0 {
		t.Error("reset should clear intents")
	}
	if s.State(T(0, 0)) != SlotAbsent {
		t.Error("reset should drop cached tiles")
	}
}

func TestSlotStateString(t *testing.T) {
	if SlotPending.String() != "pending" || SlotState(9).String() != "unknown" {
		t.Error("unexpected slot state names")
	}
}
