package sim

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blightgrid/internal/prng"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// testParams keeps growth close to the origin so runs stay small.
func testParams() Params {
	p := DefaultParams()
	p.MaxAutoDist = 12
	return p
}

// load generates every tile within radius cells of center.
func load(t *testing.T, s *Simulation, center world.GridCoord, radius int) {
	t.Helper()
	for i := 0; i < 16; i++ {
		missing := false
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if _, ok := s.QueryCell(center.Add(dx, dy)); !ok {
					missing = true
				}
			}
		}
		if !missing {
			return
		}
		s.Store().Step(1 << 10)
	}
	t.Fatalf("area around %v never loaded", center)
}

func TestNewRevealsStartingLocations(t *testing.T) {
	for seed := uint32(1); seed <= 24; seed++ {
		s := New(DefaultParams(), seed*7919)
		s.Store().Step(64)

		for _, g := range s.Params().World.StartingLocations {
			c, ok := s.QueryCell(g)
			if !ok {
				t.Fatalf("seed %d: %v not generated", seed, g)
			}
			if c.Corrupted {
				t.Errorf("seed %d: starting location %v is corrupted", seed, g)
			}
			if !c.Revealed {
				t.Errorf("seed %d: starting location %v not revealed", seed, g)
			}
		}
	}
}

func TestResetSeedHandling(t *testing.T) {
	fixed := time.Unix(1700000000, 42)
	s := New(DefaultParams(), DefaultSeed, WithClock(func() time.Time { return fixed }))

	if s.Seed() != DefaultSeed {
		t.Fatalf("Seed() = %d after New, expected %d", s.Seed(), DefaultSeed)
	}

	s.Reset(false, false)
	if s.Seed() != DefaultSeed {
		t.Errorf("plain reset changed the seed to %d", s.Seed())
	}

	s.Reset(true, false)
	if want := prng.Next(DefaultSeed); s.Seed() != want {
		t.Errorf("advancing reset: seed = %d, expected %d", s.Seed(), want)
	}

	s.Reset(false, true)
	if want := prng.Next(uint32(fixed.UnixNano())); s.Seed() != want {
		t.Errorf("scrambled reset: seed = %d, expected %d", s.Seed(), want)
	}
}

func TestResetClearsState(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	load(t, s, world.G(0, 0), 3)

	s.Growth().Enqueue(GrowthTask{Cap: 2, At: world.G(1, 1)})
	s.Corruption().Spawn(world.G(2, 2), 10)
	s.MoveCursor(5, 5)
	s.Store().Corrupt(world.G(400, 400))

	s.Reset(false, false)

	if s.Growth().Pending() != 0 || s.Corruption().Pending() != 0 {
		t.Errorf("queues not cleared: growth=%d corruption=%d", s.Growth().Pending(), s.Corruption().Pending())
	}
	if s.Store().Ready() != 0 {
		t.Errorf("Ready() = %d after reset, expected 0", s.Store().Ready())
	}
	if s.Store().CorruptIntents().Count() != 0 {
		t.Error("corrupt intents survived reset")
	}
	if s.Store().RevealIntents().Count() != len(s.Params().World.StartingLocations) {
		t.Errorf("RevealIntents().Count() = %d, expected one per starting location",
			s.Store().RevealIntents().Count())
	}
	if s.View() != (Viewport{}) {
		t.Errorf("View() = %+v after reset, expected zero viewport", s.View())
	}
}

func TestRevealFlagExclusive(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	load(t, s, world.G(0, 0), 4)
	g := world.G(3, 3)

	if !s.ToggleFlag(g) {
		t.Fatal("ToggleFlag() on a loaded cell should succeed")
	}
	if c, _ := s.QueryCell(g); !c.Flagged {
		t.Fatal("cell should be flagged")
	}

	s.Reveal(g)
	c, _ := s.QueryCell(g)
	if !c.Revealed || c.Flagged {
		t.Fatalf("after reveal: %+v", c)
	}

	if !s.ToggleFlag(g) {
		t.Fatal("ToggleFlag() on a revealed cell still reports success")
	}
	if c, _ := s.QueryCell(g); c.Flagged {
		t.Error("revealed cell must not become flagged")
	}

	if s.ToggleFlag(world.G(-500, 900)) {
		t.Error("ToggleFlag() on an ungenerated tile should fail")
	}
}

func TestPromote(t *testing.T) {
	p := DefaultParams()
	s := New(p, DefaultSeed)
	origin := world.G(0, 0)

	// Nothing loaded yet: the promotion is queued
	s.Promote(origin)
	if s.Growth().Pending() != 1 {
		t.Fatalf("Growth().Pending() = %d, expected 1", s.Growth().Pending())
	}

	load(t, s, origin, 2)
	if level, ok := s.GrowAt(origin, 1); !ok || level != 1 {
		t.Fatalf("GrowAt() = %d, %v", level, ok)
	}

	// Existing growth is pushed one step further right away
	s.Promote(origin)
	if c, _ := s.QueryCell(origin); c.Growth != 2 {
		t.Errorf("growth = %d after promote, expected 2", c.Growth)
	}
	if s.Growth().Pending() != 1 {
		t.Errorf("forced growth should not queue, pending = %d", s.Growth().Pending())
	}

	// Flagged cells are left alone
	g := world.G(4, 6)
	s.Store().Obscure(g)
	s.ToggleFlag(g)
	s.Promote(g)
	if c, _ := s.QueryCell(g); c.Revealed || !c.Flagged {
		t.Errorf("flagged cell changed by promote: %+v", c)
	}
	if s.Growth().Pending() != 1 {
		t.Errorf("flagged promote queued work, pending = %d", s.Growth().Pending())
	}
}

func TestGrowAtCorruptedCell(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	load(t, s, world.G(10, 10), 10)

	tile, _ := s.Store().Lookup(world.T(0, 0))
	var target world.GridCoord
	found := false
	for i, bad := range tile.Corrupted {
		if bad {
			target = tile.Coord.Cell(i, tile.Size)
			found = true
			break
		}
	}
	if !found {
		t.Fatal("tile (0,0) has no corrupted cells")
	}

	s.Reveal(target)
	level, ok := s.GrowAt(target, s.Params().World.MaxGrowth)
	if !ok || level != 1 {
		t.Fatalf("GrowAt() = %d, %v", level, ok)
	}
	if c, _ := s.QueryCell(target); c.Revealed {
		t.Error("growing into corruption should obscure the cell")
	}

	regions := s.Corruption().Regions()
	if len(regions) != 1 {
		t.Fatalf("%d regions spawned, expected 1", len(regions))
	}
	r := regions[0]
	p := s.Params()
	if r.Initial < p.RegionEnergyMin || r.Initial > p.RegionEnergyMax {
		t.Errorf("region energy %d outside [%d, %d]", r.Initial, p.RegionEnergyMin, p.RegionEnergyMax)
	}
	if !reflect.DeepEqual(r.Frontier, []world.GridCoord{target}) {
		t.Errorf("Frontier = %v, expected [%v]", r.Frontier, target)
	}
}

func TestMoveCursorToward(t *testing.T) {
	var buf bytes.Buffer
	s := New(DefaultParams(), DefaultSeed, WithLogger(log.New(&buf)))

	tests := []struct {
		o    Orientation
		want world.GridCoord
	}{
		{North, world.G(0, 1)},
		{East, world.G(1, 1)},
		{South, world.G(1, 0)},
		{West, world.G(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			s.MoveCursorToward(tt.o)
			if v := s.View(); v.Cursor != tt.want || v.Origin != tt.want {
				t.Errorf("view = %+v, expected cursor and origin at %v", v, tt.want)
			}
		})
	}

	s.MoveCursorToward(Orientation(3))
	if s.View() != (Viewport{}) {
		t.Errorf("invalid orientation moved the view to %+v", s.View())
	}
	if !strings.Contains(buf.String(), "bad orientation") {
		t.Errorf("invalid orientation not logged, log: %q", buf.String())
	}
}

func TestPanKeepsCursor(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	s.SetCursor(world.G(2, 3))
	s.Pan(-4, 1)

	want := Viewport{Origin: world.G(-4, 1), Cursor: world.G(2, 3)}
	if s.View() != want {
		t.Errorf("View() = %+v, expected %+v", s.View(), want)
	}
}

func TestInterestBounds(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	s.Reveal(world.G(3, 4))
	s.Reveal(world.G(-2, 7))

	want := Bounds{Min: world.G(-2, 4), Max: world.G(3, 7)}
	if got := s.InterestBounds(); got != want {
		t.Errorf("InterestBounds() = %+v, expected %+v", got, want)
	}
	if !want.Contains(world.G(0, 5)) || want.Contains(world.G(4, 5)) {
		t.Error("Contains() disagrees with the box")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() *Simulation {
		s := New(testParams(), DefaultSeed)
		sch := s.NewScheduler()
		s.Promote(world.G(0, 0))
		s.Promote(world.G(1, 0))
		sch.RunUntilIdle(300)
		s.Promote(world.G(0, 1))
		sch.RunUntilIdle(300)
		return s
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Fatal("identical runs produced different worlds")
	}
	if a.Digest() != b.Digest() {
		t.Errorf("digests differ: %x vs %x", a.Digest(), b.Digest())
	}
	if a.Stats() != b.Stats() {
		t.Errorf("stats differ: %+v vs %+v", a.Stats(), b.Stats())
	}
	if a.Stats().Grown == 0 {
		t.Error("promotion at the origin grew nothing")
	}
}

func TestDigestTracksContent(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	load(t, s, world.G(0, 0), 2)

	before := s.Digest()
	if s.Digest() != before {
		t.Fatal("Digest() is not stable")
	}
	s.ToggleFlag(world.G(5, 5))
	if s.Digest() == before {
		t.Error("flagging a cell did not change the digest")
	}
}

func TestStats(t *testing.T) {
	s := New(DefaultParams(), DefaultSeed)
	s.Store().Step(64)

	st := s.Stats()
	if st.Seed != DefaultSeed {
		t.Errorf("Seed = %d", st.Seed)
	}
	if st.Tiles != 3 {
		t.Errorf("Tiles = %d, expected 3", st.Tiles)
	}
	if st.Revealed != len(s.Params().World.StartingLocations) {
		t.Errorf("Revealed = %d, expected %d", st.Revealed, len(s.Params().World.StartingLocations))
	}
	if st.Corrupted == 0 {
		t.Error("generated tiles should carry some corruption")
	}
}

// walkStats recounts cells from a full snapshot.
func walkStats(s *Simulation) world.Counts {
	var c world.Counts
	for _, tile := range s.Snapshot() {
		for i := range tile.Growth {
			cell := tile.Cell(i)
			if cell.Revealed {
				c.Revealed++
			}
			if cell.Flagged {
				c.Flagged++
			}
			if cell.Growth > 0 {
				c.Grown++
				c.TotalGrowth += int(cell.Growth)
			}
			if cell.Corrupted {
				c.Corrupted++
			}
		}
	}
	return c
}

func TestStatsMatchFullWalk(t *testing.T) {
	s := New(testParams(), DefaultSeed)
	sch := s.NewScheduler()
	check := func(stage string) {
		t.Helper()
		st := s.Stats()
		got := world.Counts{
			Revealed:    st.Revealed,
			Flagged:     st.Flagged,
			Grown:       st.Grown,
			TotalGrowth: st.TotalGrowth,
			Corrupted:   st.Corrupted,
		}
		if want := walkStats(s); got != want {
			t.Errorf("%s: stats %+v, full walk %+v", stage, got, want)
		}
	}

	check("fresh")
	s.Promote(world.G(0, 0))
	s.Promote(world.G(2, 1))
	sch.RunUntilIdle(300)
	check("after promote")

	s.ToggleFlag(world.G(5, 5))
	s.ToggleFlag(world.G(6, 5))
	s.ToggleFlag(world.G(6, 5))
	s.Reveal(world.G(-3, 4))
	s.Die(world.G(0, 0))
	s.Corruption().Spawn(world.G(8, -8), 40)
	sch.RunUntilIdle(300)
	check("after mixed edits")

	s.Reset(false, false)
	check("after reset")
}
