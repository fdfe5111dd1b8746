// Package sim runs the growth and corruption processes over a lazily
// generated world. A Simulation owns all mutable state; the engines hold
// only task and region descriptors that reference grid coordinates.
//
// Nothing in this package blocks. Work is advanced by calling Step on the
// generation, growth, and corruption steppers, usually through a Scheduler.
package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blightgrid/internal/prng"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// autoSeedOffset separates the simulation stream from the world seed.
const autoSeedOffset = 298342

// Simulation is the complete state of one world.
type Simulation struct {
	params     Params
	seed       uint32
	rng        *prng.Stream
	store      *world.Store
	growth     *GrowthEngine
	corruption *CorruptionEngine
	view       Viewport

	lastReveal world.GridCoord
	prevReveal world.GridCoord
	revealed   int // Number of tracked reveals, capped at 2

	logger *log.Logger
	clock  func() time.Time
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock used to scramble the seed on reset.
func WithClock(clock func() time.Time) Option {
	return func(s *Simulation) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates a simulation for the given seed and resets it without
// advancing the seed, so the same seed always yields the same world.
func New(p Params, seed uint32, opts ...Option) *Simulation {
	s := &Simulation{
		params: p,
		seed:   seed,
		rng:    prng.NewStream(0),
		store:  world.NewStore(p.World, seed),
		logger: log.New(io.Discard),
		clock:  time.Now,
	}
	s.growth = &GrowthEngine{sim: s}
	s.corruption = &CorruptionEngine{sim: s}

	for _, opt := range opts {
		opt(s)
	}

	s.Reset(false, false)
	return s
}

// Reset clears every cache, queue, and registry, reveals the starting
// locations, and restores the default viewport. With advance the seed moves
// to its successor; with scramble it is first replaced from the clock.
func (s *Simulation) Reset(advance, scramble bool) {
	if scramble {
		advance = true
		s.seed = uint32(s.clock().UnixNano())
	}
	if advance {
		s.seed = prng.Next(s.seed)
	}
	s.rng.Reseed(prng.Next(s.seed + autoSeedOffset))

	s.store.Reset(s.seed)
	s.growth.reset()
	s.corruption.reset()
	s.revealed = 0
	s.lastReveal = world.GridCoord{}
	s.prevReveal = world.GridCoord{}

	for _, g := range s.params.World.StartingLocations {
		s.Reveal(g)
	}
	s.view = Viewport{}

	s.logger.Info("world reset", "seed", s.seed, "advance", advance, "scramble", scramble)
}

// Seed returns the current world seed.
func (s *Simulation) Seed() uint32 {
	return s.seed
}

// Params returns the simulation parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// Store exposes the tile store.
func (s *Simulation) Store() *world.Store {
	return s.store
}

// Growth exposes the growth engine.
func (s *Simulation) Growth() *GrowthEngine {
	return s.growth
}

// Corruption exposes the corruption engine.
func (s *Simulation) Corruption() *CorruptionEngine {
	return s.corruption
}

// QueryCell returns the cell at g. ok is false while it is not generated.
func (s *Simulation) QueryCell(g world.GridCoord) (world.Cell, bool) {
	return s.store.Cell(g)
}

// QueryNeighborhood returns the 3x3 block around g, or ok=false if any part
// of it is not generated yet.
func (s *Simulation) QueryNeighborhood(g world.GridCoord) (world.Neighborhood, bool) {
	return s.store.Neighborhood(g)
}

// Reveal reveals g (deferring if needed) and records it as the latest reveal.
func (s *Simulation) Reveal(g world.GridCoord) {
	s.store.Reveal(g)
	s.prevReveal = s.lastReveal
	s.lastReveal = g
	s.revealed = min(s.revealed+1, 2)
}

// ToggleFlag flips the flag on g, returning false if its tile is not loaded.
func (s *Simulation) ToggleFlag(g world.GridCoord) bool {
	return s.store.ToggleFlag(g)
}

// Die removes all growth at g.
func (s *Simulation) Die(g world.GridCoord) bool {
	return s.store.Kill(g)
}

// GrowAt raises growth at g by one step up to limit. Growing onto a
// corrupted cell hides it again and starts a corruption region there.
// ok is false when the tile is not generated.
func (s *Simulation) GrowAt(g world.GridCoord, limit int) (level int, ok bool) {
	level, corrupted, ok := s.store.RaiseGrowth(g, limit)
	if !ok {
		return 0, false
	}
	if corrupted {
		spread := s.params.RegionEnergyMax - s.params.RegionEnergyMin
		energy := s.params.RegionEnergyMin + s.rng.Int(spread)
		s.corruption.Spawn(g, energy)
		s.store.Obscure(g)
	}
	return level, true
}

// Promote reveals g and either forces one growth step there or, if nothing
// is growing yet (or the area is not loaded), queues a growth task.
// Flagged cells are left untouched.
func (s *Simulation) Promote(g world.GridCoord) {
	if flagged, ok := s.store.IsFlagged(g); ok && flagged {
		return
	}
	s.Reveal(g)

	n, ok := s.store.Neighborhood(g)
	if !ok || n.Center().Growth == 0 {
		s.growth.Enqueue(GrowthTask{Cap: s.params.World.MaxAutoGrowth, At: g})
		return
	}
	s.GrowAt(g, s.params.World.MaxGrowth)
}

// View returns the current viewport.
func (s *Simulation) View() Viewport {
	return s.view
}

// SetCursor moves the cursor without moving the origin.
func (s *Simulation) SetCursor(g world.GridCoord) {
	s.view.Cursor = g
}

// SetOrigin moves the origin without moving the cursor.
func (s *Simulation) SetOrigin(g world.GridCoord) {
	s.view.Origin = g
}

// MoveCursor shifts the cursor and recenters the origin on it.
func (s *Simulation) MoveCursor(dx, dy int) {
	s.view.Cursor = s.view.Cursor.Add(dx, dy)
	s.view.Origin = s.view.Cursor
}

// Pan shifts the origin without moving the cursor.
func (s *Simulation) Pan(dx, dy int) {
	s.view.Origin = s.view.Origin.Add(dx, dy)
}

// MoveCursorToward moves the cursor one cell in the given direction.
// Invalid orientations are logged and ignored.
func (s *Simulation) MoveCursorToward(o Orientation) {
	v, ok := o.Vector()
	if !ok {
		s.logger.Warn("bad orientation", "orientation", int(o))
		return
	}
	s.MoveCursor(v.X, v.Y)
}

// InterestBounds returns the box spanning the two most recent reveals, or
// the origin cell if nothing has been revealed.
func (s *Simulation) InterestBounds() Bounds {
	b := Bounds{Min: s.lastReveal, Max: s.lastReveal}
	if s.revealed > 1 {
		b = b.Extend(s.prevReveal)
	}
	return b
}
