package sim

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/blightgrid/internal/prng"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// Region is an in-progress corruption spread. Every frontier coordinate is a
// key of Visited, and each visited energy stays within the per-cell cap.
type Region struct {
	Initial   int
	Remaining int
	Visited   map[world.GridCoord]int
	Frontier  []world.GridCoord
}

// NewRegion starts a region at a single cell holding energy 1.
func NewRegion(at world.GridCoord, energy int) *Region {
	return &Region{
		Initial:   energy,
		Remaining: energy,
		Visited:   map[world.GridCoord]int{at: 1},
		Frontier:  []world.GridCoord{at},
	}
}

// Distributed returns the energy handed out to cells so far. The seed cell's
// initial unit is free.
func (r *Region) Distributed() int {
	sum := 0
	for _, e := range r.Visited {
		sum += e
	}
	return sum - 1
}

// Done reports whether the region has no energy left.
func (r *Region) Done() bool {
	return r.Remaining <= 0
}

// spreadOffsets is the neighbor scan order before shuffling.
var spreadOffsets = [4]world.GridCoord{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

// CorruptionEngine advances corruption regions and finalizes them once their
// energy is spent.
type CorruptionEngine struct {
	sim   *Simulation
	queue deque.Deque[*Region]

	spawned   int
	finalized int
	corrupted int
}

// Spawn creates a region at g with the given energy and queues it.
func (e *CorruptionEngine) Spawn(g world.GridCoord, energy int) *Region {
	r := NewRegion(g, energy)
	e.Enqueue(r)
	e.spawned++
	e.sim.logger.Debug("corruption region spawned", "at", g, "energy", energy)
	return r
}

// Enqueue appends an existing region to the tail of the queue.
func (e *CorruptionEngine) Enqueue(r *Region) {
	e.queue.PushBack(r)
}

// Pending returns the number of active regions.
func (e *CorruptionEngine) Pending() int {
	return e.queue.Len()
}

// Spawned returns the number of regions created since the last reset.
func (e *CorruptionEngine) Spawned() int {
	return e.spawned
}

// Finalized returns the number of regions that ran out of energy.
func (e *CorruptionEngine) Finalized() int {
	return e.finalized
}

// Corrupted returns how many cells finalization has marked corrupted.
func (e *CorruptionEngine) Corrupted() int {
	return e.corrupted
}

// Regions returns the active regions from head to tail.
func (e *CorruptionEngine) Regions() []*Region {
	out := make([]*Region, 0, e.queue.Len())
	for i := range e.queue.Len() {
		out = append(out, e.queue.At(i))
	}
	return out
}

func (e *CorruptionEngine) reset() {
	e.queue.Clear()
	e.spawned = 0
	e.finalized = 0
	e.corrupted = 0
}

// Step processes half of the active regions, rounded up, limited by budget
// and the batch cap. It returns the number of regions processed.
func (e *CorruptionEngine) Step(budget int) int {
	n := batchSize(e.queue.Len(), budget, e.sim.params.MaxAutoBatch)
	for i := 0; i < n && e.queue.Len() > 0; i++ {
		r := e.queue.PopFront()
		e.advance(r)
		if r.Done() {
			e.finalize(r)
		} else {
			e.queue.PushBack(r)
		}
	}
	return n
}

// advance hands out between half (rounded up) and all of the remaining
// energy.
func (e *CorruptionEngine) advance(r *Region) {
	if r.Done() {
		return
	}
	s := e.sim
	half := (r.Remaining + 1) / 2
	budget := half + s.rng.Int(r.Remaining-half)

	for budget > 0 {
		prng.Shuffle(r.Frontier, s.rng.Take())
		// The frontier grows while it is scanned; new cells are visited in
		// this same pass.
		for i := 0; i < len(r.Frontier) && budget > 0; i++ {
			if e.spreadFrom(r, r.Frontier[i]) {
				budget--
				r.Remaining--
			}
		}
	}
}

// spreadFrom spends at most one unit of energy on a neighbor of g and
// reports whether it did.
func (e *CorruptionEngine) spreadFrom(r *Region, g world.GridCoord) bool {
	s := e.sim
	offsets := spreadOffsets
	prng.Shuffle(offsets[:], s.rng.Take())
	recorrupt := s.rng.Flip(s.params.RecorruptProbability)

	for _, d := range offsets {
		nb := g.Offset(d)
		energy, seen := r.Visited[nb]
		switch {
		case !seen:
			r.Visited[nb] = 1
			r.Frontier = append(r.Frontier, nb)
			s.store.Obscure(nb)
			s.store.Kill(nb)
			return true
		case recorrupt && energy < s.params.MaxCorruptionEnergy:
			r.Visited[nb] = energy + 1
			return true
		}
	}
	return false
}

// finalize kills growth across the region and corrupts each cell with a
// probability proportional to the energy it accumulated.
func (e *CorruptionEngine) finalize(r *Region) {
	s := e.sim
	hits := 0
	for _, g := range r.Frontier {
		s.store.Kill(g)
		p := float64(r.Visited[g]) * s.params.BaseCorruptionProbability
		if s.rng.Flip(p) {
			s.store.Corrupt(g)
			hits++
		}
	}
	e.finalized++
	e.corrupted += hits
	s.logger.Debug("corruption region finalized", "cells", len(r.Frontier), "corrupted", hits)
}
