package sim

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/blightgrid/internal/prng"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// GrowthTask asks for growth at At to climb toward Cap.
type GrowthTask struct {
	Cap int
	At  world.GridCoord
}

// GrowthEngine spreads growth outward from revealed cells. Tasks that cannot
// make progress yet are requeued at the tail and never dropped.
type GrowthEngine struct {
	sim   *Simulation
	queue deque.Deque[GrowthTask]

	processed int
	deferred  int
}

// Enqueue appends a task to the tail of the queue.
func (e *GrowthEngine) Enqueue(t GrowthTask) {
	e.queue.PushBack(t)
}

// Pending returns the number of queued tasks.
func (e *GrowthEngine) Pending() int {
	return e.queue.Len()
}

// Processed returns how many tasks have been popped since the last reset.
func (e *GrowthEngine) Processed() int {
	return e.processed
}

// Deferred returns how many tasks were requeued because they were too far
// from the origin or their area was not loaded.
func (e *GrowthEngine) Deferred() int {
	return e.deferred
}

// Tasks returns a copy of the queue from head to tail.
func (e *GrowthEngine) Tasks() []GrowthTask {
	out := make([]GrowthTask, 0, e.queue.Len())
	for i := range e.queue.Len() {
		out = append(out, e.queue.At(i))
	}
	return out
}

func (e *GrowthEngine) reset() {
	e.queue.Clear()
	e.processed = 0
	e.deferred = 0
}

// Step processes half of the queue, rounded up, limited by budget and the
// batch cap. It returns the number of tasks popped.
func (e *GrowthEngine) Step(budget int) int {
	n := batchSize(e.queue.Len(), budget, e.sim.params.MaxAutoBatch)
	for i := 0; i < n; i++ {
		e.next()
	}
	return n
}

func (e *GrowthEngine) next() {
	if e.queue.Len() == 0 {
		return
	}
	task := e.queue.PopFront()
	e.processed++

	s := e.sim
	reach := s.params.MaxAutoDist
	if task.At.DistSq(s.view.Origin) > reach*reach {
		e.requeue(task)
		return
	}

	s.Reveal(task.At)
	level, ok := s.GrowAt(task.At, task.Cap)
	if !ok {
		e.requeue(task)
		return
	}
	around, ok := s.store.Neighborhood(task.At)
	if !ok {
		e.requeue(task)
		return
	}

	if level >= min(task.Cap, s.params.World.MaxGrowth) {
		return
	}
	if !around.Contaminated() {
		e.fanOut(task.At, world.OrthogonalOffsets)
		e.fanOut(task.At, world.DiagonalOffsets)
	}
	e.queue.PushBack(task)
}

func (e *GrowthEngine) fanOut(at world.GridCoord, offsets [4]world.GridCoord) {
	prng.Shuffle(offsets[:], e.sim.rng.Take())
	for _, d := range offsets {
		e.queue.PushBack(GrowthTask{Cap: e.sim.params.World.MaxAutoGrowth, At: at.Offset(d)})
	}
}

func (e *GrowthEngine) requeue(t GrowthTask) {
	e.deferred++
	e.queue.PushBack(t)
}

// batchSize returns ceil(queued/2) bounded by budget and limit. A
// non-positive budget or limit means no bound from that side.
func batchSize(queued, budget, limit int) int {
	n := (queued + 1) / 2
	if budget > 0 {
		n = min(n, budget)
	}
	if limit > 0 {
		n = min(n, limit)
	}
	return n
}
