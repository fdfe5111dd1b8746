package sim

import (
	"time"

	"github.com/vovakirdan/blightgrid/internal/prng"
)

// Stepper is a unit of queued work that can be advanced in bounded batches.
type Stepper interface {
	Step(budget int) int
	Pending() int
}

type job struct {
	name     string
	stepper  Stepper
	budget   int
	interval time.Duration
	jitter   time.Duration
	due      time.Duration
	runs     int
}

// Scheduler drives steppers on virtual time. Nothing here reads the wall
// clock: callers advance time explicitly, either from a frame timer or in a
// tight loop.
type Scheduler struct {
	now  time.Duration
	jobs []*job
	rng  *prng.Stream
}

// NewScheduler creates an empty scheduler whose jitter is drawn from seed.
func NewScheduler(seed uint32) *Scheduler {
	return &Scheduler{rng: prng.NewStream(prng.Next(seed))}
}

// Add registers a stepper. It first runs at the current time and then every
// interval plus a random delay in [0, jitter].
func (s *Scheduler) Add(name string, st Stepper, budget int, interval, jitter time.Duration) {
	s.jobs = append(s.jobs, &job{
		name:     name,
		stepper:  st,
		budget:   budget,
		interval: interval,
		jitter:   jitter,
		due:      s.now,
	})
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves virtual time forward by dt and runs every job that has come
// due, each at most once, in registration order. It returns the total work
// reported by the steppers.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	done := 0
	for _, j := range s.jobs {
		if j.due > s.now {
			continue
		}
		done += j.stepper.Step(j.budget)
		j.runs++
		j.due = s.now + j.interval + s.delay(j.jitter)
	}
	return done
}

// Tick jumps to the earliest due time and runs what is due there.
func (s *Scheduler) Tick() int {
	if len(s.jobs) == 0 {
		return 0
	}
	next := s.jobs[0].due
	for _, j := range s.jobs[1:] {
		next = min(next, j.due)
	}
	return s.Advance(next - s.now)
}

// Idle reports whether no stepper has queued work.
func (s *Scheduler) Idle() bool {
	for _, j := range s.jobs {
		if j.stepper.Pending() > 0 {
			return false
		}
	}
	return true
}

// RunUntilIdle ticks until every queue drains or maxTicks ticks have run,
// returning the number of ticks. Growth waiting for the viewpoint to come
// closer never drains, so maxTicks must be positive.
func (s *Scheduler) RunUntilIdle(maxTicks int) int {
	ticks := 0
	for ticks < maxTicks && !s.Idle() {
		s.Tick()
		ticks++
	}
	return ticks
}

// Runs returns how many times the named job has run.
func (s *Scheduler) Runs(name string) int {
	for _, j := range s.jobs {
		if j.name == name {
			return j.runs
		}
	}
	return 0
}

func (s *Scheduler) delay(jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return 0
	}
	ms := int(jitter / time.Millisecond)
	return time.Duration(s.rng.Int(ms)) * time.Millisecond
}

// NewScheduler wires generation, growth, and corruption into a scheduler
// using the configured intervals.
func (s *Simulation) NewScheduler() *Scheduler {
	p := s.params
	sch := NewScheduler(s.seed)
	sch.Add("generate", s.store, p.GenTilesPerStep, p.GenInterval, 0)
	sch.Add("growth", s.growth, 0, p.GrowthInterval, p.GrowthJitter)
	sch.Add("corruption", s.corruption, 0, p.CorruptionInterval, p.CorruptionJitter)
	return sch
}
