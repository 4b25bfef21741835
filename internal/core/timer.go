package core

import "time"

// DefaultTickInterval is used when a non-positive interval is supplied.
const DefaultTickInterval = 500 * time.Millisecond

// Stepper advances a simulation by one generation.
type Stepper interface {
	Step()
}

// Scheduler advances a simulation at a wall-clock interval, independent of how
// often the outer loop calls Update. Missed ticks are not replayed.
type Scheduler struct {
	sim      Stepper
	interval time.Duration
	last     time.Time
}

// NewScheduler constructs a Scheduler whose first tick is due one interval after start.
func NewScheduler(sim Stepper, interval time.Duration, start time.Time) *Scheduler {
	s := &Scheduler{sim: sim, last: start}
	s.SetInterval(interval)
	return s
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultTickInterval
	}
	s.interval = d
}

// Interval returns the current tick interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// LastTick returns the time of the most recent generation advance.
func (s *Scheduler) LastTick() time.Time { return s.last }

// Update advances the simulation at most once and reports whether it did.
func (s *Scheduler) Update(now time.Time, paused bool) bool {
	if paused {
		return false
	}
	if now.Sub(s.last) < s.interval {
		return false
	}
	s.sim.Step()
	s.last = now
	return true
}
