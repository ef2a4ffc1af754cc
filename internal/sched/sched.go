// Package sched is the timing port of a game session. Sessions ask for
// periodic and one-shot callbacks; the front end decides what drives time.
package sched

import (
	"slices"
	"sync"
	"time"
)

// Task is a scheduled callback.
type Task interface {
	// Cancel stops the task. It returns true only for the call that
	// actually cancelled a pending task; later calls, and calls on a
	// one-shot task that already fired, return false.
	Cancel() bool
}

// Scheduler runs callbacks after a delay or at a fixed period.
type Scheduler interface {
	Every(d time.Duration, fn func()) Task
	After(d time.Duration, fn func()) Task
}

// Manual is a Scheduler on a virtual clock. Callbacks run on the goroutine
// calling Advance, one at a time, so a session driven by it is never
// mutated concurrently.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*task
}

type task struct {
	m      *Manual
	due    time.Duration
	period time.Duration // 0 for one-shot
	seq    uint64
	fn     func()
	done   bool
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that may still fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Every runs fn every d, first at now+d. Periods below one nanosecond are
// raised to one.
func (m *Manual) Every(d time.Duration, fn func()) Task {
	return m.add(max(d, time.Nanosecond), max(d, time.Nanosecond), fn)
}

// After runs fn once at now+d.
func (m *Manual) After(d time.Duration, fn func()) Task {
	return m.add(max(d, 0), 0, fn)
}

func (m *Manual) add(delay, period time.Duration, fn func()) *task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &task{m: m, due: m.now + delay, period: period, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every task that falls due
// in order of due time (ties in scheduling order). Tasks scheduled by a
// callback fire in the same call only if they fall due before the target.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + max(d, 0)
	m.mu.Unlock()

	for {
		t := m.next(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// next pops the earliest task due at or before target and sets the clock to
// its due time. Periodic tasks are rescheduled before their callback runs.
func (m *Manual) next(target time.Duration) *task {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best *task
	for _, t := range m.pending {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	if best == nil {
		return nil
	}

	m.now = best.due
	if best.period > 0 {
		best.due += best.period
		m.seq++
		best.seq = m.seq
	} else {
		best.done = true
		m.remove(best)
	}
	return best
}

func (m *Manual) remove(t *task) {
	if i := slices.Index(m.pending, t); i >= 0 {
		m.pending = slices.Delete(m.pending, i, i+1)
	}
}

func (t *task) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}

// Pacer feeds wall-clock readings into a Manual scheduler.
type Pacer struct {
	m    *Manual
	last time.Time
}

// NewPacer starts pacing m from start.
func NewPacer(m *Manual, start time.Time) *Pacer {
	return &Pacer{m: m, last: start}
}

// Sync advances the scheduler by the wall time elapsed since the previous
// reading. Readings that go backwards are ignored.
func (p *Pacer) Sync(now time.Time) {
	if !now.After(p.last) {
		return
	}
	p.m.Advance(now.Sub(p.last))
	p.last = now
}
