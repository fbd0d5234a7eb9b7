// Package clock abstracts the timers used by the contact form so tests can
// drive them without waiting on the wall clock.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns a Clock backed by package time.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manual is a Clock whose time only moves when Advance is called. Due
// callbacks run synchronously on the goroutine calling Advance, in deadline
// order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{clock: m, deadline: m.now.Add(d), seq: m.seq, fn: f}
	m.timers = append(m.timers, t)
	return t
}

// Pending reports how many timers are armed.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls inside the window. Timers armed by a callback fire in the same call
// if their deadline is also inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		next.fired = true
		m.now = next.deadline
		m.mu.Unlock()
		next.fn()
	}
}

// nextDue must be called with m.mu held.
func (m *Manual) nextDue(target time.Time) *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].deadline.Equal(m.timers[j].deadline) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].deadline.Before(m.timers[j].deadline)
	})
	if len(m.timers) == 0 || m.timers[0].deadline.After(target) {
		return nil
	}
	return m.timers[0]
}
