// Package clock abstracts one-shot timers so that callers can run on a
// single event loop in production and on virtual time in tests.
package clock

import (
	"sort"
	"time"
)

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the timer
	// was still pending.
	Stop() bool
}

// Scheduler runs f once after d. Implementations must invoke f on the same
// goroutine that drives the caller's event handling.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Manual is a Scheduler on virtual time. Callbacks fire only from Advance,
// in due order, on the caller's goroutine.
type Manual struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	m   *Manual
	due time.Time
	seq int
	f   func()
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time { return m.now }

// Pending is the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int { return len(m.timers) }

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now.Add(d), seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing every timer that falls due
// on the way, including timers scheduled by callbacks fired during the call.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.next(target)
		if next == nil {
			break
		}
		m.remove(next)
		m.now = next.due
		next.f()
	}
	m.now = target
}

func (m *Manual) next(limit time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if a.due.Equal(b.due) {
			return a.seq < b.seq
		}
		return a.due.Before(b.due)
	})
	if m.timers[0].due.After(limit) {
		return nil
	}
	return m.timers[0]
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, x := range m.timers {
		if x == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

func (t *manualTimer) Stop() bool { return t.m.remove(t) }
