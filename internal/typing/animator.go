// Package typing plays the typed-command animation: a command string is
// revealed one character at a time on the prompt before a transition runs.
package typing

import (
	"time"

	"github.com/jakobsever/termfolio/internal/clock"
	"github.com/jakobsever/termfolio/internal/view"
)

// DefaultDelay is the per-character reveal interval.
const DefaultDelay = 50 * time.Millisecond

// Animator reveals at most one command at a time. Starting a new command
// cancels the one in flight; a cancelled command never reports completion.
type Animator struct {
	sched  clock.Scheduler
	out    view.InputLine
	delay  time.Duration
	active *run
}

type run struct {
	cmd   []rune
	pos   int
	timer clock.Timer
	done  func()
}

// New returns an Animator writing to out. A non-positive delay means DefaultDelay.
func New(sched clock.Scheduler, out view.InputLine, delay time.Duration) *Animator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Animator{sched: sched, out: out, delay: delay}
}

// Delay is the per-character interval.
func (a *Animator) Delay() time.Duration { return a.delay }

// Duration is how long cmd takes to type.
func (a *Animator) Duration(cmd string) time.Duration {
	return time.Duration(len([]rune(cmd))) * a.delay
}

// Active reports whether an animation is in flight.
func (a *Animator) Active() bool { return a.active != nil }

// Start clears the input line and begins typing cmd. done runs once, right
// after the last character is revealed, unless the run is superseded or
// cancelled first.
func (a *Animator) Start(cmd string, done func()) {
	a.Cancel()
	a.out.ResetInput()

	r := &run{cmd: []rune(cmd), done: done}
	a.active = r
	if len(r.cmd) == 0 {
		// nothing to type; still complete asynchronously
		r.timer = a.sched.AfterFunc(0, func() { a.finish(r) })
		return
	}
	r.timer = a.sched.AfterFunc(a.delay, func() { a.tick(r) })
}

// Cancel stops the active animation without firing its completion. It
// reports whether anything was running. Text already typed stays visible.
func (a *Animator) Cancel() bool {
	r := a.active
	if r == nil {
		return false
	}
	a.active = nil
	r.timer.Stop()
	return true
}

func (a *Animator) tick(r *run) {
	if a.active != r {
		return
	}
	a.out.TypeRune(r.cmd[r.pos])
	r.pos++
	if r.pos < len(r.cmd) {
		r.timer = a.sched.AfterFunc(a.delay, func() { a.tick(r) })
		return
	}
	a.finish(r)
}

func (a *Animator) finish(r *run) {
	if a.active != r {
		return
	}
	a.active = nil
	if r.done != nil {
		r.done()
	}
}
