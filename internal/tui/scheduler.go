package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakobsever/termfolio/internal/clock"
)

// timerFiredMsg is delivered by tea.Tick when a scheduled callback is due.
type timerFiredMsg struct{ id int }

// scheduler implements clock.Scheduler on top of the bubbletea event loop:
// each AfterFunc queues a tea.Tick whose message runs the callback inside
// Update, so callbacks never race with other handlers.
type scheduler struct {
	next    int
	timers  map[int]*timer
	pending []tea.Cmd
}

type timer struct {
	s  *scheduler
	id int
	f  func()
}

func newScheduler() *scheduler {
	return &scheduler{timers: map[int]*timer{}}
}

func (s *scheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	s.next++
	t := &timer{s: s, id: s.next, f: f}
	s.timers[t.id] = t
	id := t.id
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return t
}

func (t *timer) Stop() bool {
	if _, ok := t.s.timers[t.id]; !ok {
		return false
	}
	delete(t.s.timers, t.id)
	return true
}

// fire runs the callback for id unless it was stopped.
func (s *scheduler) fire(id int) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	t.f()
	return true
}

// flush hands the ticks queued since the last call to bubbletea.
func (s *scheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
