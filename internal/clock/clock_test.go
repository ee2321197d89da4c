package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManualFiresInDueOrder(t *testing.T) {
	t.Parallel()

	m := NewManual(time.Unix(0, 0))
	var got []string
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(15 * time.Millisecond)
	require.Equal(t, []string{"a"}, got)
	require.Equal(t, 2, m.Pending())

	m.Advance(15 * time.Millisecond)
	require.Equal(t, []string{"a", "b", "c"}, got)
	require.Equal(t, time.Unix(0, 0).Add(30*time.Millisecond), m.Now())
}

func TestManualChainedTimersFireWithinOneAdvance(t *testing.T) {
	t.Parallel()

	m := NewManual(time.Unix(0, 0))
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(10*time.Millisecond, tick)

	m.Advance(49 * time.Millisecond)
	require.Equal(t, 4, count)
	m.Advance(time.Millisecond)
	require.Equal(t, 5, count)
	require.Zero(t, m.Pending())
}

func TestManualStop(t *testing.T) {
	t.Parallel()

	m := NewManual(time.Unix(0, 0))
	fired := false
	timer := m.AfterFunc(time.Millisecond, func() { fired = true })
	require.True(t, timer.Stop())
	require.False(t, timer.Stop())

	m.Advance(time.Second)
	require.False(t, fired)
}
