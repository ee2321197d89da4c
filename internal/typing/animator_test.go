package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jakobsever/termfolio/internal/clock"
)

type line struct {
	text   []rune
	resets int
}

func (l *line) ResetInput()     { l.text = nil; l.resets++ }
func (l *line) TypeRune(r rune) { l.text = append(l.text, r) }
func (l *line) String() string  { return string(l.text) }

const d = 50 * time.Millisecond

func newAnimator() (*Animator, *clock.Manual, *line) {
	clk := clock.NewManual(time.Unix(0, 0))
	out := &line{}
	return New(clk, out, d), clk, out
}

func TestRevealsOneCharacterPerDelay(t *testing.T) {
	t.Parallel()

	a, clk, out := newAnimator()
	cmd := "cd ./Skills"
	n := len(cmd)
	done := 0
	a.Start(cmd, func() { done++ })
	require.True(t, a.Active())
	require.Empty(t, out.String())

	clk.Advance(time.Duration(n-1) * d)
	require.Equal(t, cmd[:n-1], out.String())
	require.Zero(t, done)
	require.True(t, a.Active())

	clk.Advance(d)
	require.Equal(t, cmd, out.String())
	require.Equal(t, 1, done)
	require.False(t, a.Active())

	clk.Advance(10 * d)
	require.Equal(t, 1, done)
	require.Equal(t, time.Duration(n)*d, a.Duration(cmd))
}

func TestSecondStartSupersedesFirst(t *testing.T) {
	t.Parallel()

	a, clk, out := newAnimator()
	first, second := 0, 0
	a.Start("cd ./About", func() { first++ })
	clk.Advance(3 * d)
	require.Equal(t, "cd ", out.String())

	a.Start("cd ..", func() { second++ })
	require.Empty(t, out.String())

	clk.Advance(time.Minute)
	require.Zero(t, first)
	require.Equal(t, 1, second)
	require.Equal(t, "cd ..", out.String())
	require.Zero(t, clk.Pending())
}

func TestCancelSuppressesCompletion(t *testing.T) {
	t.Parallel()

	a, clk, out := newAnimator()
	fired := false
	a.Start("open GitHub", func() { fired = true })
	clk.Advance(2 * d)

	require.True(t, a.Cancel())
	require.False(t, a.Cancel())
	clk.Advance(time.Minute)
	require.False(t, fired)
	require.Equal(t, "op", out.String())
}

func TestEmptyCommandCompletesOnNextTick(t *testing.T) {
	t.Parallel()

	a, clk, out := newAnimator()
	fired := 0
	a.Start("", func() { fired++ })
	require.Zero(t, fired)

	clk.Advance(0)
	require.Equal(t, 1, fired)
	require.Empty(t, out.String())
	require.Equal(t, 1, out.resets)
}

func TestDefaultDelay(t *testing.T) {
	t.Parallel()

	a := New(clock.NewManual(time.Unix(0, 0)), &line{}, 0)
	require.Equal(t, DefaultDelay, a.Delay())
}
