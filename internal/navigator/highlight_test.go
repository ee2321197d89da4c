package navigator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakobsever/termfolio/internal/screen"
	"github.com/jakobsever/termfolio/internal/view"
)

func TestDecorate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "|   > Skills     |", Decorate("Skills", true))
	require.Equal(t, "|     CV         |", Decorate("CV", false))
	require.Len(t, Decorate("About", false), len(menuFrame))
}

func TestHighlightDependsOnlyOnSelection(t *testing.T) {
	t.Parallel()

	entries := DefaultEntries()
	a := Highlight(entries, 2)
	b := Highlight(entries, 2)
	require.Equal(t, a, b)

	for i, n := range a {
		require.Equal(t, i == 2, n.Selected)
		require.Equal(t, ItemID(i), n.ID)
	}
	require.Equal(t, "/projects", a[2].Href)
}

func TestMenuSeparatesExternalEntries(t *testing.T) {
	t.Parallel()

	entries := append(DefaultEntries(), LinkEntry("GitHub", "https://github.example", nil))
	m := menu(entries, 0)
	require.Equal(t, menuID, m.ID)
	// frame, 4 screens, separator, link, frame
	require.Len(t, m.Children, 8)
	require.Equal(t, menuSeparator, m.Children[5].Text)
	require.Equal(t, view.KindMenuItem, m.Children[6].Kind)
	require.Equal(t, "https://github.example", m.Children[6].Href)
}

func TestCommands(t *testing.T) {
	t.Parallel()

	entries := append(DefaultEntries(), LinkEntry("GitHub", "https://github.example", nil))
	require.Equal(t, "cd ./Skills", entries[0].Command())
	require.Equal(t, "open GitHub", entries[4].Command())
	require.True(t, entries[4].External())

	require.Equal(t, "cd ./CV", CommandFor(entries, screen.CV))
	require.Empty(t, CommandFor(entries, screen.Home))
}
