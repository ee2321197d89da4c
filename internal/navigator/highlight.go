package navigator

import (
	"fmt"
	"strings"

	"github.com/jakobsever/termfolio/internal/view"
)

const (
	menuID        = "menu"
	pointerGlyph  = ">"
	menuLabelCols = 8
)

var (
	menuFrame     = "#" + strings.Repeat("-", 16) + "#"
	menuSeparator = "|" + strings.Repeat(" ", 16) + "|"
)

// ItemID is the node id of the menu item at index i.
func ItemID(i int) string { return fmt.Sprintf("menu-%d", i) }

// Decorate draws one framed menu line, with the pointer glyph when selected.
func Decorate(label string, selected bool) string {
	glyph := " "
	if selected {
		glyph = pointerGlyph
	}
	return fmt.Sprintf("|   %s %-*s   |", glyph, menuLabelCols, label)
}

// Highlight returns the menu item nodes for entries with exactly the entry
// at selected marked. It depends only on its arguments.
func Highlight(entries []MenuEntry, selected int) []view.Node {
	items := make([]view.Node, len(entries))
	for i, e := range entries {
		on := i == selected
		items[i] = view.MenuItem(ItemID(i), Decorate(e.Label, on), e.Href(), on)
	}
	return items
}

// menu lays the items out inside the frame, with a blank row between the
// screen entries and the external ones.
func menu(entries []MenuEntry, selected int) view.Node {
	items := Highlight(entries, selected)
	children := make([]view.Node, 0, len(items)+3)
	children = append(children, view.Styled(view.ClassMenuFrame, menuFrame))
	for i, item := range items {
		if i > 0 && entries[i].External() && !entries[i-1].External() {
			children = append(children, view.Styled(view.ClassMenuFrame, menuSeparator))
		}
		children = append(children, item)
	}
	children = append(children, view.Styled(view.ClassMenuFrame, menuFrame))

	n := view.Box(view.ClassMenu, children...)
	n.ID = menuID
	return n
}
