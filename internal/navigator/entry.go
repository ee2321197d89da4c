package navigator

import (
	"github.com/jakobsever/termfolio/internal/screen"
)

// MenuEntry is one selectable line of the home menu. It either targets an
// internal screen or, when Action is set, performs an external side effect.
type MenuEntry struct {
	Label  string
	Screen screen.ID
	URL    string // external entries only
	Action func()
}

// ScreenEntry targets an internal screen, labelled with the screen name.
func ScreenEntry(id screen.ID) MenuEntry {
	return MenuEntry{Label: id.String(), Screen: id}
}

// LinkEntry opens url through open when activated.
func LinkEntry(label, url string, open func(url string)) MenuEntry {
	return MenuEntry{
		Label: label,
		URL:   url,
		Action: func() {
			if open != nil {
				open(url)
			}
		},
	}
}

// DefaultEntries is the internal part of the registry in display order.
func DefaultEntries() []MenuEntry {
	return []MenuEntry{
		ScreenEntry(screen.Skills),
		ScreenEntry(screen.About),
		ScreenEntry(screen.Projects),
		ScreenEntry(screen.CV),
	}
}

// External reports whether the entry leaves the terminal instead of rendering a screen.
func (e MenuEntry) External() bool { return e.Action != nil }

// Command is the synthetic shell command typed when the entry is activated.
func (e MenuEntry) Command() string {
	if e.External() {
		return "open " + e.Label
	}
	return "cd ./" + e.Label
}

// Href is where link-rendering hosts point the entry.
func (e MenuEntry) Href() string {
	if e.External() {
		return e.URL
	}
	return "/" + e.Screen.Slug()
}

// CommandFor returns the command that leads to id from the home menu, or ""
// for Home and for screens no entry targets.
func CommandFor(entries []MenuEntry, id screen.ID) string {
	if id == screen.Home {
		return ""
	}
	for _, e := range entries {
		if !e.External() && e.Screen == id {
			return e.Command()
		}
	}
	return ""
}
