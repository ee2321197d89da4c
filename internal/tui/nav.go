package tui

import (
	"go.uber.org/zap"

	"github.com/jakobsever/termfolio/internal/navigator"
	"github.com/jakobsever/termfolio/internal/screen"
)

const defaultPrompt = "guest@portfolio~ %: "

// handleKey maps navigation keys onto navigator operations. It reports
// whether the key was consumed.
func (m *Model) handleKey(key string) bool {
	st := m.nav.State()
	home := st.Current == screen.Home
	last := len(m.nav.Entries()) - 1

	var err error
	switch key {
	case "up", "k":
		if !home {
			return false
		}
		err = m.nav.Select(max(0, st.Selected-1))
	case "down", "j", "tab":
		if !home {
			return false
		}
		err = m.nav.Select(min(last, st.Selected+1))
	case "enter", " ":
		if !home || last < 0 {
			return false
		}
		err = m.nav.Activate(st.Selected)
	case "esc", "backspace", "left", "h":
		if home {
			return false
		}
		m.nav.GoBack()
	default:
		return false
	}
	if err != nil {
		m.log.Error("key", zap.String("key", key), zap.Error(err))
	}
	return true
}

func hints(st navigator.State) string {
	if st.Current == screen.Home {
		return "  " + Key("↑↓", "move") + "  " + Key("enter", "open") + "  " + Key("q", "quit")
	}
	return "  " + Key("esc", "back") + "  " + Key("pgup/pgdn", "scroll") + "  " + Key("q", "quit")
}
