// Package navigator owns the terminal's current screen and mediates every
// transition between screens through the typed-command animation.
package navigator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakobsever/termfolio/internal/clock"
	"github.com/jakobsever/termfolio/internal/screen"
	"github.com/jakobsever/termfolio/internal/typing"
	"github.com/jakobsever/termfolio/internal/view"
)

const (
	// DefaultSelector is the mount point used when Config.Selector is empty.
	DefaultSelector = "#terminal"

	BackCommand = "cd .."
	BackLabel   = "< Back"
	BackID      = "back"
)

var (
	ErrMountNotFound   = errors.New("mount point not found")
	ErrIndexOutOfRange = errors.New("menu index out of range")
	ErrUnknownScreen   = errors.New("unknown screen")
	ErrNoScheduler     = errors.New("no scheduler configured")
)

// Provider supplies the static content of each screen.
type Provider interface {
	Page(id screen.ID) (view.Page, error)
}

// Config holds what the host passes in at construction.
type Config struct {
	Selector  string
	Entries   []MenuEntry // nil means DefaultEntries
	Scheduler clock.Scheduler
	Delay     time.Duration
	Logger    *zap.Logger
}

// State is a snapshot of the navigator.
type State struct {
	Current   screen.ID
	Selected  int
	Animating bool
}

// Navigator renders screens into a mount and runs transitions. All methods
// must be called from the host's event loop, the same one the scheduler
// fires callbacks on.
type Navigator struct {
	mount    view.Mount
	content  Provider
	entries  []MenuEntry
	anim     *typing.Animator
	log      *zap.Logger
	session  string
	current  screen.ID
	selected int
}

// New attaches to the mount named by cfg.Selector and renders Home.
func New(doc view.Document, content Provider, cfg Config) (*Navigator, error) {
	sel := cfg.Selector
	if sel == "" {
		sel = DefaultSelector
	}
	mount, ok := doc.Query(sel)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMountNotFound, sel)
	}
	if cfg.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if content == nil {
		return nil, errors.New("no content provider configured")
	}

	entries := cfg.Entries
	if entries == nil {
		entries = DefaultEntries()
	}
	for i, e := range entries {
		if !e.External() && !e.Screen.Valid() {
			return nil, fmt.Errorf("menu entry %d (%q): %w", i, e.Label, ErrUnknownScreen)
		}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	session := uuid.NewString()

	n := &Navigator{
		mount:   mount,
		content: content,
		entries: append([]MenuEntry(nil), entries...),
		log:     log.Named("navigator").With(zap.String("session", session)),
		session: session,
	}
	n.anim = typing.New(cfg.Scheduler, mount, cfg.Delay)

	if err := n.Render(screen.Home); err != nil {
		return nil, err
	}
	return n, nil
}

// Session identifies this navigator in logs.
func (n *Navigator) Session() string { return n.session }

// Entries returns a copy of the menu registry.
func (n *Navigator) Entries() []MenuEntry { return append([]MenuEntry(nil), n.entries...) }

// Delay is the per-character animation interval.
func (n *Navigator) Delay() time.Duration { return n.anim.Delay() }

// State returns the current navigator state.
func (n *Navigator) State() State {
	return State{Current: n.current, Selected: n.selected, Animating: n.anim.Active()}
}

// Render replaces the mount's content and bindings with screen id. Home gets
// the menu with the first entry selected; every other screen gets a back
// control. Nothing is cleared when the content cannot be loaded.
func (n *Navigator) Render(id screen.ID) error {
	if !id.Valid() {
		return fmt.Errorf("render %d: %w", int(id), ErrUnknownScreen)
	}
	page, err := n.content.Page(id)
	if err != nil {
		return fmt.Errorf("load %s content: %w", id, err)
	}

	n.mount.Clear()
	n.current = id

	if id != screen.Home {
		n.mount.Append(view.Back(BackID, BackLabel, "/"))
		n.mount.Bind(BackID, view.Click, n.GoBack)
	}
	n.mount.Append(view.Styled(view.ClassBanner, page.Banner))
	for _, b := range page.Body {
		n.mount.Append(b)
	}
	if id == screen.Home {
		n.selected = 0
		n.mount.Append(menu(n.entries, n.selected))
		for i := range n.entries {
			n.bindItem(i)
		}
	}

	n.log.Debug("rendered", zap.Stringer("screen", id), zap.Int("nodes", len(page.Body)))
	return nil
}

func (n *Navigator) bindItem(i int) {
	id := ItemID(i)
	n.mount.Bind(id, view.Click, func() {
		if err := n.Activate(i); err != nil {
			n.log.Error("activate", zap.Int("index", i), zap.Error(err))
		}
	})
	n.mount.Bind(id, view.Hover, func() {
		if err := n.Select(i); err != nil {
			n.log.Error("select", zap.Int("index", i), zap.Error(err))
		}
	})
}

// Select marks entry i as the selected one. Only the menu decoration
// changes; calling it again with the same index changes nothing.
func (n *Navigator) Select(i int) error {
	if err := n.checkIndex(i); err != nil {
		return err
	}
	n.selected = i
	if n.current != screen.Home {
		return nil
	}
	for _, item := range Highlight(n.entries, i) {
		n.mount.Replace(item.ID, item)
	}
	return nil
}

// Activate types the entry's command and, once typed, renders its screen or
// runs its external action. External actions leave the screen unchanged.
func (n *Navigator) Activate(i int) error {
	if err := n.checkIndex(i); err != nil {
		return err
	}
	if err := n.Select(i); err != nil {
		return err
	}
	e := n.entries[i]
	n.start(e.Command(), func() {
		if e.External() {
			n.log.Info("external action", zap.String("label", e.Label), zap.String("url", e.URL))
			e.Action()
			return
		}
		n.renderOrLog(e.Screen)
	})
	return nil
}

// GoBack types "cd .." and returns to Home.
func (n *Navigator) GoBack() {
	n.start(BackCommand, func() { n.renderOrLog(screen.Home) })
}

// Cancel abandons an in-flight transition. It reports whether one was running.
func (n *Navigator) Cancel() bool { return n.anim.Cancel() }

func (n *Navigator) start(cmd string, done func()) {
	if n.anim.Active() {
		n.log.Debug("superseding transition", zap.String("command", cmd))
	}
	n.log.Debug("typing", zap.String("command", cmd), zap.Duration("duration", n.anim.Duration(cmd)))
	n.anim.Start(cmd, done)
}

func (n *Navigator) renderOrLog(id screen.ID) {
	if err := n.Render(id); err != nil {
		n.log.Error("render", zap.Stringer("screen", id), zap.Error(err))
	}
}

func (n *Navigator) checkIndex(i int) error {
	if i < 0 || i >= len(n.entries) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(n.entries))
	}
	return nil
}
