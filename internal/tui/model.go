// Package tui hosts the portfolio terminal in a real terminal via bubbletea.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jakobsever/termfolio/internal/navigator"
	"github.com/jakobsever/termfolio/internal/surface"
	"github.com/jakobsever/termfolio/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// prompt line plus key hints
	chromeHeight = 2

	// Mount is the container the terminal UI exposes to the navigator.
	Mount = navigator.DefaultSelector
)

// Config holds the runtime configuration passed from the CLI to the TUI.
type Config struct {
	Content  navigator.Provider
	Entries  []navigator.MenuEntry
	Selector string
	Prompt   string
	Delay    time.Duration
	Style    string
	Logger   *zap.Logger
}

// Model is the root BubbleTea model; it hosts one navigator.
type Model struct {
	cfg      Config
	nav      *navigator.Navigator
	mount    *surface.Mount
	sched    *scheduler
	renderer *Renderer
	vp       viewport.Model
	zones    []zone
	renders  int
	width    int
	height   int
	log      *zap.Logger
}

// NewModel mounts a navigator on the terminal's single container. It fails
// when the configured selector names a different container.
func NewModel(cfg Config) (*Model, error) {
	if cfg.Content == nil {
		return nil, errors.New("tui: no content provider")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	doc := surface.NewDocument(Mount)
	sched := newScheduler()
	nav, err := navigator.New(doc, cfg.Content, navigator.Config{
		Selector:  cfg.Selector,
		Entries:   cfg.Entries,
		Scheduler: sched,
		Delay:     cfg.Delay,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	m := &Model{
		cfg:      cfg,
		nav:      nav,
		mount:    doc.Mount(Mount),
		sched:    sched,
		renderer: NewRenderer(cfg.Style, defaultWidth),
		vp:       viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
		log:      log.Named("tui"),
	}
	m.refresh()
	return m, nil
}

// Navigator exposes the hosted navigator.
func (m *Model) Navigator() *navigator.Navigator { return m.nav }

func (m *Model) Init() tea.Cmd {
	return m.sched.flush()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			if !m.handleKey(msg.String()) {
				var cmd tea.Cmd
				m.vp, cmd = m.vp.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		if !m.handleMouse(msg) {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			cmds = append(cmds, cmd)
		}

	case timerFiredMsg:
		m.sched.fire(msg.id)
	}

	m.refresh()
	cmds = append(cmds, m.sched.flush())
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	prompt := m.cfg.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	line := StylePrompt.Render(prompt) + StyleNormal.Render(m.mount.Input()) + StyleCursor.Render("█")
	return m.vp.View() + "\n" + line + "\n" + hints(m.nav.State())
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.vp.Width = w
	m.vp.Height = max(1, h-chromeHeight)
	m.renderer.SetWidth(w)
	m.renders = -1
}

// refresh re-lays out the mount's content. A new screen scrolls back to the top.
func (m *Model) refresh() {
	content, zones := m.renderer.Render(m.mount.Nodes())
	m.vp.SetContent(content)
	m.zones = zones
	if r := m.mount.Renders(); r != m.renders {
		m.renders = r
		m.vp.GotoTop()
	}
}

// handleMouse routes hover and left clicks on interactive lines into the mount.
func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	if msg.Y < 0 || msg.Y >= m.vp.Height {
		return false
	}
	id := zoneAt(m.zones, m.vp.YOffset+msg.Y)
	if id == "" {
		return false
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
		return m.mount.Dispatch(id, view.Hover)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.mount.Dispatch(id, view.Click)
	}
	return false
}
