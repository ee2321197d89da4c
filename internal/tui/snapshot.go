package tui

import (
	"time"

	"github.com/jakobsever/termfolio/internal/clock"
	"github.com/jakobsever/termfolio/internal/navigator"
	"github.com/jakobsever/termfolio/internal/screen"
	"github.com/jakobsever/termfolio/internal/surface"
)

// Snapshot renders screen id once, without animation, as it would appear
// right after the transition into it: the prompt shows the command that led
// there. It is used when stdout is not a terminal.
func Snapshot(cfg Config, id screen.ID, width int) (string, error) {
	doc := surface.NewDocument(Mount)
	nav, err := navigator.New(doc, cfg.Content, navigator.Config{
		Selector:  cfg.Selector,
		Entries:   cfg.Entries,
		Scheduler: clock.NewManual(time.Now()),
		Delay:     cfg.Delay,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return "", err
	}
	if err := nav.Render(id); err != nil {
		return "", err
	}

	r := NewRenderer(cfg.Style, width)
	body, _ := r.Render(doc.Mount(Mount).Nodes())

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	return body + "\n\n" + prompt + navigator.CommandFor(nav.Entries(), id) + "\n", nil
}
