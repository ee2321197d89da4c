package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakobsever/termfolio/internal/view"
)

// zone is the line range an interactive node occupies in rendered output.
type zone struct {
	id     string
	top    int
	height int
}

// Renderer turns the virtual tree into terminal text.
type Renderer struct {
	width int
	style string

	md      *glamour.TermRenderer
	mdWidth int
}

// NewRenderer returns a renderer for the given glamour style.
func NewRenderer(style string, width int) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, width: width}
}

// SetWidth changes the wrap width; markdown is re-laid out lazily.
func (r *Renderer) SetWidth(w int) { r.width = w }

// Render lays nodes out top to bottom and reports where interactive nodes landed.
func (r *Renderer) Render(nodes []view.Node) (string, []zone) {
	return r.stack(nodes)
}

func (r *Renderer) stack(nodes []view.Node) (string, []zone) {
	var (
		blocks []string
		zones  []zone
		line   int
	)
	for _, n := range nodes {
		b, zs := r.block(n)
		for _, z := range zs {
			z.top += line
			zones = append(zones, z)
		}
		blocks = append(blocks, b)
		line += lipgloss.Height(b)
	}
	return strings.Join(blocks, "\n"), zones
}

func (r *Renderer) block(n view.Node) (string, []zone) {
	if n.Interactive() {
		return r.control(n), []zone{{id: n.ID, height: 1}}
	}
	switch n.Kind {
	case view.KindMarkdown:
		return r.markdown(n.Text), nil
	case view.KindContainer:
		return r.container(n)
	default:
		return r.text(n), nil
	}
}

// control draws a single-line interactive node.
func (r *Renderer) control(n view.Node) string {
	if n.Kind == view.KindBack {
		return StyleBack.Render(n.Text)
	}
	st := StyleMenuItem
	if n.Selected {
		st = StyleMenuSelected
	}
	return r.center(st.Render(n.Text))
}

func (r *Renderer) container(n view.Node) (string, []zone) {
	switch n.Class {
	case view.ClassColumns:
		// columns keep their natural width; only the joined block is centred
		natural := &Renderer{style: r.style}
		cols := make([]string, 0, 2*len(n.Children))
		for i, c := range n.Children {
			if i > 0 {
				cols = append(cols, columnGap)
			}
			b, _ := natural.block(c)
			cols = append(cols, b)
		}
		return r.center(lipgloss.JoinHorizontal(lipgloss.Top, cols...)), nil
	case view.ClassInfo:
		if len(n.Children) != 2 {
			s, z := r.stack(n.Children)
			return s, z
		}
		keys := StyleAccent.Render(n.Children[0].Text)
		vals := lipgloss.NewStyle().Align(lipgloss.Right).Render(n.Children[1].Text)
		return r.center(lipgloss.JoinHorizontal(lipgloss.Top, keys, columnGap, vals)), nil
	default:
		return r.stack(n.Children)
	}
}

func (r *Renderer) text(n view.Node) string {
	switch n.Class {
	case view.ClassSpacer:
		return ""
	case view.ClassBanner:
		return r.center(StyleBanner.Render(n.Text))
	case view.ClassHeading:
		return StyleHeading.Render(n.Text)
	case view.ClassAccent:
		return r.wrap(StyleAccent, n.Text)
	case view.ClassMuted:
		return r.wrap(StyleMuted, n.Text)
	case view.ClassPre:
		return r.center(StyleMuted.Render(n.Text))
	case view.ClassMenuFrame:
		return r.center(StyleMenuFrame.Render(n.Text))
	case view.ClassRule:
		w := r.width
		if w <= 0 || w > 40 {
			w = 40
		}
		return StyleMuted.Render(strings.Repeat("─", w))
	case view.ClassCenter:
		if r.width <= 0 {
			return StyleNormal.Render(n.Text)
		}
		return StyleNormal.Width(r.width).Align(lipgloss.Center).Render(n.Text)
	default:
		return r.wrap(StyleNormal, n.Text)
	}
}

func (r *Renderer) wrap(st lipgloss.Style, s string) string {
	if r.width <= 0 {
		return st.Render(s)
	}
	return st.Width(r.width).Render(s)
}

func (r *Renderer) center(s string) string {
	if r.width <= 0 || lipgloss.Width(s) >= r.width {
		return s
	}
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Center, s)
}

func (r *Renderer) markdown(src string) string {
	md := r.markdownRenderer()
	if md == nil {
		return r.wrap(StyleNormal, src)
	}
	out, err := md.Render(src)
	if err != nil {
		return r.wrap(StyleNormal, src)
	}
	return strings.Trim(out, "\n")
}

func (r *Renderer) markdownRenderer() *glamour.TermRenderer {
	w := r.width
	if w <= 0 {
		w = 80
	}
	if r.md != nil && r.mdWidth == w {
		return r.md
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStylePath(r.style),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		return nil
	}
	r.md, r.mdWidth = md, w
	return md
}

// zoneAt returns the id of the interactive node drawn on line, if any.
func zoneAt(zones []zone, line int) string {
	for _, z := range zones {
		if line >= z.top && line < z.top+z.height {
			return z.id
		}
	}
	return ""
}
