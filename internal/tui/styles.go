package tui

import "github.com/charmbracelet/lipgloss"

// termfolio colour palette: phosphor green on a dark terminal.
var (
	colPrimary   = lipgloss.Color("#22C55E") // green, banner and prompt
	colPrimaryLt = lipgloss.Color("#86EFAC") // green light
	colWarning   = lipgloss.Color("#EAB308") // yellow, section headings
	colMuted     = lipgloss.Color("#6B7280") // gray
	colHighlight = lipgloss.Color("#F3F4F6") // near-white
	colAccent    = lipgloss.Color("#20B2AA") // light sea green
	colSubtle    = lipgloss.Color("#14532D") // green-dark (selected item bg)
)

// ─────────────────────────────────────────────────────────────────────────────
// Typography
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleBanner = lipgloss.NewStyle().
			Foreground(colPrimary).
			Bold(true)

	StyleHeading = lipgloss.NewStyle().
			Foreground(colWarning).
			Bold(true)

	StyleMuted  = lipgloss.NewStyle().Foreground(colMuted)
	StyleAccent = lipgloss.NewStyle().Foreground(colAccent).Bold(true)
	StyleNormal = lipgloss.NewStyle().Foreground(colHighlight)
)

// ─────────────────────────────────────────────────────────────────────────────
// Menu and prompt
// ─────────────────────────────────────────────────────────────────────────────

var (
	StyleMenuFrame = lipgloss.NewStyle().Foreground(colPrimaryLt)

	StyleMenuItem = lipgloss.NewStyle().
			Foreground(colHighlight)

	StyleMenuSelected = lipgloss.NewStyle().
				Background(colSubtle).
				Foreground(colHighlight).
				Bold(true)

	StyleBack = lipgloss.NewStyle().
			Foreground(colAccent).
			Underline(true)

	StylePrompt = lipgloss.NewStyle().
			Foreground(colPrimary).
			Bold(true)

	StyleCursor = lipgloss.NewStyle().
			Foreground(colPrimaryLt).
			Blink(true)
)

// columnGap separates side-by-side columns.
const columnGap = "    "

// Key renders a keyboard hint.
func Key(key, label string) string {
	k := lipgloss.NewStyle().
		Foreground(colPrimaryLt).Bold(true).
		Render(key)
	l := StyleMuted.Render(" " + label)
	return k + l
}
