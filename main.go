package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakobsever/termfolio/internal/browser"
	"github.com/jakobsever/termfolio/internal/config"
	"github.com/jakobsever/termfolio/internal/content"
	"github.com/jakobsever/termfolio/internal/logging"
	"github.com/jakobsever/termfolio/internal/navigator"
	"github.com/jakobsever/termfolio/internal/screen"
	"github.com/jakobsever/termfolio/internal/tui"
	"github.com/jakobsever/termfolio/internal/ui"
)

var version = "dev"

const banner = `
  ▀█▀ █▀▀ █▀█ █▀▄▀█ █▀▀ █▀█ █   █ █▀█
   █  ██▄ █▀▄ █ ▀ █ █▀  █▄█ █▄▄ █ █▄█
`

// snapshotWidth is used for plain output when there is no terminal to measure.
const snapshotWidth = 80

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags override values loaded from config.
type flags struct {
	contentPath string
	style       string
	delay       time.Duration
	logLevel    string
	logFile     string
}

func rootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "termfolio",
		Short: "A portfolio that lives in a fake terminal",
		Long: banner + `  >_ A portfolio shell that types its own commands.

  Pick a menu entry and the terminal types "cd ./<Entry>" before
  switching screens. External entries open in your browser.

  Examples:
    termfolio                        open the interactive terminal
    termfolio print cv               print one screen and exit
    termfolio serve --port 8080      serve the screens as web pages

  Configuration: ~/.config/termfolio/config.yaml or $TERMFOLIO_CONFIG,
  overridden by TERMFOLIO_* environment variables and flags.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, f)
		},
	}

	root.PersistentFlags().StringVar(&f.contentPath, "content", "", "content catalog YAML (default: embedded)")
	root.PersistentFlags().StringVar(&f.style, "style", "", "glamour style: dark, light, notty, dracula, or a JSON style path")
	root.PersistentFlags().DurationVar(&f.delay, "delay", 0, "per-character typing delay (default from config, 50ms)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	root.SilenceUsage = true

	root.AddCommand(printCmd(&f), screensCmd(&f), serveCmd(&f), versionCmd())
	return root
}

// ─────────────────────────────────────────────────────────────────────────────
// Wiring shared by every command
// ─────────────────────────────────────────────────────────────────────────────

type app struct {
	cfg     config.Config
	catalog *content.Catalog
	entries []navigator.MenuEntry
	log     *zap.Logger
}

// load resolves config, applies flag overrides and loads the catalog.
// logOutputs apply only when no log file is configured; without either the
// logger discards.
func load(cmd *cobra.Command, f flags, logOutputs ...string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("content") {
		cfg.Content.Path = f.contentPath
	}
	if cmd.Flags().Changed("style") {
		cfg.Render.Style = f.style
	}
	if cmd.Flags().Changed("delay") {
		if f.delay < config.MinDelay {
			return nil, fmt.Errorf("--delay must be at least %s, got %s", config.MinDelay, f.delay)
		}
		cfg.Animation.Delay = f.delay
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}

	var log *zap.Logger
	if len(logOutputs) == 0 || cfg.Log.File != "" {
		log, err = logging.ForTUI(cfg.Log.Level, cfg.Log.File)
	} else {
		log, err = logging.New(cfg.Log.Level, logOutputs...)
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cat, err := content.Load(cfg.Content.Path)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, catalog: cat, log: log}
	a.entries = navigator.DefaultEntries()
	for _, l := range cat.Links {
		a.entries = append(a.entries, navigator.LinkEntry(l.Label, l.URL, a.openLink))
	}
	return a, nil
}

func (a *app) openLink(url string) {
	if err := browser.Open(url); err != nil {
		a.log.Warn("open link", zap.String("url", url), zap.Error(err))
	}
}

func (a *app) prompt() string {
	if a.cfg.Terminal.Prompt != "" {
		return a.cfg.Terminal.Prompt
	}
	return a.catalog.Owner.Prompt
}

func (a *app) tuiConfig() tui.Config {
	return tui.Config{
		Content:  a.catalog,
		Entries:  a.entries,
		Selector: a.cfg.Terminal.Selector,
		Prompt:   a.prompt(),
		Delay:    a.cfg.Animation.Delay,
		Style:    a.cfg.Render.Style,
		Logger:   a.log,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Interactive terminal
// ─────────────────────────────────────────────────────────────────────────────

func runTUI(cmd *cobra.Command, f flags) error {
	a, err := load(cmd, f)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		cfg := a.tuiConfig()
		cfg.Style = "notty"
		out, err := tui.Snapshot(cfg, screen.Home, snapshotWidth)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	m, err := tui.NewModel(a.tuiConfig())
	if err != nil {
		return err
	}
	a.log.Info("session started", zap.String("session", m.Navigator().Session()))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// print command
// ─────────────────────────────────────────────────────────────────────────────

func printCmd(f *flags) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:       "print [screen]",
		Short:     "Print one screen without animation",
		Example:   "  termfolio print\n  termfolio print skills --width 100",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: screenSlugs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			id, err := screen.Parse(name)
			if err != nil {
				return err
			}
			a, err := load(cmd, *f)
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			cfg := a.tuiConfig()
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				cfg.Style = "notty"
			}
			out, err := tui.Snapshot(cfg, id, width)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", snapshotWidth, "wrap width")
	return cmd
}

// ─────────────────────────────────────────────────────────────────────────────
// screens command
// ─────────────────────────────────────────────────────────────────────────────

func screensCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List menu entries and the command each one types",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd, *f)
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			fmt.Printf("\n  %-3s %-10s %-16s %s\n", "#", "ENTRY", "COMMAND", "TARGET")
			for i, e := range a.entries {
				target := "screen " + e.Screen.Slug()
				if e.External() {
					target = e.URL
				}
				fmt.Printf("  %-3d %-10s %-16s %s\n", i, e.Label, e.Command(), target)
			}
			fmt.Printf("\n  back control types %q and returns home.\n", navigator.BackCommand)
			fmt.Printf("  each character takes %s.\n\n", a.cfg.Animation.Delay)
			return nil
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// serve command
// ─────────────────────────────────────────────────────────────────────────────

func serveCmd(f *flags) *cobra.Command {
	var port int
	var open bool
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve each screen as a web page",
		Example: "  termfolio serve\n  termfolio serve --port 0 --open",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd, *f, "stderr")
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			if !cmd.Flags().Changed("port") {
				port = a.cfg.Serve.Port
			}
			return ui.Serve(port, open, ui.Config{
				Content:  a.catalog,
				Entries:  a.entries,
				Selector: a.cfg.Terminal.Selector,
				Title:    a.catalog.Owner.Name,
				Prompt:   a.prompt(),
				Logger:   a.log,
			})
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port on 127.0.0.1 (0 picks a free one)")
	cmd.Flags().BoolVar(&open, "open", false, "open the page in the default browser")
	return cmd
}

// ─────────────────────────────────────────────────────────────────────────────
// version command
// ─────────────────────────────────────────────────────────────────────────────

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print termfolio version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("  termfolio %s (catalog schema %s)\n", version, content.SchemaConstraint)
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Utilities
// ─────────────────────────────────────────────────────────────────────────────

func screenSlugs() []string {
	out := make([]string, 0, len(screen.All))
	for _, id := range screen.All {
		out = append(out, id.Slug())
	}
	return out
}
