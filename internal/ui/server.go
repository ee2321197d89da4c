// Package ui serves the portfolio terminal as static HTML snapshots, one
// page per screen. It embeds its template and stylesheet at compile time so
// the binary has no external file dependencies.
package ui

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jakobsever/termfolio/internal/browser"
	"github.com/jakobsever/termfolio/internal/clock"
	"github.com/jakobsever/termfolio/internal/navigator"
	"github.com/jakobsever/termfolio/internal/screen"
	"github.com/jakobsever/termfolio/internal/surface"
	"github.com/jakobsever/termfolio/internal/view"
)

//go:embed static
var staticFiles embed.FS

const pageTemplate = "index.html.tmpl"

// Config holds what the server needs to build each snapshot.
type Config struct {
	Content  navigator.Provider
	Entries  []navigator.MenuEntry
	Selector string
	Title    string
	Prompt   string
	Logger   *zap.Logger
}

type pageData struct {
	Title   string
	Prompt  string
	Command string
	Nodes   []view.Node
}

type server struct {
	cfg  Config
	tmpl *template.Template
	log  *zap.Logger
}

// NewRouter builds the HTTP handler: "/" is Home, "/{screen}" any other screen.
func NewRouter(cfg Config) (http.Handler, error) {
	if cfg.Content == nil {
		return nil, errors.New("ui: no content provider")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	tmpl, err := template.New(pageTemplate).
		Funcs(newHTMLRenderer().funcs()).
		ParseFS(staticFiles, "static/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}
	s := &server{cfg: cfg, tmpl: tmpl, log: cfg.Logger.Named("ui")}
	// a bad selector or catalog should stop startup, not fail every request
	if err := s.render(io.Discard, screen.Home); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Get("/", s.handleScreen)
	r.Get("/{screen}", s.handleScreen)
	return r, nil
}

func (s *server) handleScreen(w http.ResponseWriter, r *http.Request) {
	id, err := screen.Parse(chi.URLParam(r, "screen"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := s.render(&buf, id); err != nil {
		s.log.Error("snapshot", zap.Stringer("screen", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// render writes the full page for id.
func (s *server) render(w io.Writer, id screen.ID) error {
	page, err := s.snapshot(id)
	if err != nil {
		return err
	}
	if err := s.tmpl.ExecuteTemplate(w, pageTemplate, page); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// snapshot renders id through a fresh navigator. Transitions are links, so
// the animation clock is never advanced.
func (s *server) snapshot(id screen.ID) (pageData, error) {
	doc := surface.NewDocument(navigator.DefaultSelector)
	nav, err := navigator.New(doc, s.cfg.Content, navigator.Config{
		Selector:  s.cfg.Selector,
		Entries:   s.cfg.Entries,
		Scheduler: clock.NewManual(time.Now()),
		Logger:    s.log,
	})
	if err != nil {
		return pageData{}, err
	}
	if err := nav.Render(id); err != nil {
		return pageData{}, err
	}
	title := s.cfg.Title
	if id != screen.Home {
		title = id.String() + " · " + title
	}
	return pageData{
		Title:   title,
		Prompt:  s.cfg.Prompt,
		Command: navigator.CommandFor(nav.Entries(), id),
		Nodes:   doc.Mount(navigator.DefaultSelector).Nodes(),
	}, nil
}

// requestLogger emits one structured entry per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_ip", r.RemoteAddr),
				zap.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}

// Serve starts the snapshot server on the given port and blocks until
// SIGINT/SIGTERM. If port is 0 a free port is chosen automatically. When
// open is set the page is opened in the default browser.
func Serve(port int, open bool, cfg Config) error {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	handler, err := NewRouter(cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("could not bind to port %d: %w", port, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	url := "http://" + ln.Addr().String()
	fmt.Printf("\n  >_ termfolio web terminal\n\n")
	fmt.Printf("  URL     : %s\n", url)
	fmt.Printf("  Stop    : Ctrl+C\n\n")

	if open {
		go func() {
			time.Sleep(400 * time.Millisecond) // wait for server to start
			if err := browser.Open(url); err != nil {
				cfg.Logger.Warn("open browser", zap.Error(err))
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	return serveUntil(srv, ln, stop)
}

// serveUntil serves on ln until stop fires or the server fails on its own.
// The shutdown watcher has exited by the time it returns.
func serveUntil(srv *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-stop:
		case <-done:
			return
		}
		fmt.Printf("\n  Shutting down…\n\n")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	err := srv.Serve(ln)
	close(done)
	<-exited
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
