package ui

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jakobsever/termfolio/internal/content"
	"github.com/jakobsever/termfolio/internal/navigator"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := content.Default()
	require.NoError(t, err)

	entries := navigator.DefaultEntries()
	for _, l := range cat.Links {
		entries = append(entries, navigator.LinkEntry(l.Label, l.URL, nil))
	}
	h, err := NewRouter(Config{
		Content: cat,
		Entries: entries,
		Title:   cat.Owner.Name,
		Prompt:  cat.Owner.Prompt,
	})
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestHomeRendersMenu(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, body, `<nav class="menu">`)
	require.Contains(t, body, `class="menu-item selected" id="menu-0" href="/skills"`)
	require.Contains(t, body, `href="https://github.com/JakobSever" target="_blank" rel="noopener noreferrer"`)
	require.NotContains(t, body, "back-button")
	require.Contains(t, body, `<span class="terminal-input"></span>`)
}

func TestScreenRendersBackAndCommand(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/about")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `class="back-button" id="back" href="/"`)
	require.Contains(t, body, `<span class="terminal-input">cd ./About</span>`)
	require.Contains(t, body, "<strong>Jakob Sever</strong>")
	require.Contains(t, body, "<title>About · Jakob Sever</title>")
	require.NotContains(t, body, `class="menu-item`)
}

func TestUnknownScreenIs404WithSuggestion(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/projets")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `did you mean "projects"`)
}

func TestStylesheetServed(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/static/terminal.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "#terminal")
}

func TestBadSelectorFailsAtStartup(t *testing.T) {
	t.Parallel()

	cat, err := content.Default()
	require.NoError(t, err)
	_, err = NewRouter(Config{Content: cat, Selector: "#nope"})
	require.ErrorIs(t, err, navigator.ErrMountNotFound)
}

func TestServeReturnsWhenListenerFails(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	errc := make(chan error, 1)
	go func() { errc <- serveUntil(&http.Server{Handler: http.NotFoundHandler()}, ln, make(chan os.Signal)) }()

	select {
	case err := <-errc:
		require.ErrorContains(t, err, "server error")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the listener failed")
	}
}

func TestServeStopsOnSignal(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	stop := make(chan os.Signal, 1)
	srv := &http.Server{Handler: newTestRouter(t)}

	errc := make(chan error, 1)
	go func() { errc <- serveUntil(srv, ln, stop) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	stop <- os.Interrupt
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop on signal")
	}
}

func TestPortraitIsPreformatted(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(t), "/about")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<div class="text-block pre">                                 */(&amp;%&amp;(*`)
}
