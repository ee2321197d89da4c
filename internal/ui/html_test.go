package ui

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakobsever/termfolio/internal/view"
)

func renderNode(t *testing.T, n view.Node) string {
	t.Helper()
	tmpl, err := template.New(pageTemplate).
		Funcs(newHTMLRenderer().funcs()).
		ParseFS(staticFiles, "static/*.html.tmpl")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&b, "node", n))
	return b.String()
}

func TestNodeAttributesAreEscaped(t *testing.T) {
	t.Parallel()

	out := renderNode(t, view.MenuItem(`a"b`, "<x>", "javascript:alert(1)", true))
	require.Contains(t, out, `class="menu-item selected"`)
	require.Contains(t, out, `id="a&#34;b"`)
	require.Contains(t, out, `href="#ZgotmplZ"`)
	require.Contains(t, out, "&lt;x&gt;")
	require.NotContains(t, out, `target="_blank"`)
}

func TestExternalMenuItemOpensNewTab(t *testing.T) {
	t.Parallel()

	out := renderNode(t, view.MenuItem("menu-5", "GitHub", "https://github.com/JakobSever", false))
	require.Equal(t,
		`<a class="menu-item" id="menu-5" href="https://github.com/JakobSever" target="_blank" rel="noopener noreferrer">GitHub</a>`,
		out)
}

func TestMarkdownIsSanitized(t *testing.T) {
	t.Parallel()

	out := renderNode(t, view.Markdown("**hi** <script>alert(1)</script>"))
	require.Contains(t, out, `<div class="text-block markdown">`)
	require.Contains(t, out, "<strong>hi</strong>")
	require.NotContains(t, out, "<script>")
}

func TestContainersNestChildren(t *testing.T) {
	t.Parallel()

	menu := view.Box(view.ClassMenu, view.Styled(view.ClassMenuFrame, "#--#"), view.Spacer())
	out := renderNode(t, menu)
	require.Equal(t,
		`<nav class="menu"><div class="text-block menu-frame">#--#</div><div class="text-block spacer">&nbsp;</div></nav>`,
		out)
}
