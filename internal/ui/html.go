package ui

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlRenderer holds the template helpers the node partial needs.
type htmlRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newHTMLRenderer() *htmlRenderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return &htmlRenderer{md: goldmark.New(), policy: policy}
}

func (r *htmlRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.markdown,
		"external": external,
	}
}

// markdown converts src and sanitizes the result before it is trusted as HTML.
func (r *htmlRenderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

func external(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
