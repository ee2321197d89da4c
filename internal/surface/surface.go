// Package surface is an in-memory rendering target: it retains the virtual
// tree written by the navigator, the event bindings it requested and the
// prompt input. Hosts read it back to draw and route events into it.
package surface

import (
	"github.com/jakobsever/termfolio/internal/view"
)

type key struct {
	id string
	ev view.Event
}

// Mount is one retained container.
type Mount struct {
	nodes    []view.Node
	handlers map[key]func()
	input    []rune
	renders  int
}

// NewMount returns an empty mount.
func NewMount() *Mount {
	return &Mount{handlers: map[key]func(){}}
}

// Clear drops all content and all bindings.
func (m *Mount) Clear() {
	m.nodes = nil
	m.handlers = map[key]func(){}
	m.renders++
}

func (m *Mount) Append(n view.Node) { m.nodes = append(m.nodes, n) }

func (m *Mount) Replace(id string, n view.Node) bool {
	if id == "" {
		return false
	}
	return replaceIn(m.nodes, id, n)
}

func replaceIn(nodes []view.Node, id string, n view.Node) bool {
	for i := range nodes {
		if nodes[i].ID == id {
			nodes[i] = n
			return true
		}
		if replaceIn(nodes[i].Children, id, n) {
			return true
		}
	}
	return false
}

func (m *Mount) Bind(id string, ev view.Event, fn func()) {
	m.handlers[key{id, ev}] = fn
}

// Dispatch delivers ev to the handler bound on id and reports whether one existed.
func (m *Mount) Dispatch(id string, ev view.Event) bool {
	fn, ok := m.handlers[key{id, ev}]
	if !ok {
		return false
	}
	fn()
	return true
}

// Bindings is the number of live handlers.
func (m *Mount) Bindings() int { return len(m.handlers) }

// Renders counts how many times the mount has been cleared.
func (m *Mount) Renders() int { return m.renders }

// Nodes returns a copy of the top-level nodes.
func (m *Mount) Nodes() []view.Node {
	out := make([]view.Node, len(m.nodes))
	copy(out, m.nodes)
	return out
}

// Find returns the first node with the given id.
func (m *Mount) Find(id string) (view.Node, bool) {
	var found view.Node
	ok := false
	for _, n := range m.nodes {
		n.Walk(func(c view.Node) bool {
			if c.ID == id {
				found, ok = c, true
				return false
			}
			return true
		})
		if ok {
			break
		}
	}
	return found, ok
}

func (m *Mount) ResetInput()     { m.input = m.input[:0] }
func (m *Mount) TypeRune(r rune) { m.input = append(m.input, r) }

// Input is the text currently on the prompt.
func (m *Mount) Input() string { return string(m.input) }

// Document is a set of mounts addressable by selector.
type Document struct {
	mounts map[string]*Mount
}

// NewDocument creates a document with one empty mount per selector.
func NewDocument(selectors ...string) *Document {
	d := &Document{mounts: make(map[string]*Mount, len(selectors))}
	for _, s := range selectors {
		d.mounts[s] = NewMount()
	}
	return d
}

// Query implements view.Document.
func (d *Document) Query(selector string) (view.Mount, bool) {
	m, ok := d.mounts[selector]
	if !ok {
		return nil, false
	}
	return m, true
}

// Mount returns the concrete mount for selector, or nil.
func (d *Document) Mount(selector string) *Mount { return d.mounts[selector] }
