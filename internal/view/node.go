// Package view defines the virtual UI tree the navigator writes and the
// capabilities a rendering host must provide. Hosts (the terminal UI and the
// web snapshot server) turn the tree into real output.
package view

// Kind discriminates the node variants.
type Kind int

const (
	KindText Kind = iota
	KindMarkdown
	KindContainer
	KindMenuItem
	KindBack
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMarkdown:
		return "markdown"
	case KindContainer:
		return "container"
	case KindMenuItem:
		return "menu-item"
	case KindBack:
		return "back"
	default:
		return "unknown"
	}
}

// Style hints carried in Node.Class. Hosts map them onto their own styling.
const (
	ClassBanner    = "banner"
	ClassHeading   = "heading"
	ClassCenter    = "center"
	ClassMuted     = "muted"
	ClassAccent    = "accent"
	ClassColumns   = "columns"
	ClassColumn    = "column"
	ClassInfo      = "info"
	ClassMenu      = "menu"
	ClassMenuFrame = "menu-frame"
	ClassSpacer    = "spacer"
	ClassRule      = "rule"
	ClassPre       = "pre" // preformatted art, never wrapped
)

// Node is one element of the virtual tree.
type Node struct {
	Kind     Kind
	ID       string // set on interactive nodes and on containers that hold them
	Class    string
	Text     string
	Href     string // destination for hosts that render links
	Selected bool   // menu items only
	Children []Node
}

// Text returns a plain text node. Embedded newlines are preserved.
func Text(s string) Node { return Node{Kind: KindText, Text: s} }

// Styled returns a text node with a style hint.
func Styled(class, s string) Node { return Node{Kind: KindText, Class: class, Text: s} }

// Spacer is an empty line.
func Spacer() Node { return Node{Kind: KindText, Class: ClassSpacer} }

// Markdown returns a node whose text is markdown source.
func Markdown(src string) Node { return Node{Kind: KindMarkdown, Text: src} }

// Box groups children under a class.
func Box(class string, children ...Node) Node {
	return Node{Kind: KindContainer, Class: class, Children: children}
}

// MenuItem returns an interactive menu entry node.
func MenuItem(id, label, href string, selected bool) Node {
	return Node{Kind: KindMenuItem, ID: id, Text: label, Href: href, Selected: selected}
}

// Back returns the back control.
func Back(id, label, href string) Node {
	return Node{Kind: KindBack, ID: id, Text: label, Href: href}
}

// Interactive reports whether hosts should route events to the node.
func (n Node) Interactive() bool {
	return n.Kind == KindMenuItem || n.Kind == KindBack
}

// Walk visits n and its descendants depth first until fn returns false.
func (n Node) Walk(fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Page is the static content supplied for one screen.
type Page struct {
	Banner string
	Body   []Node
}
