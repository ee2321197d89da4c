package view

// Event is a user interaction a host can deliver to a bound node.
type Event int

const (
	Click Event = iota
	Hover
)

func (e Event) String() string {
	switch e {
	case Click:
		return "click"
	case Hover:
		return "hover"
	default:
		return "unknown"
	}
}

// Sink receives rendered content. Clear drops every node and every binding.
type Sink interface {
	Clear()
	Append(n Node)
	// Replace swaps the node with the given id anywhere in the tree and
	// reports whether it was found.
	Replace(id string, n Node) bool
	// Bind registers fn for ev on the node id, replacing any previous
	// handler for the same pair.
	Bind(id string, ev Event, fn func())
}

// InputLine is the fake prompt input the typed-command animation writes to.
type InputLine interface {
	ResetInput()
	TypeRune(r rune)
}

// Mount is a single container the navigator attaches to.
type Mount interface {
	Sink
	InputLine
}

// Document resolves mount points by selector.
type Document interface {
	Query(selector string) (Mount, bool)
}
