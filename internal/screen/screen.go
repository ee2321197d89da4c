// Package screen enumerates the views the terminal can show.
package screen

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ID is the active screen identifier.
type ID int

const (
	Home ID = iota
	Skills
	About
	Projects
	CV
)

// All lists every screen in display order.
var All = []ID{Home, Skills, About, Projects, CV}

var labels = map[ID]string{
	Home:     "Home",
	Skills:   "Skills",
	About:    "About",
	Projects: "Projects",
	CV:       "CV",
}

// String returns the label shown in the menu and typed after "cd ./".
func (id ID) String() string {
	if l, ok := labels[id]; ok {
		return l
	}
	return fmt.Sprintf("screen(%d)", int(id))
}

// Slug is the lower-case form used in URLs and on the command line.
func (id ID) Slug() string {
	return strings.ToLower(id.String())
}

// Valid reports whether id is one of the known screens.
func (id ID) Valid() bool {
	_, ok := labels[id]
	return ok
}

// UnknownError is returned by Parse for a name that matches no screen.
type UnknownError struct {
	Name       string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown screen %q, did you mean %q?", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown screen %q", e.Name)
}

// maxSuggestDistance bounds how far off a name may be before no suggestion is offered.
const maxSuggestDistance = 3

// Parse resolves a screen name case-insensitively. An empty name means Home.
func Parse(name string) (ID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Home, nil
	}
	n = strings.TrimPrefix(n, "./")
	for _, id := range All {
		if id.Slug() == n {
			return id, nil
		}
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, id := range All {
		if d := levenshtein.ComputeDistance(n, id.Slug()); d < bestDist {
			best, bestDist = id.Slug(), d
		}
	}
	return Home, &UnknownError{Name: name, Suggestion: best}
}
