// Package content loads the static portfolio text (banners, bodies, links)
// from a YAML catalog and serves it per screen.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jakobsever/termfolio/internal/screen"
	"github.com/jakobsever/termfolio/internal/view"
)

//go:embed portfolio.yaml
var defaultCatalog []byte

const birthdateLayout = "2006-01-02"

// columnRule opens every skills column.
const columnRule = "* * * * * *"

// Owner describes whose portfolio this is.
type Owner struct {
	Name   string
	Prompt string
}

// Link is an external destination shown in the menu.
type Link struct {
	Label string
	URL   string
}

// Catalog is a parsed content file. It implements navigator.Provider.
type Catalog struct {
	Version string
	Owner   Owner
	Links   []Link

	pages map[screen.ID]pageDoc
	now   func() time.Time
}

type catalogDoc struct {
	Version string             `yaml:"version"`
	Owner   ownerDoc           `yaml:"owner"`
	Links   []linkDoc          `yaml:"links"`
	Screens map[string]pageDoc `yaml:"screens"`
}

type ownerDoc struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
}

type linkDoc struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type pageDoc struct {
	Banner string       `yaml:"banner"`
	Body   []sectionDoc `yaml:"body"`
}

type sectionDoc struct {
	Text     string      `yaml:"text"`
	Class    string      `yaml:"class"`
	Markdown string      `yaml:"markdown"`
	Heading  string      `yaml:"heading"`
	Spacer   bool        `yaml:"spacer"`
	Rule     bool        `yaml:"rule"`
	Columns  []columnDoc `yaml:"columns"`
	Info     []infoDoc   `yaml:"info"`
}

type columnDoc struct {
	Groups []groupDoc `yaml:"groups"`
}

type groupDoc struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
}

type infoDoc struct {
	Key       string `yaml:"key"`
	Value     string `yaml:"value"`
	Birthdate string `yaml:"birthdate"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog. Every screen must be present.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := CheckVersion(doc.Version); err != nil {
		return nil, err
	}

	c := &Catalog{
		Version: doc.Version,
		Owner:   Owner{Name: doc.Owner.Name, Prompt: doc.Owner.Prompt},
		pages:   make(map[screen.ID]pageDoc, len(doc.Screens)),
		now:     time.Now,
	}
	for _, l := range doc.Links {
		if l.Label == "" || l.URL == "" {
			return nil, fmt.Errorf("link %+v: label and url are required", l)
		}
		c.Links = append(c.Links, Link{Label: l.Label, URL: l.URL})
	}
	names := make([]string, 0, len(doc.Screens))
	for name := range doc.Screens {
		names = append(names, name)
	}
	sort.Strings(names)
	seen := make(map[screen.ID]string, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("screen with empty name")
		}
		id, err := screen.Parse(name)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("screens %q and %q both name %s", prev, name, id.Slug())
		}
		seen[id] = name
		p := doc.Screens[name]
		for i, s := range p.Body {
			if err := s.validate(); err != nil {
				return nil, fmt.Errorf("screen %s section %d: %w", id.Slug(), i, err)
			}
		}
		c.pages[id] = p
	}
	for _, id := range screen.All {
		if _, ok := c.pages[id]; !ok {
			return nil, fmt.Errorf("screen %s missing from catalog", id.Slug())
		}
	}
	return c, nil
}

// SetClock overrides the time source used for computed fields such as age.
func (c *Catalog) SetClock(now func() time.Time) { c.now = now }

// Page builds the view for screen id.
func (c *Catalog) Page(id screen.ID) (view.Page, error) {
	p, ok := c.pages[id]
	if !ok {
		return view.Page{}, fmt.Errorf("no content for %s", id)
	}
	body := make([]view.Node, 0, len(p.Body))
	for _, s := range p.Body {
		n, err := c.node(s)
		if err != nil {
			return view.Page{}, fmt.Errorf("%s: %w", id.Slug(), err)
		}
		body = append(body, n)
	}
	return view.Page{Banner: strings.TrimRight(p.Banner, "\n"), Body: body}, nil
}

func (s sectionDoc) validate() error {
	set := 0
	for _, b := range []bool{
		s.Text != "", s.Markdown != "", s.Heading != "", s.Spacer, s.Rule,
		len(s.Columns) > 0, len(s.Info) > 0,
	} {
		if b {
			set++
		}
	}
	switch set {
	case 0:
		return errors.New("empty section")
	case 1:
		return nil
	default:
		return errors.New("section sets more than one kind")
	}
}

func (c *Catalog) node(s sectionDoc) (view.Node, error) {
	switch {
	case s.Spacer:
		return view.Spacer(), nil
	case s.Rule:
		return view.Styled(view.ClassRule, ""), nil
	case s.Heading != "":
		return view.Styled(view.ClassHeading, s.Heading), nil
	case s.Markdown != "":
		return view.Markdown(strings.TrimRight(s.Markdown, "\n")), nil
	case len(s.Columns) > 0:
		return columns(s.Columns), nil
	case len(s.Info) > 0:
		return c.info(s.Info)
	default:
		return view.Styled(s.Class, s.Text), nil
	}
}

func columns(cols []columnDoc) view.Node {
	out := make([]view.Node, 0, len(cols))
	for _, col := range cols {
		children := []view.Node{view.Styled(view.ClassMuted, columnRule)}
		for i, g := range col.Groups {
			if i > 0 {
				children = append(children, view.Spacer())
			}
			children = append(children,
				view.Styled(view.ClassHeading, g.Heading),
				view.Text(strings.Join(g.Items, "\n")),
			)
		}
		out = append(out, view.Box(view.ClassColumn, children...))
	}
	return view.Box(view.ClassColumns, out...)
}

func (c *Catalog) info(rows []infoDoc) (view.Node, error) {
	keys := make([]string, len(rows))
	vals := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
		vals[i] = r.Value
		if r.Birthdate != "" {
			born, err := time.Parse(birthdateLayout, r.Birthdate)
			if err != nil {
				return view.Node{}, fmt.Errorf("info %q: %w", r.Key, err)
			}
			vals[i] = strconv.Itoa(Age(born, c.now()))
		}
	}
	return view.Box(view.ClassInfo,
		view.Text(strings.Join(keys, "\n")),
		view.Text(strings.Join(vals, "\n")),
	), nil
}

// Age is the number of whole years between born and now.
func Age(born, now time.Time) int {
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}
