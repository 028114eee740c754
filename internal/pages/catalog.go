// Package pages holds the site's page catalog and renders it to HTML.
//
// Every page is an ordered list of sections. Scroll-snap pages present one
// section per viewport and are driven by a sections.Controller over a live
// session; the registry for each page is built here from the section order.
package pages

import (
	"fmt"
	"strings"

	"github.com/cbcberry/berrysite/internal/sections"
)

// Section is one block of a page.
type Section struct {
	Key     string
	Eyebrow string
	// Heading may contain newlines, rendered as line breaks.
	Heading string
	// Body is markdown.
	Body  string
	Theme string
	// Partial names an extra template rendered after the body.
	Partial string
	// Links are call-to-action buttons.
	Links []Link
}

// Link is a call-to-action.
type Link struct {
	Label    string
	Href     string
	External bool
}

// Page is a routable page.
type Page struct {
	Path        string
	Title       string
	Description string
	Sections    []Section
	// Snap pages use the full-viewport scroll-snap layout.
	Snap bool
	// Intro pages show the splash overlay until the visitor engages.
	Intro bool

	registry *sections.Registry
}

// Registry returns the page's section registry.
func (p *Page) Registry() *sections.Registry { return p.registry }

// Catalog is the immutable set of pages.
type Catalog struct {
	pages  []*Page
	byPath map[string]*Page
}

// NewCatalog validates pages and builds their section registries.
func NewCatalog(pages ...*Page) (*Catalog, error) {
	c := &Catalog{byPath: make(map[string]*Page, len(pages))}
	for _, p := range pages {
		if !strings.HasPrefix(p.Path, "/") {
			return nil, fmt.Errorf("page %q: path must start with /", p.Path)
		}
		if _, dup := c.byPath[p.Path]; dup {
			return nil, fmt.Errorf("duplicate page path %q", p.Path)
		}
		keys := make([]string, len(p.Sections))
		for i, s := range p.Sections {
			keys[i] = s.Key
		}
		reg, err := sections.NewRegistry(keys...)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", p.Path, err)
		}
		p.registry = reg
		c.pages = append(c.pages, p)
		c.byPath[p.Path] = p
	}
	return c, nil
}

// Lookup finds the page for a request path. A trailing slash is ignored.
func (c *Catalog) Lookup(path string) (*Page, bool) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	p, ok := c.byPath[path]
	return p, ok
}

// Pages returns every page in catalog order.
func (c *Catalog) Pages() []*Page {
	return append([]*Page(nil), c.pages...)
}
