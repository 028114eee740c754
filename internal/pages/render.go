package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/cbcberry/berrysite/internal/content"
)

// FeaturedCount is how many cultivars the home page features.
const FeaturedCount = 4

// Nav is the primary navigation.
var Nav = []Link{
	{Label: "Cultivars", Href: content.ExplorerURL, External: true},
	{Label: "Breeding", Href: "/breeding"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}

// Renderer turns catalog pages into HTML documents.
type Renderer struct {
	catalog  *Catalog
	tmpl     *template.Template
	bodies   map[string]template.HTML
	baseURL  string
	featured func(n int) []content.Cultivar
	now      func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBaseURL sets the absolute origin used for canonical links.
func WithBaseURL(u string) Option {
	return func(r *Renderer) { r.baseURL = strings.TrimSuffix(u, "/") }
}

// WithFeatured overrides how featured cultivars are picked.
func WithFeatured(fn func(n int) []content.Cultivar) Option {
	return func(r *Renderer) { r.featured = fn }
}

// NewRenderer parses the layout and converts every section body from
// markdown once.
func NewRenderer(catalog *Catalog, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		catalog:  catalog,
		bodies:   make(map[string]template.HTML),
		featured: content.RandomCultivars,
		now:      time.Now,
	}
	for _, o := range opts {
		o(r)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	for _, p := range catalog.Pages() {
		for _, s := range p.Sections {
			if s.Body == "" {
				continue
			}
			var buf bytes.Buffer
			if err := md.Convert([]byte(s.Body), &buf); err != nil {
				return nil, fmt.Errorf("converting %s#%s: %w", p.Path, s.Key, err)
			}
			r.bodies[bodyKey(p.Path, s.Key)] = template.HTML(buf.String())
		}
	}

	funcs := template.FuncMap{
		"lines":   func(s string) []string { return strings.Split(s, "\n") },
		"partial": r.partial,
	}
	tmpl, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := tmpl.Parse(partialTemplates); err != nil {
		return nil, fmt.Errorf("parsing partial templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Catalog returns the catalog being rendered.
func (r *Renderer) Catalog() *Catalog { return r.catalog }

// sectionView is a section prepared for the template.
type sectionView struct {
	Section
	Index int
	Body  template.HTML
}

type pageData struct {
	Page      *Page
	Sections  []sectionView
	Canonical string
	Nav       []Link
	Tagline   string
	Company   string
	Year      int

	Featured        []content.Cultivar
	JobGroups       []content.JobGroup
	Locations       []content.Location
	Positions       []string
	Nurseries       []content.Nursery
	CanadaNurseries []content.Nursery
	Licensees       []content.Licensee
	Partners        []content.Partner
}

// Render writes the full HTML document for p.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	data := pageData{
		Page:            p,
		Canonical:       r.baseURL + p.Path,
		Nav:             Nav,
		Tagline:         content.PrimaryTagline,
		Company:         content.CompanyName,
		Year:            r.now().Year(),
		JobGroups:       content.GroupByCategory(content.Openings),
		Locations:       content.Locations,
		Positions:       content.PositionChoices(),
		Nurseries:       content.USANurseries,
		CanadaNurseries: content.CanadaNurseries,
		Licensees:       content.InternationalLicensees,
		Partners:        content.Partners,
	}
	if p.Intro {
		data.Featured = r.featured(FeaturedCount)
	}
	for i, s := range p.Sections {
		data.Sections = append(data.Sections, sectionView{
			Section: s,
			Index:   i,
			Body:    r.bodies[bodyKey(p.Path, s.Key)],
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", p.Path, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) partial(name string, data pageData) (template.HTML, error) {
	if name == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "partial-"+name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func bodyKey(path, key string) string { return path + "#" + key }
