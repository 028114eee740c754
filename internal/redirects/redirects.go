// Package redirects maps retired site paths to their replacements before the
// request reaches page routing.
package redirects

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule sends requests for Source to Destination. Source is a path or a
// doublestar glob such as /breeding-program/cultivars/*.
type Rule struct {
	Source      string `yaml:"source" koanf:"source" json:"source"`
	Destination string `yaml:"destination" koanf:"destination" json:"destination"`
	Permanent   bool   `yaml:"permanent" koanf:"permanent" json:"permanent"`
}

// Status returns 308 for permanent rules and 307 otherwise.
func (r Rule) Status() int {
	if r.Permanent {
		return http.StatusPermanentRedirect
	}
	return http.StatusTemporaryRedirect
}

// Validate checks that the rule is well formed.
func (r Rule) Validate() error {
	if !strings.HasPrefix(r.Source, "/") {
		return fmt.Errorf("redirect source %q must start with /", r.Source)
	}
	if !doublestar.ValidatePattern(r.Source) {
		return fmt.Errorf("redirect source %q is not a valid pattern", r.Source)
	}
	if r.Destination == "" {
		return fmt.Errorf("redirect %q has no destination", r.Source)
	}
	return nil
}

// Defaults are the legacy WordPress paths still linked from elsewhere.
var Defaults = []Rule{
	{Source: "/breeding-program/cultivars", Destination: "https://cultivars.cbcberry.com", Permanent: true},
	{Source: "/breeding-program/cultivars/*", Destination: "https://cultivars.cbcberry.com", Permanent: true},
	{Source: "/breeding-program", Destination: "/breeding", Permanent: true},
	{Source: "/about-us", Destination: "/about", Permanent: true},
	{Source: "/contact-us", Destination: "/contact", Permanent: true},
}

// Table resolves request paths against an ordered rule list. The first
// matching rule wins.
type Table struct {
	rules []Rule
}

// NewTable validates rules and builds a table.
func NewTable(rules []Rule) (*Table, error) {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	t := &Table{rules: make([]Rule, len(rules))}
	copy(t.rules, rules)
	return t, nil
}

// Rules returns the table's rules in match order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Match returns the rule for path, if any. A trailing slash is ignored.
func (t *Table) Match(path string) (Rule, bool) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range t.rules {
		if r.Source == path {
			return r, true
		}
		if ok, err := doublestar.Match(r.Source, path); err == nil && ok {
			return r, true
		}
	}
	return Rule{}, false
}

// Middleware redirects matching GET and HEAD requests and passes everything
// else through. The query string is carried over for same-site targets.
func (t *Table) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		rule, ok := t.Match(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		dest := rule.Destination
		if strings.HasPrefix(dest, "/") && r.URL.RawQuery != "" {
			dest += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, dest, rule.Status())
	})
}
