// Package sections keeps the active section of a scroll-snap page in step with
// the visitor's scroll position and resolves URL fragments to sections.
//
// Every section is laid out at exactly one viewport of height. The index
// formula in SectionIndex depends on that: a section taller or shorter than
// the viewport will drift the active index away from what is on screen.
package sections

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRegistry is returned when a registry is built with no sections.
var ErrEmptyRegistry = errors.New("sections: registry needs at least one section")

// Registry is the ordered, immutable list of section keys for one page.
// The position of a key is its index; indices run 0..Len()-1 with no gaps.
type Registry struct {
	keys  []string
	index map[string]int
}

// NewRegistry builds a registry from keys in display order.
func NewRegistry(keys ...string) (*Registry, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		keys:  make([]string, len(keys)),
		index: make(map[string]int, len(keys)),
	}
	for i, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("sections: empty key at position %d", i)
		}
		if _, dup := r.index[k]; dup {
			return nil, fmt.Errorf("sections: duplicate key %q", k)
		}
		r.keys[i] = k
		r.index[k] = i
	}
	return r, nil
}

// MustRegistry is NewRegistry for package-level page tables.
func MustRegistry(keys ...string) *Registry {
	r, err := NewRegistry(keys...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of sections.
func (r *Registry) Len() int { return len(r.keys) }

// Index looks up a key. Matching is exact and case-sensitive.
func (r *Registry) Index(key string) (int, bool) {
	i, ok := r.index[key]
	return i, ok
}

// Key returns the key at index i, or "" when i is out of range.
func (r *Registry) Key(i int) string {
	if i < 0 || i >= len(r.keys) {
		return ""
	}
	return r.keys[i]
}

// Keys returns a copy of the keys in display order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Fragment normalizes a raw URL fragment: a single leading '#' is dropped.
func Fragment(raw string) string {
	return strings.TrimPrefix(raw, "#")
}
