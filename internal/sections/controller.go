package sections

import (
	"math"
	"sync"
)

// Scroller is the scroll container a Controller drives.
type Scroller interface {
	// ScrollToTop jumps, without animation, so that section index sits at the
	// top of the container. It reports false when the section is not present.
	ScrollToTop(index int) bool
}

// ChangeFunc is called after the active index changes.
type ChangeFunc func(index int)

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers the listener notified on every active index change.
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller owns the active section index of one page. It is the only
// writer of that index.
type Controller struct {
	notifyMu sync.Mutex // held across a change and its listener call
	mu       sync.Mutex
	registry *Registry
	scroller Scroller
	onChange ChangeFunc

	active   int
	ready    bool
	jumpedTo int // last index passed to the scroller, -1 before the first jump
}

// NewController creates a controller for a page's registry. scroller may be
// nil, in which case ScrollToSection only records intent.
func NewController(registry *Registry, scroller Scroller, opts ...Option) *Controller {
	c := &Controller{
		registry: registry,
		scroller: scroller,
		jumpedTo: -1,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Registry returns the section registry the controller was built with.
func (c *Controller) Registry() *Registry { return c.registry }

// Active returns the current active index.
func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Ready reports whether MarkReady has been called.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// ResolveInitialSection maps a URL fragment to a section index and adopts it
// as the active index. Unknown or empty fragments are ignored and leave the
// active index untouched.
func (c *Controller) ResolveInitialSection(fragment string) (int, bool) {
	idx, ok := c.registry.Index(Fragment(fragment))
	if !ok {
		return 0, false
	}
	c.setActive(idx)
	return idx, true
}

// MarkReady opens the gate for programmatic scrolling. Only the first call
// has an effect; it reports whether this call was that one.
func (c *Controller) MarkReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return false
	}
	c.ready = true
	return true
}

// ScrollToSection jumps the container to index. It does nothing before
// MarkReady, for an index already jumped to, or when the target is missing.
func (c *Controller) ScrollToSection(index int) bool {
	c.mu.Lock()
	if !c.ready || index == c.jumpedTo || c.registry.Key(index) == "" {
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	if c.scroller != nil && !c.scroller.ScrollToTop(index) {
		return false
	}

	c.mu.Lock()
	c.jumpedTo = index
	c.mu.Unlock()
	return true
}

// Mount runs the page-load sequence: resolve the fragment, mark ready, then
// jump once if a non-default section was requested.
func (c *Controller) Mount(fragment string) int {
	idx, ok := c.ResolveInitialSection(fragment)
	c.MarkReady()
	if ok && idx != 0 {
		c.ScrollToSection(idx)
	}
	return c.Active()
}

// OnScroll samples the container position and returns the resulting active
// index, clamped to the registry. The listener fires only when the index
// actually changes.
func (c *Controller) OnScroll(scrollTop, viewportHeight float64) int {
	if viewportHeight <= 0 || c.registry.Len() == 0 {
		return c.Active()
	}
	idx := SectionIndex(scrollTop, viewportHeight)
	c.setActive(min(max(idx, 0), c.registry.Len()-1))
	return c.Active()
}

// Reset returns the page to its first section.
func (c *Controller) Reset() {
	c.setActive(0)
}

// setActive serializes writers so the listener sees changes in the order
// they were applied. The listener must not call back into the controller's
// setters.
func (c *Controller) setActive(idx int) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if idx == c.active {
		c.mu.Unlock()
		return
	}
	c.active = idx
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(idx)
	}
}

// SectionIndex converts a scroll offset into a section index assuming every
// section is exactly viewportHeight tall.
func SectionIndex(scrollTop, viewportHeight float64) int {
	if viewportHeight <= 0 {
		return 0
	}
	return int(math.Round(scrollTop / viewportHeight))
}
