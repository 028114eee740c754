package intro

import (
	"sync"
	"time"
)

// ContentDelay is how long the host waits after an animated reveal before
// showing the page content.
const ContentDelay = 500 * time.Millisecond

// View is the home page surface the host drives.
type View interface {
	ShowContent()
	// ScrollToOrigin puts the scroll container back at offset zero.
	ScrollToOrigin()
}

// SectionResetter returns the page to its first section.
type SectionResetter interface {
	Reset()
}

// Host is the entry page's side of the reveal contract.
type Host struct {
	mu       sync.Mutex
	clock    Clock
	view     View
	sections SectionResetter
	visible  bool
	closed   bool
	pending  Timer
	done     chan struct{}
}

// NewHost creates a host. clock may be nil for the wall clock.
func NewHost(view View, sections SectionResetter, clock Clock) *Host {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Host{
		clock:    clock,
		view:     view,
		sections: sections,
		done:     make(chan struct{}),
	}
}

// Visible reports whether the content has been shown. Scroll tracking on the
// entry page only starts once this is true.
func (h *Host) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

// Handle reacts to one reveal signal.
func (h *Host) Handle(r Reveal) {
	if r.Immediate {
		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			return
		}
		if h.pending != nil {
			h.pending.Stop()
			h.pending = nil
		}
		h.visible = true
		h.mu.Unlock()

		h.view.ShowContent()
		if h.sections != nil {
			h.sections.Reset()
		}
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.pending != nil {
		return
	}
	h.pending = h.clock.AfterFunc(ContentDelay, h.showAfterReveal)
}

func (h *Host) showAfterReveal() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.pending = nil
	h.visible = true
	h.mu.Unlock()

	h.view.ShowContent()
	h.view.ScrollToOrigin()
}

// Listen consumes signals until the channel closes or Close is called.
// It returns a channel closed when the listener exits.
func (h *Host) Listen(signals <-chan Reveal) <-chan struct{} {
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			select {
			case r, ok := <-signals:
				if !ok {
					return
				}
				h.Handle(r)
			case <-h.done:
				return
			}
		}
	}()
	return exited
}

// Close cancels a pending delayed reveal and stops Listen.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
	close(h.done)
}
