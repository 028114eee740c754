// Package intro runs the one-time splash shown on fresh entry to the home page.
//
// The sequence is hold -> revealing -> fading-out -> done. A visitor arriving
// through history navigation skips straight to done. Completion is announced
// on a typed Reveal channel that the home page host consumes.
package intro

import (
	"sync"
	"time"
)

// Phase is a step of the intro sequence.
type Phase string

const (
	PhaseHold      Phase = "hold"
	PhaseRevealing Phase = "revealing"
	PhaseFadingOut Phase = "fading-out"
	PhaseDone      Phase = "done"
)

// Sequence timings, measured from the moment revealing begins.
const (
	FadeOutAfter = 1000 * time.Millisecond
	DoneAfter    = 2500 * time.Millisecond
)

// DefaultSkipWindow is how recent a recorded visit must be to count as a
// return through history.
const DefaultSkipWindow = 30 * time.Second

// NavigationType mirrors the browser's navigation timing type.
type NavigationType string

const (
	NavigateFresh       NavigationType = "navigate"
	NavigateReload      NavigationType = "reload"
	NavigateBackForward NavigationType = "back_forward"
)

// NavigationHints are the signals available when the page mounts.
type NavigationHints struct {
	Type      NavigationType
	LastVisit time.Time // zero when no visit was recorded
}

// Reveal is sent to the host when the content should become visible.
// Immediate is true on the skip path: show content with no animation.
type Reveal struct {
	Immediate bool `json:"immediate"`
}

// InputKind classifies a user input event.
type InputKind string

const (
	InputWheel InputKind = "wheel"
	InputTouch InputKind = "touchstart"
	InputKey   InputKind = "keydown"
)

// Input is a user gesture that may start the reveal.
type Input struct {
	Kind   InputKind
	DeltaY float64
	Key    string
}

// Qualifies reports whether the input starts the reveal: a downward wheel,
// any touch start, or one of ArrowDown, Space, Enter.
func (in Input) Qualifies() bool {
	switch in.Kind {
	case InputWheel:
		return in.DeltaY > 0
	case InputTouch:
		return true
	case InputKey:
		return in.Key == "ArrowDown" || in.Key == " " || in.Key == "Enter"
	}
	return false
}

// VisitRecorder persists the reveal timestamp for later skip detection.
type VisitRecorder interface {
	RecordVisit(at time.Time)
}

// PhaseFunc observes phase changes.
type PhaseFunc func(Phase)

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option { return func(s *Sequencer) { s.clock = c } }

// WithSkipWindow changes the recent-visit window.
func WithSkipWindow(d time.Duration) Option { return func(s *Sequencer) { s.skipWindow = d } }

// WithVisitRecorder sets where reveal timestamps are recorded.
func WithVisitRecorder(r VisitRecorder) Option { return func(s *Sequencer) { s.visits = r } }

// WithOnPhase registers a phase observer. It is called outside the lock.
func WithOnPhase(fn PhaseFunc) Option { return func(s *Sequencer) { s.onPhase = fn } }

// Sequencer is the intro state machine. It is the only writer of its phase.
type Sequencer struct {
	mu         sync.Mutex
	clock      Clock
	skipWindow time.Duration
	visits     VisitRecorder
	onPhase    PhaseFunc

	phase   Phase
	skipped bool
	closed  bool
	timers  []Timer
	signals chan Reveal
}

// New creates a sequencer in the hold phase.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		clock:      SystemClock{},
		skipWindow: DefaultSkipWindow,
		phase:      PhaseHold,
		// At most two reveals are ever sent: the animated one and a later
		// restore-from-cache skip.
		signals: make(chan Reveal, 2),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Signals is the single-subscriber reveal channel. It is closed by Close.
func (s *Sequencer) Signals() <-chan Reveal { return s.signals }

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Skipped reports whether the sequence was short-circuited.
func (s *Sequencer) Skipped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped
}

// ShouldSkip applies the history heuristics: any one signal is enough.
func ShouldSkip(h NavigationHints, now time.Time, window time.Duration) bool {
	if h.Type == NavigateBackForward {
		return true
	}
	if !h.LastVisit.IsZero() && now.Sub(h.LastVisit) < window {
		return true
	}
	return false
}

// Mount evaluates the navigation hints. On a history return the sequence is
// finished immediately and an immediate Reveal is sent before Mount returns.
func (s *Sequencer) Mount(h NavigationHints) Phase {
	if ShouldSkip(h, s.clock.Now(), s.skipWindow) {
		s.skip()
	}
	return s.Phase()
}

// PageShow handles a page show event. A page restored from the back/forward
// cache skips whatever remains of the sequence.
func (s *Sequencer) PageShow(persisted bool) {
	if persisted {
		s.skip()
	}
}

// HandleInput starts the reveal on the first qualifying input while holding.
// Everything else is ignored.
func (s *Sequencer) HandleInput(in Input) bool {
	if !in.Qualifies() {
		return false
	}

	s.mu.Lock()
	if s.closed || s.phase != PhaseHold {
		s.mu.Unlock()
		return false
	}
	now := s.clock.Now()
	s.phase = PhaseRevealing
	s.timers = append(s.timers,
		s.clock.AfterFunc(FadeOutAfter, func() { s.advance(PhaseRevealing, PhaseFadingOut) }),
		s.clock.AfterFunc(DoneAfter, func() { s.advance(PhaseFadingOut, PhaseDone) }),
	)
	s.emitLocked(Reveal{Immediate: false})
	visits := s.visits
	s.mu.Unlock()

	if visits != nil {
		visits.RecordVisit(now)
	}
	s.notify(PhaseRevealing)
	return true
}

// Close cancels pending timers and closes the signal channel.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.stopTimersLocked()
	close(s.signals)
}

func (s *Sequencer) skip() {
	s.mu.Lock()
	if s.closed || s.phase == PhaseDone {
		s.mu.Unlock()
		return
	}
	s.stopTimersLocked()
	s.phase = PhaseDone
	s.skipped = true
	s.emitLocked(Reveal{Immediate: true})
	s.mu.Unlock()

	s.notify(PhaseDone)
}

func (s *Sequencer) advance(from, to Phase) {
	s.mu.Lock()
	if s.closed || s.phase != from {
		s.mu.Unlock()
		return
	}
	s.phase = to
	s.mu.Unlock()

	s.notify(to)
}

func (s *Sequencer) emitLocked(r Reveal) {
	select {
	case s.signals <- r:
	default:
	}
}

func (s *Sequencer) stopTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func (s *Sequencer) notify(p Phase) {
	if s.onPhase != nil {
		s.onPhase(p)
	}
}
