package intro

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type phaseLog struct {
	mu     sync.Mutex
	phases []Phase
}

func (l *phaseLog) record(p Phase) {
	l.mu.Lock()
	l.phases = append(l.phases, p)
	l.mu.Unlock()
}

func (l *phaseLog) all() []Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Phase(nil), l.phases...)
}

func newTestSequencer(t *testing.T) (*Sequencer, *ManualClock, *phaseLog) {
	t.Helper()
	clock := NewManualClock(epoch)
	log := &phaseLog{}
	s := New(WithClock(clock), WithOnPhase(log.record))
	t.Cleanup(s.Close)
	return s, clock, log
}

func drain(ch <-chan Reveal) []Reveal {
	var out []Reveal
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, r)
		default:
			return out
		}
	}
}

func TestInputQualifies(t *testing.T) {
	tests := []struct {
		in   Input
		want bool
	}{
		{Input{Kind: InputWheel, DeltaY: 12}, true},
		{Input{Kind: InputWheel, DeltaY: -12}, false},
		{Input{Kind: InputWheel}, false},
		{Input{Kind: InputTouch}, true},
		{Input{Kind: InputKey, Key: "ArrowDown"}, true},
		{Input{Kind: InputKey, Key: " "}, true},
		{Input{Kind: InputKey, Key: "Enter"}, true},
		{Input{Kind: InputKey, Key: "ArrowUp"}, false},
		{Input{Kind: "click"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Qualifies(), "%+v", tt.in)
	}
}

func TestRevealHappensOnce(t *testing.T) {
	s, _, log := newTestSequencer(t)
	s.Mount(NavigationHints{Type: NavigateFresh})
	require.Equal(t, PhaseHold, s.Phase())

	assert.True(t, s.HandleInput(Input{Kind: InputTouch}))
	assert.False(t, s.HandleInput(Input{Kind: InputTouch}))
	assert.False(t, s.HandleInput(Input{Kind: InputKey, Key: "Enter"}))

	assert.Equal(t, PhaseRevealing, s.Phase())
	assert.Equal(t, []Reveal{{Immediate: false}}, drain(s.Signals()))
	assert.Equal(t, []Phase{PhaseRevealing}, log.all())
}

func TestNonQualifyingInputKeepsHolding(t *testing.T) {
	s, _, _ := newTestSequencer(t)
	s.Mount(NavigationHints{})

	assert.False(t, s.HandleInput(Input{Kind: InputWheel, DeltaY: -40}))
	assert.Equal(t, PhaseHold, s.Phase())
	assert.Empty(t, drain(s.Signals()))
}

func TestRevealTiming(t *testing.T) {
	s, clock, log := newTestSequencer(t)
	s.Mount(NavigationHints{})
	s.HandleInput(Input{Kind: InputWheel, DeltaY: 3})

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, PhaseRevealing, s.Phase())

	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, PhaseFadingOut, s.Phase())

	clock.Advance(1499 * time.Millisecond)
	assert.Equal(t, PhaseFadingOut, s.Phase())

	clock.Advance(1 * time.Millisecond)
	assert.Equal(t, PhaseDone, s.Phase())
	assert.False(t, s.Skipped())

	assert.Equal(t, []Phase{PhaseRevealing, PhaseFadingOut, PhaseDone}, log.all())
	assert.Equal(t, 0, clock.Pending())
}

func TestRevealRecordsVisit(t *testing.T) {
	clock := NewManualClock(epoch)
	visits := &MemoryVisits{}
	s := New(WithClock(clock), WithVisitRecorder(visits))
	defer s.Close()

	s.HandleInput(Input{Kind: InputKey, Key: " "})
	assert.Equal(t, epoch, visits.LastVisit())
}

func TestSkipOnBackForward(t *testing.T) {
	s, clock, log := newTestSequencer(t)

	got := s.Mount(NavigationHints{Type: NavigateBackForward})
	assert.Equal(t, PhaseDone, got)
	assert.True(t, s.Skipped())
	// Emitted synchronously, before any timer exists.
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, []Reveal{{Immediate: true}}, drain(s.Signals()))
	assert.Equal(t, []Phase{PhaseDone}, log.all())

	assert.False(t, s.HandleInput(Input{Kind: InputTouch}))
}

func TestSkipOnRecentVisit(t *testing.T) {
	s, _, _ := newTestSequencer(t)
	s.Mount(NavigationHints{Type: NavigateFresh, LastVisit: epoch.Add(-29 * time.Second)})
	assert.Equal(t, PhaseDone, s.Phase())
	assert.Equal(t, []Reveal{{Immediate: true}}, drain(s.Signals()))
}

func TestStaleVisitDoesNotSkip(t *testing.T) {
	s, _, _ := newTestSequencer(t)
	s.Mount(NavigationHints{Type: NavigateReload, LastVisit: epoch.Add(-31 * time.Second)})
	assert.Equal(t, PhaseHold, s.Phase())
	assert.Empty(t, drain(s.Signals()))
}

func TestCustomSkipWindow(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(WithClock(clock), WithSkipWindow(5*time.Second))
	defer s.Close()

	s.Mount(NavigationHints{LastVisit: epoch.Add(-10 * time.Second)})
	assert.Equal(t, PhaseHold, s.Phase())
}

func TestPageShowPersistedSkipsMidReveal(t *testing.T) {
	s, clock, _ := newTestSequencer(t)
	s.Mount(NavigationHints{})
	s.HandleInput(Input{Kind: InputTouch})
	clock.Advance(200 * time.Millisecond)

	s.PageShow(true)
	assert.Equal(t, PhaseDone, s.Phase())
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, []Reveal{{Immediate: false}, {Immediate: true}}, drain(s.Signals()))
}

func TestPageShowNotPersistedIgnored(t *testing.T) {
	s, _, _ := newTestSequencer(t)
	s.PageShow(false)
	assert.Equal(t, PhaseHold, s.Phase())
}

func TestCloseCancelsTimers(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(WithClock(clock))
	s.HandleInput(Input{Kind: InputTouch})
	require.Equal(t, 2, clock.Pending())

	s.Close()
	s.Close()
	assert.Equal(t, 0, clock.Pending())
	clock.Advance(5 * time.Second)
	assert.Equal(t, PhaseRevealing, s.Phase())

	_, ok := <-s.Signals()
	assert.True(t, ok, "buffered reveal survives close")
	_, ok = <-s.Signals()
	assert.False(t, ok)
}

func TestSystemClockCloseLeavesNoGoroutines(t *testing.T) {
	s := New()
	s.HandleInput(Input{Kind: InputTouch})
	s.Close()
	assert.Equal(t, PhaseRevealing, s.Phase())
}

// --- Host ---

type fakeView struct {
	mu       sync.Mutex
	shown    int
	scrolled int
}

func (v *fakeView) ShowContent() {
	v.mu.Lock()
	v.shown++
	v.mu.Unlock()
}

func (v *fakeView) ScrollToOrigin() {
	v.mu.Lock()
	v.scrolled++
	v.mu.Unlock()
}

func (v *fakeView) counts() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.shown, v.scrolled
}

type fakeSections struct {
	mu     sync.Mutex
	resets int
}

func (f *fakeSections) Reset() {
	f.mu.Lock()
	f.resets++
	f.mu.Unlock()
}

func (f *fakeSections) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resets
}

func TestHostAnimatedRevealWaits(t *testing.T) {
	clock := NewManualClock(epoch)
	view := &fakeView{}
	secs := &fakeSections{}
	h := NewHost(view, secs, clock)
	defer h.Close()

	h.Handle(Reveal{Immediate: false})
	assert.False(t, h.Visible())

	clock.Advance(499 * time.Millisecond)
	assert.False(t, h.Visible())

	clock.Advance(1 * time.Millisecond)
	assert.True(t, h.Visible())
	shown, scrolled := view.counts()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, scrolled)
	assert.Equal(t, 0, secs.count())
}

func TestHostImmediateReveal(t *testing.T) {
	clock := NewManualClock(epoch)
	view := &fakeView{}
	secs := &fakeSections{}
	h := NewHost(view, secs, clock)
	defer h.Close()

	h.Handle(Reveal{Immediate: true})
	assert.True(t, h.Visible())
	assert.Equal(t, 1, secs.count())
	assert.Equal(t, 0, clock.Pending())
}

func TestHostImmediateCancelsPendingDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	view := &fakeView{}
	h := NewHost(view, &fakeSections{}, clock)
	defer h.Close()

	h.Handle(Reveal{})
	h.Handle(Reveal{Immediate: true})
	clock.Advance(time.Second)

	shown, scrolled := view.counts()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 0, scrolled)
}

func TestHostCloseCancelsDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	view := &fakeView{}
	h := NewHost(view, nil, clock)

	h.Handle(Reveal{})
	h.Close()
	clock.Advance(time.Second)

	assert.False(t, h.Visible())
	assert.Equal(t, 0, clock.Pending())
}

func TestHostListensToSequencer(t *testing.T) {
	clock := NewManualClock(epoch)
	view := &fakeView{}
	secs := &fakeSections{}
	s := New(WithClock(clock))
	h := NewHost(view, secs, clock)

	exited := h.Listen(s.Signals())
	s.Mount(NavigationHints{Type: NavigateBackForward})

	assert.Eventually(t, h.Visible, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, secs.count())

	s.Close()
	h.Close()
	<-exited
}
