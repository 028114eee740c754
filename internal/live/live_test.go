package live

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cbcberry/berrysite/internal/intro"
	"github.com/cbcberry/berrysite/internal/pages"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type received struct {
	Type      string      `json:"type"`
	Index     int         `json:"index"`
	Key       string      `json:"key"`
	Phase     intro.Phase `json:"phase"`
	Immediate bool        `json:"immediate"`
	AtMs      int64       `json:"at_ms"`
	Message   string      `json:"message"`
}

type harness struct {
	t       *testing.T
	clock   *intro.ManualClock
	handler *Handler
	server  *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := intro.NewManualClock(epoch)
	h := NewHandler(pages.DefaultCatalog(), WithClock(clock))
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		assert.NoError(t, h.Shutdown(ctx))
		srv.Close()
	})
	return &harness{t: t, clock: clock, handler: h, server: srv}
}

func (h *harness) dial() *websocket.Conn {
	h.t.Helper()
	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(h.t, err)
	h.t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg map[string]any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func next(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg received
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// collect reads n messages. Messages from the intro timers and the reveal
// forwarder may interleave, so callers check membership rather than order.
func collect(t *testing.T, conn *websocket.Conn, n int) []received {
	t.Helper()
	got := make([]received, 0, n)
	for i := 0; i < n; i++ {
		got = append(got, next(t, conn))
	}
	return got
}

func TestDeepLinkActivatesSectionWithoutFlash(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/breeding", "fragment": "pathology"})

	first := next(t, conn)
	assert.Equal(t, received{Type: "active", Index: 2}, first)

	second := next(t, conn)
	assert.Equal(t, "scroll_to", second.Type)
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, "pathology", second.Key)
}

func TestMountDefaultsToFirstSection(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/about/", "fragment": "Team"})
	assert.Equal(t, received{Type: "active", Index: 0}, next(t, conn))

	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 1850, "viewport_height": 900})
	assert.Equal(t, received{Type: "active", Index: 2}, next(t, conn))

	// Same index: no message. The following change is the next one read.
	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 1790, "viewport_height": 900})
	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 0, "viewport_height": 0})
	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 4500, "viewport_height": 900})
	assert.Equal(t, received{Type: "active", Index: 5}, next(t, conn))
}

func TestScrollOutsideContentStaysInRange(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/contact"})
	assert.Equal(t, received{Type: "active", Index: 0}, next(t, conn))

	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 90000, "viewport_height": 900})
	assert.Equal(t, received{Type: "active", Index: 1}, next(t, conn))

	send(t, conn, map[string]any{"type": "scroll", "scroll_top": -1800, "viewport_height": 900})
	assert.Equal(t, received{Type: "active", Index: 0}, next(t, conn))
}

func TestUnknownPathFallsBackToNotFound(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/missing"})
	assert.Equal(t, received{Type: "active", Index: 0}, next(t, conn))
}

func TestProtocolErrors(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 10, "viewport_height": 900})
	msg := next(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "page not mounted", msg.Message)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
	assert.Equal(t, "invalid message format", next(t, conn).Message)

	send(t, conn, map[string]any{"type": "mount", "path": "/contact"})
	assert.Equal(t, "active", next(t, conn).Type)

	send(t, conn, map[string]any{"type": "mount", "path": "/contact"})
	assert.Equal(t, "page already mounted", next(t, conn).Message)

	send(t, conn, map[string]any{"type": "dance"})
	assert.Equal(t, "unknown message type: dance", next(t, conn).Message)
}

func TestIntroFreshVisit(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/", "nav_type": "navigate"})
	assert.Equal(t, received{Type: "active", Index: 0}, next(t, conn))

	// Ignored while holding: an upward wheel, a stray key, and scrolls
	// before the content is visible.
	send(t, conn, map[string]any{"type": "input", "kind": "wheel", "delta_y": -40})
	send(t, conn, map[string]any{"type": "input", "kind": "keydown", "key": "ArrowUp"})
	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 900, "viewport_height": 900})
	send(t, conn, map[string]any{"type": "input", "kind": "keydown", "key": "ArrowDown"})

	got := collect(t, conn, 3)
	assert.ElementsMatch(t, []received{
		{Type: "reveal", Immediate: false},
		{Type: "intro", Phase: intro.PhaseRevealing},
		{Type: "visit", AtMs: epoch.UnixMilli()},
	}, got)

	h.clock.Advance(intro.ContentDelay)
	assert.Equal(t, received{Type: "visible"}, next(t, conn))
	assert.Equal(t, received{Type: "scroll_to", Index: 0, Key: "hero"}, next(t, conn))

	h.clock.Advance(intro.FadeOutAfter - intro.ContentDelay)
	assert.Equal(t, received{Type: "intro", Phase: intro.PhaseFadingOut}, next(t, conn))

	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 2700, "viewport_height": 900})
	assert.Equal(t, received{Type: "active", Index: 3}, next(t, conn))

	h.clock.Advance(intro.DoneAfter - intro.FadeOutAfter)
	assert.Equal(t, received{Type: "intro", Phase: intro.PhaseDone}, next(t, conn))
}

func TestIntroSkippedOnHistoryReturn(t *testing.T) {
	tests := []struct {
		name  string
		mount map[string]any
	}{
		{"back_forward", map[string]any{"type": "mount", "path": "/", "nav_type": "back_forward"}},
		{"recent visit", map[string]any{"type": "mount", "path": "/", "nav_type": "navigate",
			"last_visit_ms": epoch.Add(-10 * time.Second).UnixMilli()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			conn := h.dial()

			send(t, conn, tt.mount)
			got := collect(t, conn, 4)

			assert.Equal(t, received{Type: "active", Index: 0}, got[0])
			assert.ElementsMatch(t, []received{
				{Type: "intro", Phase: intro.PhaseDone},
				{Type: "visible"},
				{Type: "reveal", Immediate: true},
			}, got[1:])
			assert.Zero(t, h.clock.Pending())
		})
	}
}

func TestIntroStaleVisitDoesNotSkip(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/", "nav_type": "reload",
		"last_visit_ms": epoch.Add(-time.Minute).UnixMilli()})
	assert.Equal(t, received{Type: "active", Index: 0}, next(t, conn))

	send(t, conn, map[string]any{"type": "input", "kind": "touchstart"})
	got := collect(t, conn, 3)
	assert.Contains(t, got, received{Type: "reveal", Immediate: false})
	assert.Contains(t, got, received{Type: "intro", Phase: intro.PhaseRevealing})
}

func TestPageShowFromCacheSkipsRemainder(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/"})
	next(t, conn)

	send(t, conn, map[string]any{"type": "input", "kind": "wheel", "delta_y": 120})
	collect(t, conn, 3)

	send(t, conn, map[string]any{"type": "pageshow", "persisted": false})
	send(t, conn, map[string]any{"type": "pageshow", "persisted": true})
	got := collect(t, conn, 3)

	assert.ElementsMatch(t, []received{
		{Type: "intro", Phase: intro.PhaseDone},
		{Type: "visible"},
		{Type: "reveal", Immediate: true},
	}, got)
	assert.Zero(t, h.clock.Pending())
}

func TestInputIgnoredOffEntryPage(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/where-to-buy", "fragment": "#international"})
	assert.Equal(t, received{Type: "active", Index: 2}, next(t, conn))
	assert.Equal(t, received{Type: "scroll_to", Index: 2, Key: "international"}, next(t, conn))

	send(t, conn, map[string]any{"type": "input", "kind": "touchstart"})
	send(t, conn, map[string]any{"type": "pageshow", "persisted": true})
	send(t, conn, map[string]any{"type": "scroll", "scroll_top": 900, "viewport_height": 900})
	assert.Equal(t, received{Type: "active", Index: 1}, next(t, conn))
}

func TestShutdownClosesSessions(t *testing.T) {
	h := newHarness(t)
	conn := h.dial()

	send(t, conn, map[string]any{"type": "mount", "path": "/"})
	next(t, conn)
	require.Equal(t, 1, h.handler.Active())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.handler.Shutdown(ctx))
	assert.Equal(t, 0, h.handler.Active())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}
