// Package live runs the websocket session behind every open page. The page
// script forwards mount, scroll, input and pageshow events; the session
// drives the section controller and, on the entry page, the intro sequence,
// and pushes the results back.
package live

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/intro"
	"github.com/cbcberry/berrysite/internal/pages"
)

// Path is where page sessions connect.
const Path = "/ws/page"

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(h *Handler) { h.logger = l } }

// WithClock replaces the clock behind intro timers.
func WithClock(c intro.Clock) Option { return func(h *Handler) { h.clock = c } }

// WithSkipWindow changes how recent a visit must be to skip the intro.
func WithSkipWindow(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.skipWindow = d
		}
	}
}

// WithAllowAllOrigins disables the same-origin check on upgrade.
func WithAllowAllOrigins(allow bool) Option {
	return func(h *Handler) {
		if allow {
			h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
		}
	}
}

// Handler accepts page sessions and tracks them for shutdown.
type Handler struct {
	catalog    *pages.Catalog
	logger     *zap.Logger
	clock      intro.Clock
	skipWindow time.Duration
	upgrader   websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*session
	wg       sync.WaitGroup
}

// NewHandler creates a Handler serving pages from catalog.
func NewHandler(catalog *pages.Catalog, opts ...Option) *Handler {
	h := &Handler{
		catalog:    catalog,
		logger:     zap.NewNop(),
		clock:      intro.SystemClock{},
		skipWindow: intro.DefaultSkipWindow,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: make(map[string]*session),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// RegisterRoutes mounts the session endpoint.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get(Path, h.handleSession)
}

// Active returns the number of open sessions.
func (h *Handler) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Shutdown closes every open session and waits for them to finish.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	open := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		open = append(open, s)
	}
	h.mu.Unlock()

	for _, s := range open {
		s.shutdown()
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("live: websocket upgrade", zap.Error(err))
		return
	}

	s := &session{
		id:      uuid.New().String(),
		conn:    conn,
		handler: h,
	}
	s.logger = h.logger.With(zap.String("session", s.id))

	h.wg.Add(1)
	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()

	defer func() {
		s.close()
		conn.Close()
		h.mu.Lock()
		delete(h.sessions, s.id)
		h.mu.Unlock()
		h.wg.Done()
		s.logger.Debug("live: session closed")
	}()

	s.run()
}
