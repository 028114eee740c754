package live

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/intro"
	"github.com/cbcberry/berrysite/internal/pages"
	"github.com/cbcberry/berrysite/internal/sections"
)

const (
	writeWait    = 5 * time.Second
	maxMessageSz = 4096
)

var errClosed = errors.New("session closed")

// session is one open page. It owns the page's section controller and, on
// the entry page, the intro sequencer and its host.
type session struct {
	id      string
	conn    *websocket.Conn
	handler *Handler
	logger  *zap.Logger

	wmu    sync.Mutex
	closed bool

	page *pages.Page
	ctrl *sections.Controller
	seq  *intro.Sequencer
	host *intro.Host
	// closed when the reveal forwarding goroutine exits
	revealDone chan struct{}
}

func (s *session) run() {
	s.conn.SetReadLimit(maxMessageSz)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("live: read", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("invalid message format")
			continue
		}
		s.dispatch(msg)
	}
}

func (s *session) dispatch(msg clientMessage) {
	if msg.Type != typeMount && s.page == nil {
		s.sendError("page not mounted")
		return
	}

	switch msg.Type {
	case typeMount:
		s.mount(msg)
	case typeScroll:
		// On the entry page scroll tracking starts once the content is shown.
		if s.host != nil && !s.host.Visible() {
			return
		}
		s.ctrl.OnScroll(msg.ScrollTop, msg.ViewportHeight)
	case typeInput:
		if s.seq != nil {
			s.seq.HandleInput(intro.Input{
				Kind:   intro.InputKind(msg.Kind),
				DeltaY: msg.DeltaY,
				Key:    msg.Key,
			})
		}
	case typePageShow:
		if s.seq != nil {
			s.seq.PageShow(msg.Persisted)
		}
	default:
		s.sendError("unknown message type: " + msg.Type)
	}
}

func (s *session) mount(msg clientMessage) {
	if s.page != nil {
		s.sendError("page already mounted")
		return
	}

	catalog := s.handler.catalog
	page, ok := catalog.Lookup(msg.Path)
	if !ok {
		page, ok = catalog.Lookup(pages.NotFoundPath)
	}
	if !ok {
		s.sendError("unknown page: " + msg.Path)
		return
	}
	s.page = page
	s.logger = s.logger.With(zap.String("page", page.Path))

	s.ctrl = sections.NewController(page.Registry(), scroller{s},
		sections.WithOnChange(func(idx int) {
			s.send(activeMessage{Type: "active", Index: idx})
		}))
	// A resolved deep link announces itself through the change listener;
	// otherwise the default section is announced here.
	if idx := s.ctrl.Mount(msg.Fragment); idx == 0 {
		s.send(activeMessage{Type: "active", Index: 0})
	}

	if page.Intro {
		s.startIntro(msg)
	}
	s.logger.Debug("live: mounted", zap.String("fragment", msg.Fragment), zap.Int("active", s.ctrl.Active()))
}

func (s *session) startIntro(msg clientMessage) {
	h := s.handler
	s.seq = intro.New(
		intro.WithClock(h.clock),
		intro.WithSkipWindow(h.skipWindow),
		intro.WithOnPhase(func(p intro.Phase) {
			s.send(introMessage{Type: "intro", Phase: p})
		}),
		intro.WithVisitRecorder(intro.VisitFunc(func(at time.Time) {
			s.send(visitMessage{Type: "visit", AtMs: at.UnixMilli()})
		})),
	)
	s.host = intro.NewHost(view{s}, s.ctrl, h.clock)

	s.revealDone = make(chan struct{})
	signals := s.seq.Signals()
	go func() {
		defer close(s.revealDone)
		for r := range signals {
			s.host.Handle(r)
			s.send(revealMessage{Type: "reveal", Immediate: r.Immediate})
		}
	}()

	hints := intro.NavigationHints{Type: intro.NavigationType(msg.NavType)}
	if msg.LastVisitMs > 0 {
		hints.LastVisit = time.UnixMilli(msg.LastVisitMs)
	}
	s.seq.Mount(hints)
}

// close tears down the intro and stops further writes.
func (s *session) close() {
	if s.host != nil {
		s.host.Close()
	}
	if s.seq != nil {
		s.seq.Close()
		<-s.revealDone
	}

	s.wmu.Lock()
	s.closed = true
	s.wmu.Unlock()
}

// shutdown sends a going-away close frame and closes the connection, which
// ends run.
func (s *session) shutdown() {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if s.closed {
		return
	}
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
		time.Now().Add(writeWait))
	s.conn.Close()
}

func (s *session) send(v any) {
	if err := s.write(v); err != nil && !errors.Is(err, errClosed) {
		s.logger.Debug("live: write", zap.Error(err))
	}
}

func (s *session) write(v any) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if s.closed {
		return errClosed
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

func (s *session) sendError(message string) {
	s.send(errorMessage{Type: "error", Message: message})
}

func (s *session) scrollTo(index int) bool {
	key := s.page.Registry().Key(index)
	if key == "" {
		return false
	}
	return s.write(scrollToMessage{Type: "scroll_to", Index: index, Key: key}) == nil
}

// scroller adapts the session to sections.Scroller.
type scroller struct{ s *session }

func (sc scroller) ScrollToTop(index int) bool { return sc.s.scrollTo(index) }

// view adapts the session to intro.View.
type view struct{ s *session }

func (v view) ShowContent() { v.s.send(visibleMessage{Type: "visible"}) }

func (v view) ScrollToOrigin() { v.s.scrollTo(0) }
