package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cbcberry/berrysite/internal/content"
	"github.com/cbcberry/berrysite/internal/forms"
	"github.com/cbcberry/berrysite/internal/live"
	"github.com/cbcberry/berrysite/internal/mail"
	"github.com/cbcberry/berrysite/internal/pages"
	"github.com/cbcberry/berrysite/internal/redirects"
)

func newTestServer(t *testing.T, allowAll bool) (*Server, *[]mail.Message) {
	t.Helper()

	table, err := redirects.NewTable(redirects.Defaults)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	composer, err := mail.NewComposer(mail.Senders{
		To:          []string{"team@example.com"},
		ContactFrom: "site@example.com",
		CareersFrom: "careers@example.com",
		ConfirmFrom: "hello@example.com",
	})
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	var sent []mail.Message
	mailer := mail.MailerFunc(func(ctx context.Context, msg mail.Message) error {
		sent = append(sent, msg)
		return nil
	})
	rend, err := pages.NewRenderer(pages.DefaultCatalog(),
		pages.WithFeatured(func(n int) []content.Cultivar { return content.Cultivars[:n] }))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	srv := New(Config{Port: 0, AllowAll: allowAll, PublicDir: t.TempDir()}, nil, table,
		forms.NewService(nil, composer, mailer), rend, live.NewHandler(rend.Catalog()))
	return srv, &sent
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, false)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}
	if body["sessions"] != float64(0) {
		t.Errorf("expected 0 sessions, got %v", body["sessions"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t, true)

	req := httptest.NewRequest("OPTIONS", "/api/contact", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestRoutes(t *testing.T) {
	srv, _ := newTestServer(t, false)

	tests := []struct {
		path     string
		status   int
		location string
	}{
		{"/", http.StatusOK, ""},
		{"/about/", http.StatusOK, ""},
		{"/breeding", http.StatusOK, ""},
		{"/about-us", http.StatusPermanentRedirect, "/about"},
		{"/breeding-program/cultivars/monterey", http.StatusPermanentRedirect, content.ExplorerURL},
		{"/no-such-page", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))
		if w.Code != tt.status {
			t.Errorf("GET %s: expected %d, got %d", tt.path, tt.status, w.Code)
		}
		if tt.location != "" && w.Header().Get("Location") != tt.location {
			t.Errorf("GET %s: expected Location %q, got %q", tt.path, tt.location, w.Header().Get("Location"))
		}
	}
}

func TestContactEndpoint(t *testing.T) {
	srv, sent := newTestServer(t, false)

	body := `{"name":"Jane","email":"jane@x.com","message":"hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(*sent) != 1 {
		t.Fatalf("expected one message, got %d", len(*sent))
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"Jane","email":"jane@x.com"}`))
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(*sent) != 1 {
		t.Errorf("rejected submission must not be delivered")
	}
}

func TestLiveSessionUpgrade(t *testing.T) {
	srv, _ := newTestServer(t, false)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + live.Path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	if err := conn.WriteJSON(map[string]any{"type": "mount", "path": "/breeding", "fragment": "cleanstock"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type  string `json:"type"`
		Index int    `json:"index"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != "active" || msg.Index != 3 {
		t.Errorf("expected active 3, got %+v", msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
