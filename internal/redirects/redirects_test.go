package redirects

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	table, err := NewTable(Defaults)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	r := chi.NewRouter()
	r.Use(table.Middleware)
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	return r
}

func TestMatch(t *testing.T) {
	table, err := NewTable(Defaults)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	tests := []struct {
		path string
		dest string
		ok   bool
	}{
		{"/breeding-program", "/breeding", true},
		{"/breeding-program/", "/breeding", true},
		{"/breeding-program/cultivars", "https://cultivars.cbcberry.com", true},
		{"/breeding-program/cultivars/castaic", "https://cultivars.cbcberry.com", true},
		{"/about-us", "/about", true},
		{"/contact-us", "/contact", true},
		{"/about", "", false},
		{"/", "", false},
		{"/breeding-program/cultivars/a/b", "", false},
	}
	for _, tt := range tests {
		rule, ok := table.Match(tt.path)
		if ok != tt.ok {
			t.Errorf("Match(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && rule.Destination != tt.dest {
			t.Errorf("Match(%q) = %q, want %q", tt.path, rule.Destination, tt.dest)
		}
	}
}

func TestMiddlewareRedirects(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/about-us?ref=mail", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusPermanentRedirect)
	}
	if got := rec.Header().Get("Location"); got != "/about?ref=mail" {
		t.Errorf("Location = %q, want %q", got, "/about?ref=mail")
	}
}

func TestMiddlewarePassesThrough(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/breeding", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/about-us", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Errorf("POST status = %d, want 202", rec.Code)
	}
}

func TestTemporaryRule(t *testing.T) {
	table, err := NewTable([]Rule{{Source: "/promo", Destination: "/where-to-buy"}})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	rule, ok := table.Match("/promo")
	if !ok {
		t.Fatal("expected match")
	}
	if rule.Status() != http.StatusTemporaryRedirect {
		t.Errorf("status = %d, want 307", rule.Status())
	}
}

func TestValidate(t *testing.T) {
	bad := []Rule{
		{Source: "about-us", Destination: "/about"},
		{Source: "/about-us", Destination: ""},
		{Source: "/x/[", Destination: "/y"},
	}
	for _, r := range bad {
		if err := r.Validate(); err == nil {
			t.Errorf("expected error for %+v", r)
		}
	}
	if _, err := NewTable(bad[:1]); err == nil {
		t.Error("NewTable should reject invalid rules")
	}
}
