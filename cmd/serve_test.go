package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/config"
	"github.com/cbcberry/berrysite/internal/db"
	"github.com/cbcberry/berrysite/internal/forms"
)

func TestBuildServer(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	cfg.Geo.Enabled = false
	cfg.PublicDir = t.TempDir()

	srv, err := buildServer(cfg, zap.NewNop(), forms.NewStore(database))
	if err != nil {
		t.Fatalf("buildServer: %v", err)
	}

	for path, want := range map[string]int{
		"/healthz":            http.StatusOK,
		"/where-to-buy":       http.StatusOK,
		"/contact-us":         http.StatusPermanentRedirect,
		"/assets/site.js":     http.StatusOK,
		"/definitely-missing": http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != want {
			t.Errorf("GET %s: expected %d, got %d", path, want, w.Code)
		}
	}
}

func TestBuildServerRejectsBadRedirect(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Redirects = append(cfg.Redirects, cfg.Redirects[0])
	cfg.Redirects[len(cfg.Redirects)-1].Source = "no-leading-slash"

	if _, err := buildServer(cfg, zap.NewNop(), nil); err == nil {
		t.Fatal("expected error for invalid redirect source")
	}
}
