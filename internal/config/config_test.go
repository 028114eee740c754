package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbcberry/berrysite/internal/redirects"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Log.Format != LogConsole {
		t.Errorf("expected default log format %q, got %q", LogConsole, cfg.Log.Format)
	}
	if cfg.Uploads.MaxResumeMB != 5 {
		t.Errorf("expected default max_resume_mb 5, got %d", cfg.Uploads.MaxResumeMB)
	}
	if len(cfg.Redirects) != len(redirects.Defaults) {
		t.Errorf("expected %d default redirects, got %d", len(redirects.Defaults), len(cfg.Redirects))
	}
	if cfg.SkipWindow() != 30*time.Second {
		t.Errorf("expected 30s skip window, got %v", cfg.SkipWindow())
	}
	if cfg.MaxResumeBytes() != 5*1024*1024 {
		t.Errorf("expected 5MB, got %d", cfg.MaxResumeBytes())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "berrysite.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.DataDir = "var/site"
	original.Log.Format = LogJSON
	original.Mail.To = []string{"a@cbcberry.com", "b@cbcberry.com"}
	original.Redirects = []redirects.Rule{{Source: "/old", Destination: "/new"}}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Port)
	}
	if loaded.DataDir != "var/site" {
		t.Errorf("data_dir: got %q", loaded.DataDir)
	}
	if loaded.Log.Format != LogJSON {
		t.Errorf("log.format: got %q", loaded.Log.Format)
	}
	if len(loaded.Mail.To) != 2 || loaded.Mail.To[1] != "b@cbcberry.com" {
		t.Errorf("mail.to: got %v", loaded.Mail.To)
	}
	if len(loaded.Redirects) != 1 || loaded.Redirects[0].Destination != "/new" {
		t.Errorf("redirects: got %+v", loaded.Redirects)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	t.Setenv("BERRYSITE_PORT", "7000")
	t.Setenv("BERRYSITE_MAIL__API_KEY", "re_test")
	t.Setenv("BERRYSITE_LOG__LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 7000 {
		t.Errorf("port override failed: got %d", loaded.Port)
	}
	if loaded.Mail.APIKey != "re_test" {
		t.Errorf("mail.api_key override failed: got %q", loaded.Mail.APIKey)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("log.level override failed: got %q", loaded.Log.Level)
	}
}

func TestLoadResendKeyFallback(t *testing.T) {
	os.Unsetenv("BERRYSITE_MAIL__API_KEY")
	t.Setenv("RESEND_API_KEY", "re_fallback")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mail.APIKey != "re_fallback" {
		t.Errorf("expected RESEND_API_KEY fallback, got %q", cfg.Mail.APIKey)
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"no recipients", func(c *Config) { c.Mail.To = nil }},
		{"no endpoint", func(c *Config) { c.Mail.Endpoint = "" }},
		{"negative skip window", func(c *Config) { c.Intro.SkipWindowSecs = -1 }},
		{"zero upload cap", func(c *Config) { c.Uploads.MaxResumeMB = 0 }},
		{"bad redirect", func(c *Config) { c.Redirects = []redirects.Rule{{Source: "x", Destination: "/y"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
