package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore descends into a
// section: BERRYSITE_MAIL__API_KEY sets mail.api_key.
const EnvPrefix = "BERRYSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BERRYSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists given in the file replace the defaults instead of merging by index.
	if k.Exists("redirects") {
		cfg.Redirects = nil
	}
	if k.Exists("mail.to") {
		cfg.Mail.To = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// The delivery provider's own variable is honoured when nothing else set a key.
	if cfg.Mail.APIKey == "" {
		cfg.Mail.APIKey = os.Getenv("RESEND_API_KEY")
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validFormats = map[LogFormat]bool{
	LogConsole: true,
	LogJSON:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}
	if len(c.Mail.To) == 0 {
		return fmt.Errorf("mail.to needs at least one recipient")
	}
	if c.Mail.Endpoint == "" {
		return fmt.Errorf("mail.endpoint is required")
	}
	if c.Intro.SkipWindowSecs < 0 {
		return fmt.Errorf("intro.skip_window_seconds must be non-negative")
	}
	if c.Uploads.MaxResumeMB <= 0 {
		return fmt.Errorf("uploads.max_resume_mb must be positive")
	}
	for _, r := range c.Redirects {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SkipWindow returns the intro recent-visit window.
func (c *Config) SkipWindow() time.Duration {
	return time.Duration(c.Intro.SkipWindowSecs) * time.Second
}

// MaxResumeBytes returns the upload cap in bytes.
func (c *Config) MaxResumeBytes() int64 {
	return int64(c.Uploads.MaxResumeMB) << 20
}

// MailTimeout returns the delivery request timeout.
func (c *Config) MailTimeout() time.Duration {
	return time.Duration(c.Mail.TimeoutSecs) * time.Second
}

// GeoTimeout returns the location lookup timeout.
func (c *Config) GeoTimeout() time.Duration {
	return time.Duration(c.Geo.TimeoutSecs) * time.Second
}
