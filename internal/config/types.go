package config

import "github.com/cbcberry/berrysite/internal/redirects"

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level site configuration, corresponding to berrysite.yml.
type Config struct {
	Port            int              `yaml:"port" koanf:"port"`
	DataDir         string           `yaml:"data_dir" koanf:"data_dir"`
	BaseURL         string           `yaml:"base_url" koanf:"base_url"`
	PublicDir       string           `yaml:"public_dir" koanf:"public_dir"`
	AllowAllOrigins bool             `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Log             LogConfig        `yaml:"log" koanf:"log"`
	Mail            MailConfig       `yaml:"mail" koanf:"mail"`
	Geo             GeoConfig        `yaml:"geo" koanf:"geo"`
	Intro           IntroConfig      `yaml:"intro" koanf:"intro"`
	Uploads         UploadConfig     `yaml:"uploads" koanf:"uploads"`
	Redirects       []redirects.Rule `yaml:"redirects" koanf:"redirects"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// MailConfig holds delivery provider settings.
type MailConfig struct {
	APIKey      string   `yaml:"api_key" koanf:"api_key"`
	Endpoint    string   `yaml:"endpoint" koanf:"endpoint"`
	To          []string `yaml:"to" koanf:"to"`
	ContactFrom string   `yaml:"contact_from" koanf:"contact_from"`
	CareersFrom string   `yaml:"careers_from" koanf:"careers_from"`
	ConfirmFrom string   `yaml:"confirm_from" koanf:"confirm_from"`
	TimeoutSecs int      `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// GeoConfig controls the best-effort IP location lookup for contact mail.
type GeoConfig struct {
	Enabled     bool   `yaml:"enabled" koanf:"enabled"`
	BaseURL     string `yaml:"base_url" koanf:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// IntroConfig tunes the home page splash.
type IntroConfig struct {
	SkipWindowSecs int `yaml:"skip_window_seconds" koanf:"skip_window_seconds"`
}

// UploadConfig limits resume uploads.
type UploadConfig struct {
	MaxResumeMB int `yaml:"max_resume_mb" koanf:"max_resume_mb"`
}
