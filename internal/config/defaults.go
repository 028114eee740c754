package config

import "github.com/cbcberry/berrysite/internal/redirects"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "berrysite.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	rules := make([]redirects.Rule, len(redirects.Defaults))
	copy(rules, redirects.Defaults)

	return &Config{
		Port:      8080,
		DataDir:   "data",
		BaseURL:   "https://cbcberry.com",
		PublicDir: "public",
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
		Mail: MailConfig{
			Endpoint:    "https://api.resend.com/emails",
			To:          []string{"kyle@cbcberry.com"},
			ContactFrom: "CBC Homepage <homepage@cbcberry.com>",
			CareersFrom: "CBC Careers <explorer@cbcberry.com>",
			ConfirmFrom: "California Berry Cultivars <explorer@cbcberry.com>",
			TimeoutSecs: 15,
		},
		Geo: GeoConfig{
			Enabled:     true,
			BaseURL:     "http://ip-api.com/json/",
			TimeoutSecs: 3,
		},
		Intro: IntroConfig{
			SkipWindowSecs: 30,
		},
		Uploads: UploadConfig{
			MaxResumeMB: 5,
		},
		Redirects: rules,
	}
}
