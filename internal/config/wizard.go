package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to berrysite! Let's configure the site server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (submissions database)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Recipients.
	toPrompt := promptui.Prompt{
		Label:   "Form recipients (comma-separated)",
		Default: strings.Join(cfg.Mail.To, ","),
	}
	toStr, err := toPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("recipients: %w", err)
	}
	if to := splitAndTrim(toStr); len(to) > 0 {
		cfg.Mail.To = to
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console (human readable)",
			"json (for log shipping)",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogConsole, LogJSON}[formatIdx]

	// 5. IP location lookup.
	geoPrompt := promptui.Select{
		Label: "Look up visitor location for contact mail",
		Items: []string{"yes", "no"},
	}
	geoIdx, _, err := geoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("geo lookup: %w", err)
	}
	cfg.Geo.Enabled = geoIdx == 0

	if os.Getenv("RESEND_API_KEY") == "" && os.Getenv(EnvPrefix+"MAIL__API_KEY") == "" {
		fmt.Printf("\nNote: set RESEND_API_KEY in the environment before running berrysite serve.\n")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
