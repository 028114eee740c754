package cmd

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/config"
	"github.com/cbcberry/berrysite/internal/db"
	"github.com/cbcberry/berrysite/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `berrysite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log, verbose)
}

// openDatabase opens the submissions database under the data directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	path := filepath.Join(cfg.DataDir, "berrysite.db")
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return database, nil
}
