package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ingostrakh/insurehub/internal/catalog"
	"github.com/ingostrakh/insurehub/internal/config"
	"github.com/ingostrakh/insurehub/internal/format"
	"github.com/ingostrakh/insurehub/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `insurehub init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. --verbose forces debug.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.Log.Development)
}

// loadCatalog returns the built-in catalog, overlaid with cfg.CatalogFile
// when one is configured.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func newFormatter(cfg *config.Config) (*format.Formatter, error) {
	f, err := format.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("number format: %w", err)
	}
	return f, nil
}
