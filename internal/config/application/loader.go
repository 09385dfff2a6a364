package application

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"condreq/internal/config/domain"
	sharedlogger "condreq/internal/shared/logger"
	"condreq/internal/shared/validation"
)

// Loader reads and validates the optional YAML configuration file
type Loader struct {
	logger sharedlogger.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger sharedlogger.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// LoadConfig parses and validates configuration from raw YAML bytes
func (l *Loader) LoadConfig(ctx context.Context, rawConfig []byte) (*domain.FileConfig, error) {
	var cfg domain.FileConfig
	if err := yaml.Unmarshal(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validation.Validate(ctx, &cfg, "config"); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile reads the file at path. An empty path yields an empty
// configuration so every value falls through to its default.
func (l *Loader) LoadConfigFile(ctx context.Context, path string) (*domain.FileConfig, error) {
	if path == "" {
		l.logger.Debug("No config file specified")
		return &domain.FileConfig{}, nil
	}

	l.logger.Debug("Reading configuration file", "path", path)
	rawConfig, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := l.LoadConfig(ctx, rawConfig)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Configuration file loaded", "path", path)
	return cfg, nil
}
