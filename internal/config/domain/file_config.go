package domain

import (
	"context"
	"strings"
)

// FileConfig is the optional YAML configuration file. Every field is
// optional; CLI flags and environment variables take precedence.
type FileConfig struct {
	Port      string `yaml:"port"`
	DevMode   bool   `yaml:"devMode"`
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	LogOutput string `yaml:"logOutput"`

	Store StoreConfig `yaml:"store"`
	Seed  SeedConfig  `yaml:"seed"`

	// AllowAdditionalProperties is a pointer so an absent key keeps the
	// default (true) instead of reading as false.
	AllowAdditionalProperties *bool `yaml:"allowAdditionalProperties"`
}

type StoreConfig struct {
	Kind string `yaml:"kind"`
	DSN  string `yaml:"dsn"`
}

type SeedConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

var (
	StoreKinds = []string{"memory", "sqlite", "postgres"}
	LogFormats = []string{"text", "json"}
	LogLevels  = []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}
)

func (c *FileConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)

	if c.Store.Kind != "" && !oneOf(strings.ToLower(c.Store.Kind), StoreKinds) {
		problems["store.kind"] = "must be one of " + strings.Join(StoreKinds, ", ")
	}

	if c.LogFormat != "" && !oneOf(strings.ToLower(c.LogFormat), LogFormats) {
		problems["logFormat"] = "must be one of " + strings.Join(LogFormats, ", ")
	}

	if c.LogLevel != "" && !oneOf(strings.ToUpper(c.LogLevel), LogLevels) {
		problems["logLevel"] = "must be one of " + strings.Join(LogLevels, ", ")
	}

	return problems
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
