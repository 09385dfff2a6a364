package application

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"condreq/internal/config/domain"
	entitydomain "condreq/internal/entity/domain"
)

// RandomSeedID asks for a freshly generated entity id at startup.
const RandomSeedID = "random"

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, .env file and config file
type RuntimeConfig struct {
	// API Configuration
	Port string

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Store Configuration
	Store string
	DSN   string

	// Seed entity
	SeedID   string
	SeedName string

	// Request body validation
	AllowAdditionalProperties bool

	// Config file path
	ConfigPath string
}

// Flags carries the raw CLI flag values. Empty strings mean "not set".
type Flags struct {
	Port       string
	LogLevel   string
	LogFormat  string
	LogOutput  string
	Store      string
	DSN        string
	SeedID     string
	SeedName   string
	ConfigPath string
	DevMode    bool
	StrictBody bool
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > config file > defaults.
// The .env file is expected to be loaded into the environment beforehand (see LoadEnvFile).
func LoadRuntimeConfig(flags Flags, file *domain.FileConfig) *RuntimeConfig {
	if file == nil {
		file = &domain.FileConfig{}
	}

	allowAdditional := true
	if file.AllowAdditionalProperties != nil {
		allowAdditional = *file.AllowAdditionalProperties
	}

	cfg := &RuntimeConfig{
		Port:                      getValue(flags.Port, "CONDREQ_PORT", file.Port, "3000"),
		DevMode:                   flags.DevMode || getBoolEnv("CONDREQ_DEV_MODE", file.DevMode),
		LogLevel:                  getValue(flags.LogLevel, "CONDREQ_LOG_LEVEL", file.LogLevel, "INFO"),
		LogFormat:                 strings.ToLower(getValue(flags.LogFormat, "CONDREQ_LOG_FORMAT", file.LogFormat, "text")),
		LogOutput:                 getValue(flags.LogOutput, "CONDREQ_LOG_OUTPUT", file.LogOutput, "stdout"),
		Store:                     strings.ToLower(getValue(flags.Store, "CONDREQ_STORE", file.Store.Kind, "memory")),
		DSN:                       getValue(flags.DSN, "CONDREQ_DSN", file.Store.DSN, ""),
		SeedID:                    getValue(flags.SeedID, "CONDREQ_SEED_ID", file.Seed.ID, entitydomain.DefaultSeedID),
		SeedName:                  getValue(flags.SeedName, "CONDREQ_SEED_NAME", file.Seed.Name, entitydomain.DefaultSeedName),
		AllowAdditionalProperties: !flags.StrictBody && getBoolEnv("CONDREQ_ALLOW_ADDITIONAL_PROPERTIES", allowAdditional),
		ConfigPath:                ConfigPathFrom(flags.ConfigPath),
	}

	if cfg.Store == "sqlite" && cfg.DSN == "" {
		cfg.DSN = ":memory:"
	}

	if strings.EqualFold(cfg.SeedID, RandomSeedID) {
		cfg.SeedID = uuid.NewString()
	}

	return cfg
}

// ConfigPathFrom resolves only the config file location, which has to be
// known before the file itself can take part in LoadRuntimeConfig.
func ConfigPathFrom(flagValue string) string {
	return getValue(flagValue, "CONDREQ_CONFIG", "", "")
}

// getValue returns the first non-empty value from CLI flag, env var, config file, or default
func getValue(cliValue, envKey, fileValue, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

// Validate checks that the configuration is usable
func (c *RuntimeConfig) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return &ConfigError{Field: "port", Message: "port must be a number between 0 and 65535"}
	}

	switch c.Store {
	case "memory", "sqlite":
	case "postgres":
		if c.DSN == "" {
			return &ConfigError{Field: "dsn", Message: "DSN is required for the postgres store (set CONDREQ_DSN or use --dsn flag)"}
		}
	default:
		return &ConfigError{Field: "store", Message: "store must be one of " + strings.Join(domain.StoreKinds, ", ")}
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return &ConfigError{Field: "log-format", Message: "log format must be one of " + strings.Join(domain.LogFormats, ", ")}
	}

	if !slices.Contains(domain.LogLevels, strings.ToUpper(c.LogLevel)) {
		return &ConfigError{Field: "log-level", Message: "log level must be one of " + strings.Join(domain.LogLevels, ", ")}
	}

	if _, err := uuid.Parse(c.SeedID); err != nil {
		return &ConfigError{Field: "seed-id", Message: "seed id must be a UUID or \"random\": " + err.Error()}
	}

	if c.SeedName == "" {
		return &ConfigError{Field: "seed-name", Message: "seed name cannot be empty"}
	}

	return nil
}

// Addr is the listen address for the HTTP server
func (c *RuntimeConfig) Addr() string {
	return ":" + c.Port
}

// SeedEntity is the entity the store starts with
func (c *RuntimeConfig) SeedEntity() entitydomain.Entity {
	return entitydomain.NewEntity(c.SeedID, c.SeedName)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
