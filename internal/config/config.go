package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "XRFORGE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (XRFORGE_*). A double underscore separates
// nested keys: XRFORGE_SERVER__PORT -> server.port.
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

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps XRFORGE_HISTORY__PATH to history.path.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validEngines = map[EngineType]bool{
	EngineTemplate: true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogEncodings = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Engine == "" {
		return fmt.Errorf("engine is required")
	}
	if !validEngines[c.Engine] {
		return fmt.Errorf("invalid engine %q: must be template", c.Engine)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestsPerMinute < 0 {
		return fmt.Errorf("server.requests_per_minute must be non-negative")
	}

	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}

	if c.Log.Level != "" && !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Encoding != "" && !validLogEncodings[strings.ToLower(c.Log.Encoding)] {
		return fmt.Errorf("invalid log.encoding %q: must be console or json", c.Log.Encoding)
	}

	return nil
}
