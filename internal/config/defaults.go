package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".xrforge.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine:    EngineTemplate,
		OutputDir: "webxr",
		Server: ServerConfig{
			Port:              8080,
			AllowAllOrigins:   false,
			RequestsPerMinute: 120,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    ".xrforge/history.db",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}
