package config

// EngineType identifies the document generation backend.
type EngineType string

const (
	EngineTemplate EngineType = "template"
)

// Config is the top-level xrforge configuration, corresponding to .xrforge.yml.
type Config struct {
	Engine    EngineType    `yaml:"engine" koanf:"engine"`
	OutputDir string        `yaml:"output_dir" koanf:"output_dir"`
	Server    ServerConfig  `yaml:"server" koanf:"server"`
	History   HistoryConfig `yaml:"history" koanf:"history"`
	Log       LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds settings for the HTTP UI.
type ServerConfig struct {
	Port              int  `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestsPerMinute int  `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// HistoryConfig controls the request history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level    string `yaml:"level" koanf:"level"`
	Encoding string `yaml:"encoding" koanf:"encoding"`
}
