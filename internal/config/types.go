package config

import "time"

// Engine names accepted by Config.Engine.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// Config is the resolved postpipe configuration.
type Config struct {
	LogLevel  string          `koanf:"log_level" yaml:"log_level"`
	OutputDir string          `koanf:"output_dir" yaml:"output_dir"`
	Engine    string          `koanf:"engine" yaml:"engine"`
	Fetch     FetchConfig     `koanf:"fetch" yaml:"fetch"`
	Highlight HighlightConfig `koanf:"highlight" yaml:"highlight"`
	Server    ServerConfig    `koanf:"server" yaml:"server"`
	Preview   PreviewConfig   `koanf:"preview" yaml:"preview"`
}

// FetchConfig controls outbound HTTP requests.
type FetchConfig struct {
	Timeout   time.Duration `koanf:"timeout" yaml:"timeout"`
	UserAgent string        `koanf:"user_agent" yaml:"user_agent"`
}

// HighlightConfig controls syntax highlighting of code blocks.
type HighlightConfig struct {
	Enabled bool   `koanf:"enabled" yaml:"enabled"`
	Style   string `koanf:"style" yaml:"style"`
	Classes bool   `koanf:"classes" yaml:"classes"`
	// Detect guesses a language for blocks that declare none.
	Detect bool `koanf:"detect" yaml:"detect"`
}

// ServerConfig controls `postpipe serve`.
type ServerConfig struct {
	Addr           string   `koanf:"addr" yaml:"addr"`
	AllowedOrigins []string `koanf:"allowed_origins" yaml:"allowed_origins"`
}

// PreviewConfig controls link preview collection.
type PreviewConfig struct {
	MaxLinks int `koanf:"max_links" yaml:"max_links"`
}
