package config

import "time"

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "postpipe.yml"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Engine:   EngineBuiltin,
		Fetch: FetchConfig{
			Timeout:   30 * time.Second,
			UserAgent: "PostPipe/1.0 (https://github.com/gaurav-prasanna/postpipe)",
		},
		Highlight: HighlightConfig{
			Enabled: true,
			Style:   "github",
			Classes: true,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Preview: PreviewConfig{
			MaxLinks: 20,
		},
	}
}
