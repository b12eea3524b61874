// Package config loads postpipe settings: built-in defaults, then an
// optional YAML file, then POSTPIPE_* environment variables.
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

const envPrefix = "POSTPIPE_"

// sections are the nested config keys. POSTPIPE_FETCH_USER_AGENT maps to
// fetch.user_agent, POSTPIPE_LOG_LEVEL stays log_level.
var sections = []string{"fetch", "highlight", "server", "preview"}

// Load reads the configuration at path (a missing file is not an error)
// and applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey turns POSTPIPE_FETCH_USER_AGENT into fetch.user_agent.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, sec := range sections {
		if strings.HasPrefix(key, sec+"_") {
			return sec + "." + strings.TrimPrefix(key, sec+"_")
		}
	}
	return key
}

// Save writes the configuration as YAML.
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

var validEngines = map[string]bool{
	EngineBuiltin:  true,
	EngineGoldmark: true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if !validEngines[c.Engine] {
		return fmt.Errorf("invalid engine %q: must be one of builtin, goldmark", c.Engine)
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Fetch.UserAgent == "" {
		return fmt.Errorf("fetch.user_agent is required")
	}
	if c.Highlight.Enabled && c.Highlight.Style == "" {
		return fmt.Errorf("highlight.style is required when highlighting is enabled")
	}
	if c.Preview.MaxLinks < 0 {
		return fmt.Errorf("preview.max_links must be non-negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
