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

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCREAD_*).
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

	// Overlay environment variables: DOCREAD_CONTENT_DIR -> content_dir, etc.
	if err := k.Load(env.Provider("DOCREAD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DOCREAD_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
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

// Validate checks that the configuration contains valid values. It does not
// require every chapter to have a file mapping; `docread check` reports those.
func (c *Config) Validate() error {
	if len(c.Book) == 0 {
		return fmt.Errorf("book must list at least one chapter")
	}

	seen := make(map[string]bool, len(c.Book))
	for i, ch := range c.Book {
		if ch.ID == "" {
			return fmt.Errorf("book[%d]: chapter id is required", i)
		}
		if seen[ch.ID] {
			return fmt.Errorf("book[%d]: duplicate chapter id %q", i, ch.ID)
		}
		seen[ch.ID] = true
	}

	for id := range c.Anchors {
		if !seen[id] {
			return fmt.Errorf("anchors: unknown chapter id %q", id)
		}
	}

	if c.ContentDir == "" && c.BaseURL == "" {
		return fmt.Errorf("either content_dir or base_url is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Search.DebounceMS < 0 {
		return fmt.Errorf("search.debounce_ms must be non-negative")
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive")
	}

	return nil
}
