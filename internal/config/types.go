package config

// Chapter is one entry in the book's ordered chapter sequence.
type Chapter struct {
	ID       string `yaml:"id" koanf:"id"`
	Title    string `yaml:"title" koanf:"title"`
	File     string `yaml:"file" koanf:"file"`
	Keywords string `yaml:"keywords" koanf:"keywords"`
}

// Anchor assigns a fixed element id to headings whose text contains Match.
// Matching is case-sensitive and first-match-wins within a chapter's table.
type Anchor struct {
	Match string `yaml:"match" koanf:"match"`
	ID    string `yaml:"id" koanf:"id"`
}

// ServerConfig holds settings for the reader server.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins (dev mode)
	Watch    bool `yaml:"watch" koanf:"watch"`         // watch content dir and live-reload browsers
}

// SearchConfig holds settings for keyword search.
type SearchConfig struct {
	DebounceMS int `yaml:"debounce_ms" koanf:"debounce_ms"`
	MaxResults int `yaml:"max_results" koanf:"max_results"`
}

// ExportConfig holds settings for static site export.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}

// Config is the top-level docread configuration, corresponding to .docread.yml.
type Config struct {
	Title      string              `yaml:"title" koanf:"title"`
	ContentDir string              `yaml:"content_dir" koanf:"content_dir"`
	BaseURL    string              `yaml:"base_url" koanf:"base_url"` // remote chapter source; takes precedence over content_dir
	Book       []Chapter           `yaml:"book" koanf:"book"`
	Anchors    map[string][]Anchor `yaml:"anchors" koanf:"anchors"` // chapter id -> heading anchor table
	Server     ServerConfig        `yaml:"server" koanf:"server"`
	Search     SearchConfig        `yaml:"search" koanf:"search"`
	Export     ExportConfig        `yaml:"export" koanf:"export"`
}
