package config

// DefaultBook is the chapter sequence used when no book is configured.
// It matches the sample content shipped under content/.
var DefaultBook = []Chapter{
	{ID: "getting-started", Title: "Getting Started", File: "getting-started.md",
		Keywords: "install setup interpreter repl virtualenv pip first program"},
	{ID: "syntax-basics", Title: "Syntax Basics", File: "syntax-basics.md",
		Keywords: "variables types strings numbers lists dicts loops conditionals"},
	{ID: "functions", Title: "Functions", File: "functions.md",
		Keywords: "def arguments keyword defaults lambda closures scope return"},
	{ID: "classes", Title: "Classes and Objects", File: "classes.md",
		Keywords: "class init methods inheritance dunder properties dataclasses"},
	{ID: "async-programming", Title: "Async Programming", File: "async-programming.md",
		Keywords: "asyncio await coroutines event loop tasks futures gather concurrency"},
	{ID: "error-handling", Title: "Error Handling", File: "error-handling.md",
		Keywords: "exceptions try except finally raise traceback custom errors"},
	{ID: "advanced-topics", Title: "Advanced Topics", File: "advanced-topics.md",
		Keywords: "decorators generators iterators context managers metaclasses slots"},
	{ID: "resources", Title: "Further Resources", File: "resources.md",
		Keywords: "books links documentation community practice projects"},
}

// DefaultAnchors pins stable anchor ids on the advanced-topics chapter so
// other chapters can deep-link into its sections regardless of heading
// punctuation. Only headings of level one or two are considered.
var DefaultAnchors = map[string][]Anchor{
	"advanced-topics": {
		{Match: "Decorators", ID: "decorators"},
		{Match: "Generators", ID: "generators"},
		{Match: "Context Managers", ID: "context-managers"},
		{Match: "Metaclasses", ID: "metaclasses"},
	},
}

// DefaultExcludes are glob patterns skipped when copying auxiliary files
// during static export.
var DefaultExcludes = []string{
	".git/**",
	"drafts/**",
	"*.tmp",
	"*.bak",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:      "Documentation",
		ContentDir: "content",
		Book:       DefaultBook,
		Anchors:    DefaultAnchors,
		Server: ServerConfig{
			Port: 8080,
		},
		Search: SearchConfig{
			DebounceMS: 300,
			MaxResults: 8,
		},
		Export: ExportConfig{
			OutputDir: "site",
			Exclude:   DefaultExcludes,
		},
	}
}
