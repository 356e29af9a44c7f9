package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .docread.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docread! Let's set up your book.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Book title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = title

	dirPrompt := promptui.Prompt{
		Label:   "Content directory (markdown chapters)",
		Default: cfg.ContentDir,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("directory is required")
			}
			return nil
		},
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir prompt: %w", err)
	}
	cfg.ContentDir = dir

	// Seed the chapter sequence from the markdown files already present.
	if chapters := scanChapters(dir); len(chapters) > 0 {
		fmt.Printf("Found %d markdown files, using them as the chapter sequence.\n", len(chapters))
		cfg.Book = chapters
		cfg.Anchors = nil
	}

	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	watchPrompt := promptui.Select{
		Label: "Watch content and live-reload browsers",
		Items: []string{"no", "yes"},
	}
	watchIdx, _, err := watchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("watch prompt: %w", err)
	}
	cfg.Server.Watch = watchIdx == 1

	if err := cfg.Save(".docread.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Saved .docread.yml. Run `docread serve` to start reading.")
	return cfg, nil
}

// scanChapters builds a chapter list from the .md files in dir, in name order.
func scanChapters(dir string) []Chapter {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil || len(matches) == 0 {
		return nil
	}
	sort.Strings(matches)

	chapters := make([]Chapter, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		id := strings.TrimSuffix(name, ".md")
		chapters = append(chapters, Chapter{
			ID:    id,
			Title: titleFromID(id),
			File:  name,
		})
	}
	return chapters
}

// titleFromID turns "getting-started" into "Getting Started".
func titleFromID(id string) string {
	words := strings.FieldsFunc(id, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	if len(words) == 0 {
		return id
	}
	return strings.Join(words, " ")
}

// ConfigExists reports whether a config file is already present at path.
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
