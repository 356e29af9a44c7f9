// Package export writes the book out as a self-contained static HTML
// site: one page per chapter, a JSON search index, and the shared assets.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"

	"github.com/arvidh/docread/internal/book"
)

// Options configures an export run.
type Options struct {
	Title      string
	ContentDir string
	OutputDir  string
	Chapters   []book.Chapter
	Exclude    []string // glob patterns for auxiliary files to skip

	// OnPage is called after each chapter page is written. May be nil.
	OnPage func(done, total int, chapter string)
}

// Exporter renders chapters to standalone HTML pages.
type Exporter struct {
	opts Options
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an Exporter. Unlike the live reader, exported pages use
// server-side syntax highlighting and automatic heading ids.
func New(opts Options) (*Exporter, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Exporter{opts: opts, md: md, tmpl: tmpl}, nil
}

// searchEntry is one chapter in the exported search index.
type searchEntry struct {
	Chapter string `json:"chapter"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// pageData is the data passed to the page template.
type pageData struct {
	Title     string
	BookTitle string
	Content   template.HTML
	Nav       []navEntry
	Prev      string
	Next      string
}

type navEntry struct {
	Path   string
	Title  string
	Active bool
}

// Run exports every chapter and returns the number of pages written.
// Chapters without a file mapping are skipped.
func (e *Exporter) Run(ctx context.Context) (int, error) {
	mapped := make([]book.Chapter, 0, len(e.opts.Chapters))
	for _, ch := range e.opts.Chapters {
		if ch.File != "" {
			mapped = append(mapped, ch)
		}
	}
	if len(mapped) == 0 {
		return 0, fmt.Errorf("no chapters with source files in %s", e.opts.ContentDir)
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(e.opts.OutputDir, "style.css"), []byte(siteCSS), 0o644); err != nil {
		return 0, err
	}

	var (
		mu      sync.Mutex
		done    int
		entries = make([]searchEntry, len(mapped))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, ch := range mapped {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := e.renderPage(mapped, i)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", ch.ID, err)
			}
			entries[i] = searchEntry{
				Chapter: ch.ID,
				Title:   ch.Title,
				Path:    ch.ID + ".html",
				Content: content,
			}

			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if e.opts.OnPage != nil {
				e.opts.OnPage(n, len(mapped), ch.ID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := e.writeSearchIndex(entries); err != nil {
		return 0, err
	}
	if err := e.copyAuxiliary(); err != nil {
		return 0, err
	}

	// index.html mirrors the first chapter so the site root resolves.
	first := filepath.Join(e.opts.OutputDir, mapped[0].ID+".html")
	data, err := os.ReadFile(first)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(e.opts.OutputDir, "index.html"), data, 0o644); err != nil {
		return 0, err
	}

	return len(mapped), nil
}

// renderPage writes one chapter page and returns its plain-ish text
// content for the search index.
func (e *Exporter) renderPage(chapters []book.Chapter, idx int) (string, error) {
	ch := chapters[idx]
	src, err := os.ReadFile(filepath.Join(e.opts.ContentDir, filepath.FromSlash(ch.File)))
	if err != nil {
		return "", err
	}

	var htmlBuf bytes.Buffer
	if err := e.md.Convert(src, &htmlBuf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	data := pageData{
		Title:     ch.Title,
		BookTitle: e.opts.Title,
		Content:   template.HTML(htmlBuf.String()),
		Nav:       make([]navEntry, len(chapters)),
	}
	for i, c := range chapters {
		data.Nav[i] = navEntry{Path: c.ID + ".html", Title: c.Title, Active: i == idx}
	}
	if idx > 0 {
		data.Prev = chapters[idx-1].ID + ".html"
	}
	if idx < len(chapters)-1 {
		data.Next = chapters[idx+1].ID + ".html"
	}

	var out bytes.Buffer
	if err := e.tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}

	outPath := filepath.Join(e.opts.OutputDir, ch.ID+".html")
	if err := os.WriteFile(outPath, out.Bytes(), 0o644); err != nil {
		return "", err
	}
	return indexText(string(src), ch.Keywords), nil
}

// indexText flattens markdown source into the text stored in the search
// index, capped to keep the index small.
func indexText(src, keywords string) string {
	lines := strings.Split(src, "\n")
	var parts []string
	if keywords != "" {
		parts = append(parts, keywords)
	}
	for _, l := range lines {
		l = strings.TrimLeft(strings.TrimSpace(l), "#`>-* ")
		if l != "" {
			parts = append(parts, l)
		}
	}
	text := strings.Join(parts, " ")
	if len(text) > 2000 {
		text = text[:2000]
	}
	return text
}

func (e *Exporter) writeSearchIndex(entries []searchEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(e.opts.OutputDir, "search-index.json"), data, 0o644)
}

// copyAuxiliary copies non-markdown files (images, downloads) from the
// content directory into the site, skipping excluded patterns.
func (e *Exporter) copyAuxiliary() error {
	if e.opts.ContentDir == "" {
		return nil
	}
	return filepath.WalkDir(e.opts.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(e.opts.ContentDir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if excluded(rel, e.opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(rel, ".md") || excluded(rel, e.opts.Exclude) {
			return nil
		}
		dst := filepath.Join(e.opts.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
}

// excluded reports whether rel matches any glob pattern, checked against
// both the full relative path and the bare file name.
func excluded(rel string, patterns []string) bool {
	if rel == "." {
		return false
	}
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, err := doublestar.PathMatch(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.PathMatch(pattern, filepath.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}
