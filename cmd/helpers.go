package cmd

import (
	"github.com/arvidh/docread/internal/book"
	"github.com/arvidh/docread/internal/config"
	"github.com/arvidh/docread/internal/render"
	"github.com/arvidh/docread/internal/search"
)

// buildSequence converts the configured book into the chapter sequence.
func buildSequence(cfg *config.Config) *book.Sequence {
	chapters := make([]book.Chapter, len(cfg.Book))
	for i, ch := range cfg.Book {
		chapters[i] = book.Chapter{
			ID:       ch.ID,
			Title:    ch.Title,
			File:     ch.File,
			Keywords: ch.Keywords,
		}
	}
	return book.NewSequence(chapters)
}

// buildLoader selects the chapter source: a remote base URL when
// configured, the local content directory otherwise.
func buildLoader(cfg *config.Config) book.Loader {
	if cfg.BaseURL != "" {
		return book.NewHTTPLoader(cfg.BaseURL)
	}
	return book.NewFSLoader(cfg.ContentDir)
}

// buildRenderer creates the markdown renderer with the configured
// per-chapter heading anchor tables.
func buildRenderer(cfg *config.Config) *render.Renderer {
	anchors := make(map[string][]render.Anchor, len(cfg.Anchors))
	for id, table := range cfg.Anchors {
		rules := make([]render.Anchor, len(table))
		for i, a := range table {
			rules[i] = render.Anchor{Match: a.Match, ID: a.ID}
		}
		anchors[id] = rules
	}
	return render.New(anchors)
}

// buildIndex creates the keyword search index from chapter titles and
// their keyword strings.
func buildIndex(cfg *config.Config) *search.Index {
	docs := make([]search.Document, len(cfg.Book))
	for i, ch := range cfg.Book {
		docs[i] = search.Document{
			Chapter: ch.ID,
			Title:   ch.Title,
			Content: ch.Keywords,
		}
	}
	max := cfg.Search.MaxResults
	if max <= 0 {
		max = search.DefaultMaxResults
	}
	return search.NewIndex(docs, max)
}
