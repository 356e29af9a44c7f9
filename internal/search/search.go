// Package search implements keyword search over a static per-chapter
// index of titles and keyword content, built once at startup.
package search

import (
	"sort"
	"strings"
)

// Scoring weights. A whole-query title substring dominates, individual
// tokens in the title outrank tokens that only appear in the content.
const (
	wholeQueryTitleScore = 100
	tokenTitleScore      = 50
	tokenContentScore    = 10
	minTokenLen          = 2
)

// DefaultMaxResults caps how many ranked results a search returns.
const DefaultMaxResults = 8

// Snippet window sizes, in words.
const (
	snippetLookbehind = 10
	snippetWindow     = 20
)

// Document is one indexed chapter.
type Document struct {
	Chapter string
	Title   string
	Content string
}

// Result is one ranked search hit.
type Result struct {
	Chapter string `json:"chapter"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Score   int    `json:"score"`
}

// Index is a static search index. It is never mutated after construction
// and is safe for concurrent searches.
type Index struct {
	docs       []Document
	maxResults int
}

// NewIndex builds an Index over docs, in encounter order. maxResults <= 0
// selects DefaultMaxResults.
func NewIndex(docs []Document, maxResults int) *Index {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	owned := make([]Document, len(docs))
	copy(owned, docs)
	return &Index{docs: owned, maxResults: maxResults}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return len(ix.docs) }

// Search scores every indexed chapter against the query and returns the
// ranked matches. A blank query clears the search: it yields no results
// and no error. Ties keep index order.
func (ix *Index) Search(query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var tokens []string
	for _, tok := range strings.Fields(q) {
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}

	var results []Result
	for _, doc := range ix.docs {
		title := strings.ToLower(doc.Title)
		content := strings.ToLower(doc.Content)

		score := 0
		if strings.Contains(title, q) {
			score += wholeQueryTitleScore
		}
		for _, tok := range tokens {
			if strings.Contains(title, tok) {
				score += tokenTitleScore
			}
			if strings.Contains(content, tok) {
				score += tokenContentScore
			}
		}
		if score == 0 {
			continue
		}

		results = append(results, Result{
			Chapter: doc.Chapter,
			Title:   doc.Title,
			Snippet: snippet(doc.Content, tokens),
			Score:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > ix.maxResults {
		results = results[:ix.maxResults]
	}
	return results
}

// snippet extracts a window around the first content word containing any
// query token: up to snippetLookbehind words before the match, through
// snippetWindow words total. An ellipsis marks truncated content.
func snippet(content string, tokens []string) string {
	words := strings.Fields(content)

	match := -1
scan:
	for i, w := range words {
		lw := strings.ToLower(w)
		for _, tok := range tokens {
			if strings.Contains(lw, tok) {
				match = i
				break scan
			}
		}
	}

	start := match - snippetLookbehind
	if start < 0 {
		start = 0
	}
	end := start + snippetWindow
	if end > len(words) {
		end = len(words)
	}

	out := strings.Join(words[start:end], " ")
	if len(out) < len(content) {
		out += " …"
	}
	return out
}
