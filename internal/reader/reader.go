// Package reader implements the chapter router and owns the reader's
// in-memory state: the current chapter, the content cache, and the
// completion set. The logic here is deliberately UI-free; the web layer
// decides how a View is displayed.
package reader

import (
	"context"
	"log"
	"sync"

	"github.com/arvidh/docread/internal/book"
	"github.com/arvidh/docread/internal/cache"
	"github.com/arvidh/docread/internal/render"
	"github.com/arvidh/docread/internal/search"
)

// View is the outcome of a navigation, ready for display. Exactly one of
// HTML and Error is set on a load; scroll-only views carry neither.
type View struct {
	Chapter    string `json:"chapter"`
	Title      string `json:"title,omitempty"`
	HTML       string `json:"html,omitempty"`
	Section    string `json:"section,omitempty"`
	ScrollOnly bool   `json:"scroll_only,omitempty"`
	FromCache  bool   `json:"from_cache,omitempty"`
	Loaded     bool   `json:"loaded"`
	Error      string `json:"error,omitempty"`
	Prev       string `json:"prev,omitempty"`
	Next       string `json:"next,omitempty"`
}

// Reader routes chapter navigation: it resolves a chapter id to its source
// file, orchestrates load -> render -> cache, and tracks the single current
// chapter. One instance serves the whole process.
type Reader struct {
	title    string
	seq      *book.Sequence
	loader   book.Loader
	renderer *render.Renderer
	cache    *cache.Cache
	index    *search.Index
	tracker  *Tracker

	mu      sync.Mutex
	current string
}

// New creates a Reader over the given chapter sequence. The current chapter
// starts at the first chapter of the sequence.
func New(title string, seq *book.Sequence, loader book.Loader, renderer *render.Renderer, index *search.Index) *Reader {
	r := &Reader{
		title:    title,
		seq:      seq,
		loader:   loader,
		renderer: renderer,
		cache:    cache.New(seq.IDs()),
		index:    index,
		tracker:  NewTracker(seq),
	}
	if first, ok := seq.First(); ok {
		r.current = first.ID
	}
	return r
}

// Title returns the book title.
func (r *Reader) Title() string { return r.title }

// Sequence returns the configured chapter sequence.
func (r *Reader) Sequence() *book.Sequence { return r.seq }

// Tracker returns the completion tracker.
func (r *Reader) Tracker() *Tracker { return r.tracker }

// Current returns the id of the current chapter.
func (r *Reader) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate moves the reader to the given chapter. An empty id is a no-op.
// Navigating to the current chapter with a section produces a scroll-only
// view, no reload. Otherwise the chapter becomes current and is loaded,
// from cache when possible.
func (r *Reader) Navigate(ctx context.Context, id, section string) View {
	if id == "" {
		return View{}
	}

	r.mu.Lock()
	if id == r.current && section != "" {
		r.mu.Unlock()
		return r.withNeighbors(View{Chapter: id, Section: section, ScrollOnly: true})
	}
	if !r.seq.Contains(id) {
		r.mu.Unlock()
		log.Printf("reader: chapter %q is not in the configured sequence", id)
		return View{}
	}
	r.current = id
	r.mu.Unlock()

	v := r.load(ctx, id)
	v.Section = section
	return r.withNeighbors(v)
}

// Next moves to the chapter after the current one. At the end of the
// sequence it is a no-op: the current chapter does not change.
func (r *Reader) Next(ctx context.Context) View {
	next, ok := r.seq.Next(r.Current())
	if !ok {
		return View{}
	}
	return r.Navigate(ctx, next.ID, "")
}

// Previous moves to the chapter before the current one. At the start of
// the sequence it is a no-op.
func (r *Reader) Previous(ctx context.Context) View {
	prev, ok := r.seq.Previous(r.Current())
	if !ok {
		return View{}
	}
	return r.Navigate(ctx, prev.ID, "")
}

// Search runs a keyword search over the static index.
func (r *Reader) Search(query string) []search.Result {
	return r.index.Search(query)
}

// load produces the display content for a chapter: cached content when
// present, otherwise fetch + render + cache. Load failures never propagate;
// the returned View carries the error message for an inline error block,
// and the cache stays untouched.
func (r *Reader) load(ctx context.Context, id string) View {
	ch, _ := r.seq.Get(id)
	v := View{Chapter: id, Title: ch.Title}

	if content, ok := r.cache.Get(id); ok {
		v.HTML = content
		v.Loaded = true
		v.FromCache = true
		return v
	}

	if ch.File == "" {
		// A missing file mapping is logged and the navigation silently
		// aborts. Only fetch and render failures surface an inline error.
		log.Printf("reader: no source file mapped for chapter %q", id)
		return v
	}

	raw, err := r.loader.Load(ctx, ch.File)
	if err != nil {
		log.Printf("reader: loading chapter %q: %v", id, err)
		v.Error = err.Error()
		return v
	}

	html, err := r.renderer.Render(raw, id)
	if err != nil {
		log.Printf("reader: rendering chapter %q: %v", id, err)
		v.Error = err.Error()
		return v
	}

	r.cache.Put(id, html)
	v.HTML = html
	v.Loaded = true
	return v
}

// Refresh drops all cached chapters so the next navigation reloads from
// the source. Called when content files changed on disk.
func (r *Reader) Refresh() {
	r.cache.Reset()
}

// withNeighbors fills in the previous/next chapter ids for nav controls.
func (r *Reader) withNeighbors(v View) View {
	if v.Chapter == "" {
		return v
	}
	if prev, ok := r.seq.Previous(v.Chapter); ok {
		v.Prev = prev.ID
	}
	if next, ok := r.seq.Next(v.Chapter); ok {
		v.Next = next.ID
	}
	return v
}
