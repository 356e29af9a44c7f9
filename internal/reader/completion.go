package reader

import (
	"math"
	"sync"

	"github.com/arvidh/docread/internal/book"
)

// Tracker records which chapters have been marked completed. State lives
// in memory only and resets on restart; that is a design constraint, not
// an omission.
type Tracker struct {
	mu   sync.Mutex
	seq  *book.Sequence
	done map[string]bool
}

// NewTracker creates a Tracker over the chapter sequence.
func NewTracker(seq *book.Sequence) *Tracker {
	return &Tracker{
		seq:  seq,
		done: make(map[string]bool),
	}
}

// Toggle marks or unmarks a chapter as completed. It reports whether the
// id belongs to the configured sequence; unknown ids change nothing.
func (t *Tracker) Toggle(id string, completed bool) bool {
	if !t.seq.Contains(id) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if completed {
		t.done[id] = true
	} else {
		delete(t.done, id)
	}
	return true
}

// IsCompleted reports whether the chapter is marked completed.
func (t *Tracker) IsCompleted(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done[id]
}

// Percent returns the overall completion percentage, rounded.
func (t *Tracker) Percent() int {
	total := t.seq.Len()
	if total == 0 {
		return 0
	}
	t.mu.Lock()
	count := len(t.done)
	t.mu.Unlock()
	return int(math.Round(100 * float64(count) / float64(total)))
}

// Completed returns the completed chapter ids in sequence order.
func (t *Tracker) Completed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	for _, id := range t.seq.IDs() {
		if t.done[id] {
			out = append(out, id)
		}
	}
	return out
}
