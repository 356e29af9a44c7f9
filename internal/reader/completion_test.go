package reader

import (
	"reflect"
	"testing"

	"github.com/arvidh/docread/internal/book"
)

func newTestTracker() *Tracker {
	return NewTracker(book.NewSequence([]book.Chapter{
		{ID: "intro"}, {ID: "basics"}, {ID: "advanced"},
	}))
}

func TestToggleAndPercent(t *testing.T) {
	tr := newTestTracker()

	if tr.Percent() != 0 {
		t.Fatalf("initial percent = %d, want 0", tr.Percent())
	}

	tr.Toggle("intro", true)
	if got := tr.Percent(); got != 33 {
		t.Errorf("percent = %d, want 33 (1 of 3, rounded)", got)
	}
	tr.Toggle("basics", true)
	if got := tr.Percent(); got != 67 {
		t.Errorf("percent = %d, want 67 (2 of 3, rounded)", got)
	}
	tr.Toggle("advanced", true)
	if got := tr.Percent(); got != 100 {
		t.Errorf("percent = %d, want 100", got)
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	tr := newTestTracker()
	before := tr.Percent()

	tr.Toggle("basics", true)
	if !tr.IsCompleted("basics") {
		t.Error("chapter should be completed after toggle on")
	}
	tr.Toggle("basics", false)
	if tr.IsCompleted("basics") {
		t.Error("chapter should not be completed after toggle off")
	}
	if got := tr.Percent(); got != before {
		t.Errorf("percent = %d, want %d (restored)", got, before)
	}
	if got := tr.Completed(); len(got) != 0 {
		t.Errorf("completed = %v, want empty", got)
	}
}

func TestToggleUnknownChapter(t *testing.T) {
	tr := newTestTracker()
	if tr.Toggle("ghost", true) {
		t.Error("toggling an unknown id should report false")
	}
	if tr.Percent() != 0 {
		t.Error("unknown id must not change the percentage")
	}
}

func TestToggleIdempotent(t *testing.T) {
	tr := newTestTracker()
	tr.Toggle("intro", true)
	tr.Toggle("intro", true)
	if got := tr.Percent(); got != 33 {
		t.Errorf("percent = %d, want 33 after repeated toggles on", got)
	}
}

func TestCompletedSequenceOrder(t *testing.T) {
	tr := newTestTracker()
	tr.Toggle("advanced", true)
	tr.Toggle("intro", true)

	got := tr.Completed()
	want := []string{"intro", "advanced"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("completed = %v, want %v (sequence order)", got, want)
	}
}
