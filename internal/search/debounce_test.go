package search

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCollapsesTriggers(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { runs.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Errorf("runs = %d, want 1 (rapid triggers collapse)", got)
	}
}

func TestDebouncerRunsAgainAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	time.Sleep(100 * time.Millisecond)
	d.Trigger(func() { runs.Add(1) })
	time.Sleep(100 * time.Millisecond)

	if got := runs.Load(); got != 2 {
		t.Errorf("runs = %d, want 2 (separate quiet windows)", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Errorf("runs = %d, want 0 after Stop", got)
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	defer d.Stop()
	if d.delay != DefaultDebounce {
		t.Errorf("delay = %v, want %v", d.delay, DefaultDebounce)
	}
}
