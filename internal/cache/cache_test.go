package cache

import "testing"

func TestGetPut(t *testing.T) {
	c := New([]string{"intro", "basics"})

	if _, ok := c.Get("intro"); ok {
		t.Error("empty cache should miss")
	}

	c.Put("intro", "<p>hi</p>")
	got, ok := c.Get("intro")
	if !ok || got != "<p>hi</p>" {
		t.Errorf("Get = %q, %v", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestPutOverwrites(t *testing.T) {
	c := New([]string{"intro"})
	c.Put("intro", "old")
	c.Put("intro", "new")
	if got, _ := c.Get("intro"); got != "new" {
		t.Errorf("Get = %q, want new", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestPutRejectsUnknownIDs(t *testing.T) {
	c := New([]string{"intro"})
	c.Put("ghost", "content")

	if _, ok := c.Get("ghost"); ok {
		t.Error("cache must never hold ids outside the configured chapter list")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestResetKeepsValidIDs(t *testing.T) {
	c := New([]string{"intro", "classes"})
	c.Put("intro", "<p>one</p>")
	c.Put("classes", "<p>two</p>")

	c.Reset()

	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0 after reset", c.Len())
	}
	c.Put("intro", "<p>again</p>")
	if got, ok := c.Get("intro"); !ok || got != "<p>again</p>" {
		t.Errorf("Get after reset = %q, %v", got, ok)
	}
	c.Put("ghost", "x")
	if c.Len() != 1 {
		t.Error("reset must not widen the accepted id set")
	}
}
