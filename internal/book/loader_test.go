package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFSLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "intro.md"), []byte("# Intro\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewFSLoader(dir)
	data, err := l.Load(context.Background(), "intro.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "# Intro\n" {
		t.Errorf("content = %q", data)
	}
}

func TestFSLoaderMissingFile(t *testing.T) {
	l := NewFSLoader(t.TempDir())
	_, err := l.Load(context.Background(), "ghost.md")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "ghost.md") {
		t.Errorf("error = %q, want it to name the file", err)
	}
}

func TestHTTPLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/intro.md" {
			w.Write([]byte("# Intro\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := NewHTTPLoader(srv.URL + "/")
	data, err := l.Load(context.Background(), "intro.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "# Intro\n" {
		t.Errorf("content = %q", data)
	}
}

func TestHTTPLoaderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := NewHTTPLoader(srv.URL)
	_, err := l.Load(context.Background(), "missing.md")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	// The error message carries the status line for the inline error view.
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %q, want it to carry the status", err)
	}
}

func TestHTTPLoaderNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // immediately, so the port refuses connections

	l := NewHTTPLoader(srv.URL)
	if _, err := l.Load(context.Background(), "intro.md"); err == nil {
		t.Fatal("expected network error")
	}
}
