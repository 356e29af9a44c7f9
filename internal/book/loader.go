package book

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFetchTimeout is the default timeout for HTTP chapter fetches.
const DefaultFetchTimeout = 10 * time.Second

// Loader fetches the raw markdown for a chapter source file.
type Loader interface {
	Load(ctx context.Context, file string) ([]byte, error)
}

// FSLoader reads chapter files from a local content directory.
type FSLoader struct {
	Dir string
}

// NewFSLoader creates a filesystem loader rooted at dir.
func NewFSLoader(dir string) *FSLoader {
	return &FSLoader{Dir: dir}
}

// Load reads the chapter file from the content directory.
func (l *FSLoader) Load(_ context.Context, file string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, filepath.FromSlash(file)))
	if err != nil {
		return nil, fmt.Errorf("loading chapter file %s: %w", file, err)
	}
	return data, nil
}

// HTTPLoader fetches chapter files relative to a base URL.
type HTTPLoader struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLoader creates an HTTP loader with a sensible timeout.
func NewHTTPLoader(baseURL string) *HTTPLoader {
	return &HTTPLoader{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultFetchTimeout},
	}
}

// Load fetches the chapter file. Any non-2xx response is an error carrying
// the status line, which surfaces in the reader's inline error view.
func (l *HTTPLoader) Load(ctx context.Context, file string) ([]byte, error) {
	url := l.baseURL + "/" + file
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", file, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: %s", file, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
