package reader

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/arvidh/docread/internal/book"
	"github.com/arvidh/docread/internal/render"
	"github.com/arvidh/docread/internal/search"
)

func newTestRouter(t *testing.T) (chi.Router, *Reader) {
	t.Helper()
	loader := newFakeLoader()
	loader.files["intro.md"] = "# Introduction\n\nWelcome."
	loader.files["basics.md"] = "# Basics\n\nThe basics."

	seq := book.NewSequence([]book.Chapter{
		{ID: "intro", Title: "Introduction", File: "intro.md", Keywords: "welcome start"},
		{ID: "basics", Title: "Basics", File: "basics.md", Keywords: "variables loops"},
	})
	index := search.NewIndex([]search.Document{
		{Chapter: "intro", Title: "Introduction", Content: "welcome start"},
		{Chapter: "basics", Title: "Basics", Content: "variables loops"},
	}, 0)

	rd := New("Test Book", seq, loader, render.New(nil), index)
	r := chi.NewRouter()
	RegisterRoutes(r, rd)
	return r, rd
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/book", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp bookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Title != "Test Book" {
		t.Errorf("title = %q", resp.Title)
	}
	if len(resp.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(resp.Chapters))
	}
	if resp.Current != "intro" {
		t.Errorf("current = %q, want intro", resp.Current)
	}
}

func TestChapterEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/chapters/basics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var v View
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !v.Loaded || !strings.Contains(v.HTML, "The basics.") {
		t.Errorf("view = %+v, want loaded content", v)
	}
}

func TestChapterEndpointUnknownID(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, "GET", "/api/chapters/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestNavigateEndpoint(t *testing.T) {
	r, rd := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/navigate", `{"chapter":"basics","section":"intro-section"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var v View
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Section != "intro-section" {
		t.Errorf("section = %q", v.Section)
	}
	if rd.Current() != "basics" {
		t.Errorf("current = %q, want basics", rd.Current())
	}
}

func TestNavigateEndpointBadBody(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, "POST", "/api/navigate", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestNavigateEndpointEmptyChapterNoOp(t *testing.T) {
	r, rd := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/navigate", `{"chapter":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (no-op, not an error)", w.Code)
	}
	if rd.Current() != "intro" {
		t.Errorf("current = %q, want intro unchanged", rd.Current())
	}
}

func TestNextPreviousEndpoints(t *testing.T) {
	r, rd := newTestRouter(t)

	doJSON(t, r, "POST", "/api/navigate/next", "")
	if rd.Current() != "basics" {
		t.Errorf("current = %q, want basics", rd.Current())
	}

	// At the end, a further next is a no-op.
	doJSON(t, r, "POST", "/api/navigate/next", "")
	if rd.Current() != "basics" {
		t.Errorf("current = %q, want basics (boundary no-op)", rd.Current())
	}

	doJSON(t, r, "POST", "/api/navigate/previous", "")
	if rd.Current() != "intro" {
		t.Errorf("current = %q, want intro", rd.Current())
	}
}

func TestSearchEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/search?q=variables", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Chapter != "basics" {
		t.Errorf("results = %+v, want the basics chapter", resp.Results)
	}
}

func TestSearchEndpointBlankQuery(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/search?q=+++", "")
	if w.Code != http.StatusOK {
		t.Fatalf("blank query status = %d, want 200", w.Code)
	}
	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("results = %+v, want empty", resp.Results)
	}
}

func TestCompleteEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/complete", `{"chapter":"intro","completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp completeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Percent != 50 || len(resp.Completed) != 1 {
		t.Errorf("resp = %+v, want 50%% with one chapter", resp)
	}

	// Toggling back off restores the original state.
	w = doJSON(t, r, "POST", "/api/complete", `{"chapter":"intro","completed":false}`)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Percent != 0 || len(resp.Completed) != 0 {
		t.Errorf("resp = %+v, want reset state", resp)
	}
}

func TestCompleteEndpointUnknownChapter(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, "POST", "/api/complete", `{"chapter":"ghost","completed":true}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
