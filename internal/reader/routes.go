package reader

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arvidh/docread/internal/search"
)

// RegisterRoutes mounts the reader API.
func RegisterRoutes(r chi.Router, rd *Reader) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/book", handleBook(rd))
		r.Get("/chapters/{id}", handleChapter(rd))
		r.Post("/navigate", handleNavigate(rd))
		r.Post("/navigate/next", handleNext(rd))
		r.Post("/navigate/previous", handlePrevious(rd))
		r.Get("/search", handleSearch(rd))
		r.Post("/complete", handleComplete(rd))
	})
}

// bookChapter is one chapter entry in the /api/book response.
type bookChapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// bookResponse describes the whole book and its reading state.
type bookResponse struct {
	Title    string        `json:"title"`
	Chapters []bookChapter `json:"chapters"`
	Current  string        `json:"current"`
	Percent  int           `json:"percent"`
}

func handleBook(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapters := rd.Sequence().Chapters()
		out := bookResponse{
			Title:    rd.Title(),
			Chapters: make([]bookChapter, len(chapters)),
			Current:  rd.Current(),
			Percent:  rd.Tracker().Percent(),
		}
		for i, ch := range chapters {
			out.Chapters[i] = bookChapter{
				ID:        ch.ID,
				Title:     ch.Title,
				Completed: rd.Tracker().IsCompleted(ch.ID),
			}
		}
		writeJSON(w, out)
	}
}

func handleChapter(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !rd.Sequence().Contains(id) {
			http.Error(w, `{"error":"unknown chapter"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, rd.Navigate(r.Context(), id, r.URL.Query().Get("section")))
	}
}

type navigateRequest struct {
	Chapter string `json:"chapter"`
	Section string `json:"section,omitempty"`
}

func handleNavigate(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		// An empty chapter id is a no-op, not an error.
		writeJSON(w, rd.Navigate(r.Context(), req.Chapter, req.Section))
	}
}

func handleNext(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rd.Next(r.Context()))
	}
}

func handlePrevious(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rd.Previous(r.Context()))
	}
}

// searchResponse is the JSON response for /api/search.
type searchResponse struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

func handleSearch(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		results := rd.Search(query)
		if results == nil {
			results = []search.Result{}
		}
		writeJSON(w, searchResponse{Query: query, Results: results})
	}
}

type completeRequest struct {
	Chapter   string `json:"chapter"`
	Completed bool   `json:"completed"`
}

// completeResponse reports the completion state after a toggle.
type completeResponse struct {
	Percent   int      `json:"percent"`
	Completed []string `json:"completed"`
}

func handleComplete(rd *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if !rd.Tracker().Toggle(req.Chapter, req.Completed) {
			http.Error(w, `{"error":"unknown chapter"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, completeResponse{
			Percent:   rd.Tracker().Percent(),
			Completed: rd.Tracker().Completed(),
		})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
