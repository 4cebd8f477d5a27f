package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
)

type searchResponse struct {
	Section content.Kind `json:"section"`
	Query   string       `json:"query"`
	IDs     []string     `json:"ids"`
}

type listResponse struct {
	Section content.Kind    `json:"section"`
	Entries []content.Entry `json:"entries"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.RenderPage(w, s.store, "", "/", false); err != nil {
		s.log.Error("rendering page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handleEntryPage redirects the static-build style entry URL to the live
// page with the matching fragment.
func (s *Server) handleEntryPage(kind content.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := s.store.Collection(kind).Lookup(id); !ok {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/#"+browser.Fragment(kind, id), http.StatusFound)
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	kind := content.Kind(r.URL.Query().Get("section"))
	c := s.store.Collection(kind)
	if c == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "section must be faq or commands"})
		return
	}
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, searchResponse{Section: kind, Query: q, IDs: browser.Search(c, q)})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	kind := content.Kind(chi.URLParam(r, "section"))
	c := s.store.Collection(kind)
	if c == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown section"})
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Section: kind, Entries: c.All()})
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	kind := content.Kind(chi.URLParam(r, "section"))
	c := s.store.Collection(kind)
	if c == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown section"})
		return
	}
	e, err := c.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
