package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/search/recent (200 OK)
// POST v1/search JSON {"query" string} (202 Accepted, 400 Bad request)

type SearchHandler struct {
	query  port.QueryMutator
	reader port.SearchReader
}

func RegisterSearch(
	mux *http.ServeMux, query port.QueryMutator, reader port.SearchReader,
) {
	h := SearchHandler{query, reader}
	mux.HandleFunc("GET /v1/search/recent", h.GetRecent)
	mux.HandleFunc("POST /v1/search", h.PostSearch)
}

func (h SearchHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.GetRecent"
	log := slog.With("op", op)

	terms := h.reader.RecentSearches()
	if terms == nil {
		terms = []string{}
	}
	writeJSON(w, log, terms)
}

// PostSearch installs the query as the active search text and records it in
// the recent-search history.
func (h SearchHandler) PostSearch(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.PostSearch"
	log := slog.With("op", op)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.query.SetSearchQuery(req.Query)
	h.query.RecordSearch(req.Query)
	w.WriteHeader(http.StatusAccepted)
}
