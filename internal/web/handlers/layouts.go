package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/metravel/bookgen/internal/layout"
)

// LayoutsHandler serves the built-in layout presets.
type LayoutsHandler struct{}

func NewLayoutsHandler() *LayoutsHandler {
	return &LayoutsHandler{}
}

// List returns every layout preset with its full block list.
func (h *LayoutsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"layouts": layout.DefaultLayouts()})
}

// Get returns one preset by id.
func (h *LayoutsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	l, ok := layout.DefaultLayout(id)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown layout: "+sanitizeForLog(id))
		return
	}
	respondJSON(w, http.StatusOK, l)
}
