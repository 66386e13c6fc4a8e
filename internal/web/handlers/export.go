package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/config"
	"github.com/metravel/bookgen/internal/export"
	"github.com/metravel/bookgen/internal/layout"
	"github.com/metravel/bookgen/internal/pages"
)

// ExportHandler runs book exports. Each request gets its own exporter so
// per-request layout and quote choices never leak between requests.
type ExportHandler struct {
	config   *config.Config
	baseOpts []export.Option
}

func NewExportHandler(cfg *config.Config, baseOpts []export.Option) *ExportHandler {
	return &ExportHandler{config: cfg, baseOpts: baseOpts}
}

type exportRequest struct {
	Travels  []book.TravelForBook `json:"travels"`
	Settings book.BookSettings    `json:"settings"`
	Layout   string               `json:"layout,omitempty"`
}

// Export builds the full document for the posted travels and settings.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if len(req.Travels) == 0 {
		respondError(w, http.StatusBadRequest, "at least one travel is required")
		return
	}

	layoutID := req.Layout
	if layoutID == "" {
		layoutID = h.config.Export.Layout
	}
	l, ok := layout.DefaultLayout(layoutID)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown layout: "+sanitizeForLog(layoutID))
		return
	}

	if req.Settings.Template == "" {
		req.Settings.Template = h.config.Export.Theme
	}
	if req.Settings.GalleryLayout == "" {
		req.Settings.GalleryLayout = h.config.Export.GalleryLayout
	}

	quote := h.config.CoverQuote(req.Settings.Title)
	opts := append([]export.Option{}, h.baseOpts...)
	opts = append(opts, export.WithLayout(l))
	if quote.Text != "" {
		opts = append(opts, export.WithQuote(pages.Quote{Text: quote.Text, Author: quote.Author}))
	}

	doc, err := export.New(opts...).Export(r.Context(), req.Travels, req.Settings)
	if err != nil {
		log.Printf("WARNING: export failed: %v", err)
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	respondJSON(w, http.StatusOK, doc)
}
