package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/metravel/bookgen/internal/theme"
)

// ThemesHandler serves the theme catalog.
type ThemesHandler struct{}

func NewThemesHandler() *ThemesHandler {
	return &ThemesHandler{}
}

type themeSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
	Background  string `json:"background"`
	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
	Default     bool   `json:"default,omitempty"`
}

func summarize(th theme.Theme) themeSummary {
	return themeSummary{
		ID:          th.Name,
		DisplayName: th.DisplayName,
		Description: th.Description,
		Accent:      th.Colors.Accent,
		Background:  th.Colors.Background,
		HeadingFont: th.Typography.HeadingFont,
		BodyFont:    th.Typography.BodyFont,
		Default:     th.Name == theme.DefaultName,
	}
}

// List returns every registered theme.
func (h *ThemesHandler) List(w http.ResponseWriter, r *http.Request) {
	names := theme.Names()
	out := make([]themeSummary, 0, len(names))
	for _, name := range names {
		out = append(out, summarize(theme.Get(name)))
	}
	respondJSON(w, http.StatusOK, map[string]any{"themes": out})
}

// Get returns one theme by id.
func (h *ThemesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !knownTheme(id) {
		respondError(w, http.StatusNotFound, "unknown theme: "+sanitizeForLog(id))
		return
	}
	respondJSON(w, http.StatusOK, summarize(theme.Get(id)))
}

func knownTheme(id string) bool {
	for _, name := range theme.Names() {
		if name == id {
			return true
		}
	}
	return false
}
