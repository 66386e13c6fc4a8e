package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/metravel/bookgen/internal/config"
	"github.com/metravel/bookgen/internal/export"
	"github.com/metravel/bookgen/internal/imageproc"
	"github.com/metravel/bookgen/internal/pages"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()

	HealthCheck(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
}

func TestThemesList(t *testing.T) {
	req := httptest.NewRequest("GET", "/themes", nil)
	recorder := httptest.NewRecorder()

	NewThemesHandler().List(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var body struct {
		Themes []themeSummary `json:"themes"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Themes) < 6 {
		t.Errorf("expected at least 6 themes, got %d", len(body.Themes))
	}
	defaults := 0
	for _, th := range body.Themes {
		if th.ID == "" || th.DisplayName == "" {
			t.Errorf("incomplete theme summary: %+v", th)
		}
		if th.Default {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default theme, got %d", defaults)
	}
}

// routedRequest runs a request through a chi router so URL params resolve.
func routedRequest(t *testing.T, register func(r chi.Router), method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	register(r)
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestThemesGet(t *testing.T) {
	h := NewThemesHandler()

	t.Run("known", func(t *testing.T) {
		rec := routedRequest(t, func(r chi.Router) { r.Get("/themes/{id}", h.Get) }, "GET", "/themes/sepia", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var th themeSummary
		if err := json.NewDecoder(rec.Body).Decode(&th); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if th.ID != "sepia" {
			t.Errorf("ID = %q, want sepia", th.ID)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		rec := routedRequest(t, func(r chi.Router) { r.Get("/themes/{id}", h.Get) }, "GET", "/themes/vaporwave", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestLayoutsList(t *testing.T) {
	req := httptest.NewRequest("GET", "/layouts", nil)
	recorder := httptest.NewRecorder()

	NewLayoutsHandler().List(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var body struct {
		Layouts []struct {
			ID     string `json:"id"`
			Blocks []struct {
				Type string `json:"type"`
			} `json:"blocks"`
		} `json:"layouts"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Layouts) != 3 {
		t.Errorf("expected 3 presets, got %d", len(body.Layouts))
	}
	for _, l := range body.Layouts {
		if l.ID == "" || len(l.Blocks) == 0 {
			t.Errorf("incomplete layout: %+v", l)
		}
	}
}

func TestLayoutsGetUnknown(t *testing.T) {
	h := NewLayoutsHandler()
	rec := routedRequest(t, func(r chi.Router) { r.Get("/layouts/{id}", h.Get) }, "GET", "/layouts/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func testExportHandler() *ExportHandler {
	cfg := config.Load()
	opts := []export.Option{
		export.WithImageProcessor(imageproc.New(imageproc.Options{CacheEnabled: true})),
		export.WithMapOptions(pages.WithProbe(func(context.Context, string) bool { return false })),
	}
	return NewExportHandler(cfg, opts)
}

func TestExportEndpoint(t *testing.T) {
	h := testExportHandler()

	t.Run("success", func(t *testing.T) {
		payload := []byte(`{
			"travels": [{"id": "t1", "name": "Неделя в Австрии", "countryName": "Австрия", "year": "2023", "numberDays": 7}],
			"settings": {"title": "Мои путешествия", "includeToc": true}
		}`)
		rec := routedRequest(t, func(r chi.Router) { r.Post("/export", h.Export) }, "POST", "/export", payload)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var doc export.Document
		if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if doc.PageCount < 3 {
			t.Errorf("PageCount = %d, expected cover, content and final pages", doc.PageCount)
		}
		if !strings.Contains(doc.HTML, "Неделя в Австрии") {
			t.Error("document missing the travel title")
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := routedRequest(t, func(r chi.Router) { r.Post("/export", h.Export) }, "POST", "/export", []byte("{nope"))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("no travels", func(t *testing.T) {
		rec := routedRequest(t, func(r chi.Router) { r.Post("/export", h.Export) }, "POST", "/export", []byte(`{"travels": [], "settings": {}}`))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown layout", func(t *testing.T) {
		rec := routedRequest(t, func(r chi.Router) { r.Post("/export", h.Export) }, "POST", "/export",
			[]byte(`{"travels": [{"id": "t1", "name": "x"}], "settings": {}, "layout": "bogus"}`))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSanitizeForLog(t *testing.T) {
	if got := sanitizeForLog("a\nb\rc"); got != "abc" {
		t.Errorf("sanitizeForLog = %q, want abc", got)
	}
}
