package pages

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/theme"
)

func mapPoints(n int) []book.BookMapPoint {
	points := make([]book.BookMapPoint, n)
	for i := range points {
		points[i] = book.BookMapPoint{
			ID:       fmt.Sprintf("p%d", i+1),
			Address:  fmt.Sprintf("Улица %d", i+1),
			Coord:    fmt.Sprintf("53.%d,27.%d", i+1, i+1),
			Lat:      53.0 + float64(i+1)/100,
			Lng:      27.0 + float64(i+1)/100,
			HasCoord: true,
		}
	}
	return points
}

func newTestMapGenerator(t *testing.T, reachable bool, opts ...MapOption) *MapGenerator {
	t.Helper()
	g := NewMapGenerator(theme.Get("minimal"), opts...)
	g.probe = func(context.Context, string) bool { return reachable }
	return g
}

func TestMapGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("legend overflow arithmetic", func(t *testing.T) {
		gen := newTestMapGenerator(t, true)
		out := gen.Generate(ctx, "Минск", mapPoints(12), 5)
		if !strings.Contains(out, "Локации (12)") {
			t.Error("missing legend header with total count")
		}
		if !strings.Contains(out, "И еще 4") {
			t.Error("missing overflow note")
		}
	})

	t.Run("no overflow under the cap", func(t *testing.T) {
		gen := newTestMapGenerator(t, true)
		out := gen.Generate(ctx, "Минск", mapPoints(8), 5)
		if strings.Contains(out, "И еще") {
			t.Error("unexpected overflow note")
		}
		if !strings.Contains(out, "Локации (8)") {
			t.Error("missing legend header")
		}
	})

	t.Run("configurable legend cap", func(t *testing.T) {
		gen := newTestMapGenerator(t, true, WithLegendCap(3))
		out := gen.Generate(ctx, "Минск", mapPoints(12), 5)
		if !strings.Contains(out, "И еще 9") {
			t.Error("cap override not applied")
		}
	})

	t.Run("addressless points excluded from legend", func(t *testing.T) {
		points := mapPoints(3)
		points[1].Address = ""
		gen := newTestMapGenerator(t, true)
		out := gen.Generate(ctx, "Минск", points, 5)
		if !strings.Contains(out, "Локации (2)") {
			t.Error("addressless point must not be counted")
		}
	})

	t.Run("unparsable coords still listed with address", func(t *testing.T) {
		points := []book.BookMapPoint{
			{ID: "a", Address: "Проспект Независимости", Coord: "garbage"},
		}
		gen := newTestMapGenerator(t, true)
		out := gen.Generate(ctx, "Минск", points, 5)
		if !strings.Contains(out, "Проспект Независимости") {
			t.Error("address missing from legend")
		}
		// No valid coordinate anywhere: placeholder map, not a provider URL.
		if !strings.Contains(out, "data:image/svg+xml") {
			t.Error("expected SVG placeholder map")
		}
	})

	t.Run("provider unreachable falls back to placeholder", func(t *testing.T) {
		gen := newTestMapGenerator(t, false, WithPrimaryProvider("https://maps.example.com/static"))
		out := gen.Generate(ctx, "Минск", mapPoints(2), 5)
		if !strings.Contains(out, "data:image/svg+xml") {
			t.Error("expected SVG placeholder after provider chain failure")
		}
	})

	t.Run("primary provider preferred when reachable", func(t *testing.T) {
		gen := newTestMapGenerator(t, true, WithPrimaryProvider("https://maps.example.com/static"))
		out := gen.Generate(ctx, "Минск", mapPoints(2), 5)
		if !strings.Contains(out, "maps.example.com") {
			t.Error("primary provider not used")
		}
	})

	t.Run("escapes addresses", func(t *testing.T) {
		points := []book.BookMapPoint{{ID: "a", Address: `<iframe>`, HasCoord: true, Lat: 53, Lng: 27}}
		gen := newTestMapGenerator(t, true)
		out := gen.Generate(ctx, "Минск", points, 5)
		if strings.Contains(out, "<iframe>") {
			t.Error("address not escaped")
		}
	})

	t.Run("empty points renders map shell without legend", func(t *testing.T) {
		gen := newTestMapGenerator(t, true)
		out := gen.Generate(ctx, "Минск", nil, 5)
		if !strings.Contains(out, "Карта путешествия") {
			t.Error("missing map header")
		}
		if strings.Contains(out, "Локации") {
			t.Error("legend rendered for empty input")
		}
	})
}

func TestMapBounds(t *testing.T) {
	t.Run("centroid of valid points", func(t *testing.T) {
		points := []book.BookMapPoint{
			{HasCoord: true, Lat: 50, Lng: 20},
			{HasCoord: true, Lat: 54, Lng: 28},
		}
		center, zoom, ok := mapBounds(points)
		if !ok {
			t.Fatal("expected bounds")
		}
		if center.lat != 52 || center.lng != 24 {
			t.Errorf("center = %+v", center)
		}
		if zoom != 7 {
			t.Errorf("zoom = %d, want 7", zoom)
		}
	})

	t.Run("no coords", func(t *testing.T) {
		if _, _, ok := mapBounds([]book.BookMapPoint{{Address: "x"}}); ok {
			t.Error("expected no bounds")
		}
	})

	t.Run("tight cluster zooms in", func(t *testing.T) {
		points := []book.BookMapPoint{
			{HasCoord: true, Lat: 53.90, Lng: 27.56},
			{HasCoord: true, Lat: 53.91, Lng: 27.57},
		}
		_, zoom, _ := mapBounds(points)
		if zoom != 13 {
			t.Errorf("zoom = %d, want 13", zoom)
		}
	})
}
