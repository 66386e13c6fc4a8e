package pages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/imageproc"
	"github.com/metravel/bookgen/internal/theme"
)

func testProcessor() *imageproc.Processor {
	opts := imageproc.DefaultOptions()
	opts.ProxyEnabled = false
	return imageproc.New(opts)
}

func coverModel(title string, travels []book.BookTravel) book.BookModel {
	return book.BookModel{
		Meta: book.BookMeta{
			Title:       title,
			Author:      "Мария",
			TravelCount: len(travels),
			GeneratedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		Travels: travels,
	}
}

func TestCoverGenerate(t *testing.T) {
	th := theme.Get("minimal")

	t.Run("escapes hostile title", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		model := coverModel(`<script>alert("xss")</script>`, nil)
		out := gen.Generate(context.Background(), model)
		if strings.Contains(out, "<script>") {
			t.Error("output contains raw script tag")
		}
		if !strings.Contains(out, "&lt;script&gt;") {
			t.Error("output missing escaped title")
		}
	})

	t.Run("pluralizes travel count", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		single := coverModel("Книга", []book.BookTravel{{Title: "A"}})
		out := gen.Generate(context.Background(), single)
		if !strings.Contains(out, "1 путешествие") || strings.Contains(out, "путешествия") {
			t.Errorf("singular form missing in %q", out)
		}

		three := coverModel("Книга", []book.BookTravel{{Title: "A"}, {Title: "B"}, {Title: "C"}})
		if out := gen.Generate(context.Background(), three); !strings.Contains(out, "3 путешествия") {
			t.Error("few form missing")
		}

		five := coverModel("Книга", make([]book.BookTravel, 5))
		if out := gen.Generate(context.Background(), five); !strings.Contains(out, "5 путешествий") {
			t.Error("many form missing")
		}
	})

	t.Run("long word wrapping styles present", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		out := gen.Generate(context.Background(), coverModel("Книга", nil))
		for _, prop := range []string{"overflow-wrap", "word-break", "hyphens"} {
			if !strings.Contains(out, prop) {
				t.Errorf("missing %s in cover output", prop)
			}
		}
	})

	t.Run("no pseudo selectors in inline styles", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		out := gen.Generate(context.Background(), coverModel("Книга", nil))
		if strings.Contains(out, "&::") || strings.Contains(out, "::after") || strings.Contains(out, "::before") {
			t.Error("inline styles must not carry pseudo-selector syntax")
		}
	})

	t.Run("generation date stamp", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		out := gen.Generate(context.Background(), coverModel("Книга", nil))
		if !strings.Contains(out, "Создано 1 июня 2024") {
			t.Error("missing generation date stamp")
		}
	})

	t.Run("year range shown with dash", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		model := coverModel("Книга", []book.BookTravel{{Title: "A", Year: "2020"}, {Title: "B", Year: "2024"}})
		out := gen.Generate(context.Background(), model)
		if !strings.Contains(out, "2020–2024") {
			t.Error("missing year range")
		}
	})

	t.Run("cover image from first travel hero", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), nil)
		model := coverModel("Книга", []book.BookTravel{{Title: "A", HeroImageURL: "https://example.com/hero.jpg"}})
		out := gen.Generate(context.Background(), model)
		if !strings.Contains(out, "https://example.com/hero.jpg") {
			t.Error("cover image not embedded")
		}
	})

	t.Run("quote rendered escaped", func(t *testing.T) {
		gen := NewCoverGenerator(th, testProcessor(), &Quote{Text: "Мир <велик>", Author: "Автор"})
		out := gen.Generate(context.Background(), coverModel("Книга", nil))
		if !strings.Contains(out, "Мир &lt;велик&gt;") {
			t.Error("quote missing or unescaped")
		}
		if !strings.Contains(out, "Автор") {
			t.Error("quote author missing")
		}
	})
}
