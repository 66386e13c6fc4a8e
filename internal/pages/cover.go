package pages

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/imageproc"
	"github.com/metravel/bookgen/internal/theme"
)

var ruMonthsGenitive = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDateRu renders t as a Russian long date, e.g. "2 января 2026".
func FormatDateRu(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), ruMonthsGenitive[t.Month()-1], t.Year())
}

// Quote is an optional epigraph shown on the cover or final page.
type Quote struct {
	Text   string
	Author string
}

// CoverGenerator renders the book cover.
type CoverGenerator struct {
	theme  theme.Theme
	images *imageproc.Processor
	quote  *Quote
	tmpl   *template.Template
}

// NewCoverGenerator creates a cover generator. quote may be nil.
func NewCoverGenerator(th theme.Theme, images *imageproc.Processor, quote *Quote) *CoverGenerator {
	return &CoverGenerator{
		theme:  th,
		images: images,
		quote:  quote,
		tmpl:   parsePage("cover.tmpl"),
	}
}

type coverData struct {
	Theme       theme.Theme
	Title       string
	Subtitle    string
	Author      string
	CoverImage  string
	TravelCount int
	YearRange   string
	Quote       string
	QuoteAuthor string
	GeneratedAt string
}

// Generate renders the cover page for model.
func (g *CoverGenerator) Generate(ctx context.Context, model book.BookModel) string {
	data := coverData{
		Theme:       g.theme,
		Title:       model.Meta.Title,
		Subtitle:    model.Meta.Subtitle,
		Author:      model.Meta.Author,
		TravelCount: model.Meta.TravelCount,
		YearRange:   book.YearRange(model.Travels),
		GeneratedAt: FormatDateRu(model.Meta.GeneratedAt),
	}
	if raw := g.resolveCoverImage(model); raw != "" {
		data.CoverImage = g.images.ProcessURL(ctx, raw)
	}
	if g.quote != nil {
		data.Quote = g.quote.Text
		data.QuoteAuthor = g.quote.Author
	}
	return renderPage(g.tmpl, data)
}

// resolveCoverImage prefers the user-picked image, then the first travel's
// hero image, then its first gallery photo.
func (g *CoverGenerator) resolveCoverImage(model book.BookModel) string {
	if model.Settings.CoverImage != "" {
		return model.Settings.CoverImage
	}
	if len(model.Travels) == 0 {
		return ""
	}
	first := model.Travels[0]
	if first.HeroImageURL != "" {
		return first.HeroImageURL
	}
	if len(first.Gallery) > 0 {
		return first.Gallery[0].URL
	}
	return ""
}
