package pages

import (
	"text/template"

	"github.com/metravel/bookgen/internal/theme"
)

// FinalGenerator renders the closing thank-you page.
type FinalGenerator struct {
	theme theme.Theme
	quote *Quote
	tmpl  *template.Template
}

// NewFinalGenerator creates a final page generator. quote may be nil.
func NewFinalGenerator(th theme.Theme, quote *Quote) *FinalGenerator {
	return &FinalGenerator{theme: th, quote: quote, tmpl: parsePage("final.tmpl")}
}

type finalData struct {
	Theme       theme.Theme
	Quote       string
	QuoteAuthor string
	PageNumber  int
}

// Generate renders the final page.
func (g *FinalGenerator) Generate(pageNumber int) string {
	data := finalData{Theme: g.theme, PageNumber: pageNumber}
	if g.quote != nil {
		data.Quote = g.quote.Text
		data.QuoteAuthor = g.quote.Author
	}
	return renderPage(g.tmpl, data)
}
