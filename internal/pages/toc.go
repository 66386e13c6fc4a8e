package pages

import (
	"strings"
	"text/template"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/theme"
)

// tocItemsPerPage is how many entries fit on one TOC page at the default
// typography. Callers paginate longer books by slicing entries themselves.
const tocItemsPerPage = 12

// TocEntry is one table-of-contents line.
type TocEntry struct {
	Title     string
	MetaLine  string
	StartPage int
}

// TocEntryFor builds the entry for a travel starting at startPage. The meta
// line joins country and year with a bullet, skipping empties.
func TocEntryFor(t book.BookTravel, startPage int) TocEntry {
	var parts []string
	if t.Country != "" {
		parts = append(parts, t.Country)
	}
	if t.Year != "" {
		parts = append(parts, t.Year)
	}
	return TocEntry{
		Title:     t.Title,
		MetaLine:  strings.Join(parts, " • "),
		StartPage: startPage,
	}
}

// TocGenerator renders the table of contents.
type TocGenerator struct {
	theme theme.Theme
	tmpl  *template.Template
}

// NewTocGenerator creates a TOC generator.
func NewTocGenerator(th theme.Theme) *TocGenerator {
	return &TocGenerator{theme: th, tmpl: parsePage("toc.tmpl")}
}

type tocData struct {
	Theme       theme.Theme
	Entries     []TocEntry
	TravelCount int
	PageNumber  int
}

// Generate renders one TOC page listing entries. travelCount is the whole
// book's travel count, which can exceed len(entries) when the TOC spans
// multiple pages.
func (g *TocGenerator) Generate(entries []TocEntry, travelCount, pageNumber int) string {
	return renderPage(g.tmpl, tocData{
		Theme:       g.theme,
		Entries:     entries,
		TravelCount: travelCount,
		PageNumber:  pageNumber,
	})
}

// EstimatePageCount reports how many TOC pages entries would need. Always at
// least one: an empty book still gets its contents page.
func (g *TocGenerator) EstimatePageCount(entries []TocEntry) int {
	if len(entries) <= tocItemsPerPage {
		return 1
	}
	return (len(entries) + tocItemsPerPage - 1) / tocItemsPerPage
}
