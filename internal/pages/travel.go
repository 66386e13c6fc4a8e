package pages

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/imageproc"
	"github.com/metravel/bookgen/internal/theme"
)

// TravelGenerator renders the per-travel content pages: the hero photo page,
// the description and recommendation text pages, and the pros/cons page.
type TravelGenerator struct {
	theme  theme.Theme
	images *imageproc.Processor

	photoTmpl    *template.Template
	textTmpl     *template.Template
	prosConsTmpl *template.Template
}

// NewTravelGenerator creates a travel content generator.
func NewTravelGenerator(th theme.Theme, images *imageproc.Processor) *TravelGenerator {
	return &TravelGenerator{
		theme:        th,
		images:       images,
		photoTmpl:    parsePage("travel_photo.tmpl"),
		textTmpl:     parsePage("text_section.tmpl"),
		prosConsTmpl: parsePage("proscons.tmpl"),
	}
}

type travelPhotoData struct {
	Theme      theme.Theme
	Title      string
	ImageURL   string
	MetaLine   string
	PageNumber int
}

// GeneratePhotoPage renders the travel opener with the hero photo and the
// country/year/days meta line. Without a hero photo it falls back to a
// typographic opener.
func (g *TravelGenerator) GeneratePhotoPage(ctx context.Context, t book.BookTravel, pageNumber int) string {
	data := travelPhotoData{
		Theme:      g.theme,
		Title:      t.Title,
		MetaLine:   travelMetaLine(t),
		PageNumber: pageNumber,
	}
	if t.HeroImageURL != "" {
		data.ImageURL = g.images.ProcessURL(ctx, t.HeroImageURL)
	}
	return renderPage(g.photoTmpl, data)
}

type textSectionData struct {
	Theme      theme.Theme
	Heading    string
	TravelName string
	Paragraphs []string
	EmptyText  string
	PageNumber int
}

// GenerateDescription renders the description page. An empty description
// still produces the page with a muted placeholder line.
func (g *TravelGenerator) GenerateDescription(t book.BookTravel, pageNumber int) string {
	return renderPage(g.textTmpl, textSectionData{
		Theme:      g.theme,
		Heading:    "Описание",
		TravelName: t.Title,
		Paragraphs: splitParagraphs(t.Description),
		EmptyText:  "Описание путешествия отсутствует",
		PageNumber: pageNumber,
	})
}

// GenerateRecommendation renders the recommendation page.
func (g *TravelGenerator) GenerateRecommendation(t book.BookTravel, pageNumber int) string {
	return renderPage(g.textTmpl, textSectionData{
		Theme:      g.theme,
		Heading:    "Рекомендации",
		TravelName: t.Title,
		Paragraphs: splitParagraphs(t.Recommendation),
		EmptyText:  "Рекомендации отсутствуют",
		PageNumber: pageNumber,
	})
}

type prosConsData struct {
	Theme      theme.Theme
	TravelName string
	Pros       []string
	Cons       []string
	PageNumber int
}

// GenerateProsCons renders the two-column pros/cons page. Either column may
// be empty; with both empty the caller should skip the page.
func (g *TravelGenerator) GenerateProsCons(t book.BookTravel, pageNumber int) string {
	return renderPage(g.prosConsTmpl, prosConsData{
		Theme:      g.theme,
		TravelName: t.Title,
		Pros:       splitParagraphs(t.Pros),
		Cons:       splitParagraphs(t.Cons),
		PageNumber: pageNumber,
	})
}

// travelMetaLine joins country, year and day count with bullets, skipping
// empty pieces.
func travelMetaLine(t book.BookTravel) string {
	var parts []string
	if t.Country != "" {
		parts = append(parts, t.Country)
	}
	if t.Year != "" {
		parts = append(parts, t.Year)
	}
	if t.Days > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", t.Days, DayLabel(t.Days)))
	}
	return strings.Join(parts, " • ")
}

// splitParagraphs breaks free text into paragraphs on blank or single line
// breaks, dropping empty lines.
func splitParagraphs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
