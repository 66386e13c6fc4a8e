// Package pages renders one book page per call. Every generator owns a theme
// and an embedded template and returns a self-contained markup fragment for
// exactly one page. User text goes through esc at the embedding site, the
// template never receives pre-escaped strings.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// escapeHTML escapes the characters that break out of markup or attribute
// context.
func escapeHTML(s string) string {
	replacer := strings.NewReplacer(
		`&`, `&amp;`,
		`<`, `&lt;`,
		`>`, `&gt;`,
		`"`, `&quot;`,
		`'`, `&#039;`,
	)
	return replacer.Replace(s)
}

// pluralRu picks the Russian plural form for n. forms holds the one/few/many
// variants, e.g. путешествие/путешествия/путешествий.
func pluralRu(n int, forms [3]string) string {
	if n < 0 {
		n = -n
	}
	if n%100 > 4 && n%100 < 20 {
		return forms[2]
	}
	cases := [6]int{2, 0, 1, 1, 1, 2}
	idx := n % 10
	if idx > 5 {
		idx = 5
	}
	return forms[cases[idx]]
}

// TravelLabel returns the travel-count noun form.
func TravelLabel(n int) string {
	return pluralRu(n, [3]string{"путешествие", "путешествия", "путешествий"})
}

// PhotoLabel returns the photo-count noun form.
func PhotoLabel(n int) string {
	return pluralRu(n, [3]string{"фотография", "фотографии", "фотографий"})
}

// LocationLabel returns the location-count noun form.
func LocationLabel(n int) string {
	return pluralRu(n, [3]string{"локация", "локации", "локаций"})
}

// DayLabel returns the day-count noun form.
func DayLabel(n int) string {
	return pluralRu(n, [3]string{"день", "дня", "дней"})
}

func pageFuncMap() template.FuncMap {
	return template.FuncMap{
		"esc":           escapeHTML,
		"travelLabel":   TravelLabel,
		"photoLabel":    PhotoLabel,
		"locationLabel": LocationLabel,
		"dayLabel":      DayLabel,
		"add":           func(a, b int) int { return a + b },
	}
}

// parsePage parses one embedded page template by file name.
func parsePage(name string) *template.Template {
	tmpl, err := template.New(name).Funcs(pageFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		// Templates are compiled in; a parse failure is a build defect.
		panic(fmt.Sprintf("parse page template %s: %v", name, err))
	}
	return tmpl
}

// renderPage executes tmpl with data. Template execution over already-shaped
// data cannot fail at runtime, so errors surface as a panic the same way a
// broken template would.
func renderPage(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("execute page template %s: %v", tmpl.Name(), err))
	}
	return buf.String()
}
