package export

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/metravel/bookgen/internal/layout"
	"github.com/metravel/bookgen/internal/theme"
)

var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.Stylesheet}}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type documentData struct {
	Title      string
	Stylesheet string
	Body       string
}

// renderDocument joins page sections into a standalone HTML file carrying
// the theme stylesheet.
func renderDocument(title string, th theme.Theme, mode layout.Mode, sections []string) (string, error) {
	var out strings.Builder
	err := documentTmpl.Execute(&out, documentData{
		Title:      template.HTMLEscapeString(title),
		Stylesheet: stylesheet(th, mode),
		Body:       strings.Join(sections, "\n"),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// stylesheet emits the document-level CSS derived from the theme and the
// paging mode. Page sections carry their own inline styles; this covers the
// shared shell and print behavior. In page-per-block mode every section ends
// its page; in flow mode paging is left to each block's own break hint.
func stylesheet(th theme.Theme, mode layout.Mode) string {
	pageBreakAfter := "auto"
	pageMargin := "0 auto 16px"
	if mode == layout.ModePagePerBlock {
		pageBreakAfter = "always"
		pageMargin = "0 auto"
	}
	return fmt.Sprintf(`* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: %s;
  color: %s;
  background: %s;
  font-size: %s;
  line-height: %s;
}
h1, h2, h3, h4 { font-family: %s; }
.pdf-page {
  width: 210mm;
  min-height: 297mm;
  margin: %s;
  background: %s;
  position: relative;
  overflow: hidden;
  page-break-after: %s;
}
.pdf-page:last-child { page-break-after: auto; }
img { max-width: 100%%; }
@media print {
  body { background: none; }
  .pdf-page { margin: 0; }
}`,
		th.Typography.BodyFont,
		th.Colors.Text,
		th.Colors.SurfaceAlt,
		th.Typography.Body.Size,
		th.Typography.Body.LineHeight,
		th.Typography.HeadingFont,
		pageMargin,
		th.Colors.Background,
		pageBreakAfter,
	)
}
