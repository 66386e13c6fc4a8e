// Package render rasterizes structured pages to bitmap images. The caller
// pre-computes every block's position; this package only paints where told.
package render

// PaperFormat names a supported page size.
type PaperFormat string

const (
	FormatA4     PaperFormat = "A4"
	FormatA5     PaperFormat = "A5"
	FormatLetter PaperFormat = "Letter"
)

// paperSize holds portrait dimensions in millimeters.
type paperSize struct {
	widthMm  float64
	heightMm float64
}

var paperSizes = map[PaperFormat]paperSize{
	FormatA4:     {widthMm: 210, heightMm: 297},
	FormatA5:     {widthMm: 148, heightMm: 210},
	FormatLetter: {widthMm: 215.9, heightMm: 279.4},
}

// Orientation flips the paper dimensions.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Unit declares what a Position's numbers mean.
type Unit string

const (
	UnitMm      Unit = "mm"
	UnitPercent Unit = "percent"
)

// Position places a block on the page.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   Unit    `json:"unit"`
}

// BlockKind is the closed set of paintable block types. The renderer
// dispatches with an exhaustive switch, so a new kind is a compile-visible
// change in one place.
type BlockKind string

const (
	KindHeading1  BlockKind = "heading-h1"
	KindHeading2  BlockKind = "heading-h2"
	KindHeading3  BlockKind = "heading-h3"
	KindParagraph BlockKind = "paragraph"
	KindImage     BlockKind = "image"
	KindMap       BlockKind = "map"
	KindQuote     BlockKind = "quote"
	KindTip       BlockKind = "tip-block"
	KindImportant BlockKind = "important-block"
	KindWarning   BlockKind = "warning-block"
	KindDivider   BlockKind = "divider"
	KindSpacer    BlockKind = "spacer"
)

// Valid reports whether k is a known block kind.
func (k BlockKind) Valid() bool {
	switch k {
	case KindHeading1, KindHeading2, KindHeading3, KindParagraph, KindImage,
		KindMap, KindQuote, KindTip, KindImportant, KindWarning, KindDivider, KindSpacer:
		return true
	}
	return false
}

// BorderStyle describes a block border. Width is in millimeters.
type BorderStyle struct {
	Width  float64 `json:"width"`
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
}

// BlockStyles carries per-block style overrides; empty fields fall back to
// the theme.
type BlockStyles struct {
	FontSize        float64      `json:"fontSize,omitempty"` // pt
	FontFamily      string       `json:"fontFamily,omitempty"`
	Color           string       `json:"color,omitempty"`
	BackgroundColor string       `json:"backgroundColor,omitempty"`
	LineHeight      float64      `json:"lineHeight,omitempty"`
	TextAlign       string       `json:"textAlign,omitempty"`
	Border          *BorderStyle `json:"border,omitempty"`
}

// Block is one positioned paintable unit. Text carries textual content for
// text-bearing kinds; ImageURL references the bitmap for image kinds.
type Block struct {
	ID       string      `json:"id"`
	Kind     BlockKind   `json:"type"`
	Position Position    `json:"position"`
	Styles   BlockStyles `json:"styles"`
	Text     string      `json:"content,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
	Hidden   bool        `json:"hidden,omitempty"`
}

// Background describes the page backdrop. Gradient, when present, has two
// stops and wins over Color.
type Background struct {
	Color    string   `json:"color,omitempty"`
	Gradient []string `json:"gradient,omitempty"`
}

// Margins in millimeters.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Page is one structured page ready for rasterization.
type Page struct {
	ID          string      `json:"id"`
	PageNumber  int         `json:"pageNumber"`
	Format      PaperFormat `json:"format"`
	Orientation Orientation `json:"orientation"`
	Background  Background  `json:"background"`
	Margins     Margins     `json:"margins"`
	Blocks      []Block     `json:"blocks"`
}

// RenderedPage is the rasterized output of one page. ImageData is an
// embeddable data URI in the renderer's configured format.
type RenderedPage struct {
	PageID     string `json:"pageId"`
	PageNumber int    `json:"pageNumber"`
	ImageData  string `json:"imageData"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// pixelSize computes the canvas dimensions for format and orientation at
// dpi. Unknown formats fall back to A4.
func pixelSize(format PaperFormat, orientation Orientation, dpi float64) (w, h int) {
	size, ok := paperSizes[format]
	if !ok {
		size = paperSizes[FormatA4]
	}
	wMm, hMm := size.widthMm, size.heightMm
	if orientation == Landscape {
		wMm, hMm = hMm, wMm
	}
	perMm := dpi / 25.4
	return int(wMm*perMm + 0.5), int(hMm*perMm + 0.5)
}
