package pages

import (
	"fmt"
	"text/template"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/theme"
)

// GalleryLayout selects the photo arrangement of a gallery page.
type GalleryLayout string

const (
	LayoutGrid     GalleryLayout = "grid"
	LayoutMosaic   GalleryLayout = "mosaic"
	LayoutCollage  GalleryLayout = "collage"
	LayoutPolaroid GalleryLayout = "polaroid"
)

// ParseGalleryLayout maps a settings string to a layout, defaulting to grid.
func ParseGalleryLayout(s string) GalleryLayout {
	switch GalleryLayout(s) {
	case LayoutMosaic, LayoutCollage, LayoutPolaroid:
		return GalleryLayout(s)
	default:
		return LayoutGrid
	}
}

// GalleryOptions tunes one gallery page's presentation.
type GalleryOptions struct {
	Layout GalleryLayout
	// Columns is the grid column count, clamped to 1..4. Mosaic, collage
	// and polaroid layouts have fixed geometries and ignore it.
	Columns         int
	ShowCaptions    bool
	CaptionPosition string // none, overlay, top or bottom
	Spacing         string // compact, normal or spacious
}

// GalleryOptionsFor derives gallery options from the book settings,
// clamping out-of-range values and filling defaults.
func GalleryOptionsFor(s book.BookSettings) GalleryOptions {
	opts := GalleryOptions{
		Layout:          ParseGalleryLayout(s.GalleryLayout),
		Columns:         s.GalleryColumns,
		ShowCaptions:    s.ShowCaptions,
		CaptionPosition: s.CaptionPosition,
		Spacing:         s.GallerySpacing,
	}
	if opts.Columns == 0 {
		opts.Columns = 3
	}
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	if opts.Columns > 4 {
		opts.Columns = 4
	}
	switch opts.CaptionPosition {
	case "none", "overlay", "top", "bottom":
	default:
		opts.CaptionPosition = "bottom"
	}
	return opts
}

// gridGapMm maps the spacing setting to the grid gap in millimeters.
func gridGapMm(spacing string) int {
	switch spacing {
	case "compact":
		return 3
	case "spacious":
		return 8
	default:
		return 6
	}
}

// GalleryGenerator renders a photo gallery page. It is pure: photo URLs are
// expected to be already resolved to safe form by the caller.
type GalleryGenerator struct {
	theme theme.Theme
	tmpl  *template.Template
}

// NewGalleryGenerator creates a gallery generator.
func NewGalleryGenerator(th theme.Theme) *GalleryGenerator {
	return &GalleryGenerator{theme: th, tmpl: parsePage("gallery.tmpl")}
}

type galleryTile struct {
	URL          string
	Caption      string
	UserCaption  bool
	WrapperStyle string
}

type galleryData struct {
	Theme      theme.Theme
	TravelName string
	Layout     string
	Columns    int
	GapMm      int
	CaptionPos string
	Tiles      []galleryTile
	PhotoCount int
	PageNumber int
}

// Generate renders one gallery page. Every photo gets a tile; layouts with a
// base pattern repeat it cyclically instead of dropping trailing photos.
// An empty photo slice still renders the page shell with the header.
func (g *GalleryGenerator) Generate(travelName string, photos []book.BookPhoto, opts GalleryOptions, pageNumber int) string {
	captionPos := ""
	if opts.Layout == LayoutGrid && opts.ShowCaptions && opts.CaptionPosition != "none" {
		captionPos = opts.CaptionPosition
	}
	return renderPage(g.tmpl, galleryData{
		Theme:      g.theme,
		TravelName: travelName,
		Layout:     string(opts.Layout),
		Columns:    opts.Columns,
		GapMm:      gridGapMm(opts.Spacing),
		CaptionPos: captionPos,
		Tiles:      g.buildTiles(photos, opts.Layout, captionPos != ""),
		PhotoCount: len(photos),
		PageNumber: pageNumber,
	})
}

func (g *GalleryGenerator) buildTiles(photos []book.BookPhoto, layout GalleryLayout, gridCaptions bool) []galleryTile {
	tiles := make([]galleryTile, 0, len(photos))
	for i, photo := range photos {
		tile := galleryTile{URL: photo.URL}
		switch layout {
		case LayoutMosaic:
			tile.WrapperStyle = mosaicSpanStyle(i)
		case LayoutCollage:
			tile.WrapperStyle = collagePositionStyle(i)
		case LayoutPolaroid:
			tile.WrapperStyle = polaroidRotationStyle(i)
			tile.Caption, tile.UserCaption = photoCaption(photo, i)
		default:
			if gridCaptions {
				tile.Caption, tile.UserCaption = photoCaption(photo, i)
			}
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// photoCaption picks the user's caption or a numbered placeholder.
func photoCaption(photo book.BookPhoto, i int) (string, bool) {
	if photo.Caption != "" {
		return photo.Caption, true
	}
	return fmt.Sprintf("Фото %d", i+1), false
}

// mosaicPattern alternates hero tiles spanning 2x2 with single cells.
var mosaicPattern = [8]bool{true, false, false, false, true, false, false, false}

func mosaicSpanStyle(i int) string {
	if mosaicPattern[i%len(mosaicPattern)] {
		return "grid-column: span 2; grid-row: span 2;"
	}
	return "grid-column: span 1; grid-row: span 1;"
}

// collagePositions are six hand-tuned overlapping frames. Further photos
// reuse the cycle with a slight offset so stacks stay visible.
var collagePositions = [6]string{
	"top: 0; left: 0; width: 45%; height: 55%; z-index: 1;",
	"top: 0; right: 0; width: 50%; height: 45%; z-index: 2;",
	"top: 40%; left: 5%; width: 40%; height: 35%; z-index: 3;",
	"bottom: 0; left: 0; width: 35%; height: 40%; z-index: 2;",
	"bottom: 5%; right: 5%; width: 45%; height: 50%; z-index: 1;",
	"top: 50%; left: 40%; width: 25%; height: 30%; z-index: 4;",
}

func collagePositionStyle(i int) string {
	base := collagePositions[i%len(collagePositions)]
	style := "position: absolute; " + base +
		" overflow: hidden; border-radius: 12px; box-shadow: 0 8px 24px rgba(0,0,0,0.15); border: 3px solid #ffffff;"
	if cycle := i / len(collagePositions); cycle > 0 {
		style += fmt.Sprintf(" transform: translate(%dmm, %dmm);", 4*cycle, 4*cycle)
	}
	return style
}

// polaroidRotations tilt frames deterministically by index, so the same
// input always renders the same page.
var polaroidRotations = [5]int{-2, -1, 0, 1, 2}

func polaroidRotationStyle(i int) string {
	return fmt.Sprintf("transform: rotate(%ddeg);", polaroidRotations[i%len(polaroidRotations)])
}
