package render

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextOptions style one DrawText call. Size is in pixels; the surface may
// approximate it with the nearest face it has.
type TextOptions struct {
	Size       float64
	Color      string
	LineHeight float64
	Align      string
}

// Surface is the drawing seam between layout logic and pixel pushing. Tests
// substitute a recording fake; production uses an in-memory RGBA canvas.
type Surface interface {
	FillRect(x, y, w, h int, hexColor string)
	StrokeRect(x, y, w, h int, hexColor string, lineWidth int)
	DrawLine(x1, y1, x2, y2 int, hexColor string, lineWidth int)
	DrawText(text string, x, y, maxWidth int, opts TextOptions)
	Image() image.Image
}

// NewSurface creates a drawing surface of the given pixel size. It is the
// injectable factory used by the Renderer; a nil return error satisfies the
// fatal-on-failure contract for broken factories.
type NewSurface func(w, h int) (Surface, error)

// rgbaSurface paints on an in-memory RGBA image with the basicfont face.
type rgbaSurface struct {
	img *image.RGBA
}

// NewRGBASurface creates the default in-memory surface.
func NewRGBASurface(w, h int) (Surface, error) {
	return &rgbaSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

func (s *rgbaSurface) FillRect(x, y, w, h int, hexColor string) {
	draw.Draw(s.img, image.Rect(x, y, x+w, y+h), image.NewUniform(parseHexColor(hexColor)), image.Point{}, draw.Src)
}

func (s *rgbaSurface) StrokeRect(x, y, w, h int, hexColor string, lineWidth int) {
	if lineWidth < 1 {
		lineWidth = 1
	}
	s.FillRect(x, y, w, lineWidth, hexColor)
	s.FillRect(x, y+h-lineWidth, w, lineWidth, hexColor)
	s.FillRect(x, y, lineWidth, h, hexColor)
	s.FillRect(x+w-lineWidth, y, lineWidth, h, hexColor)
}

func (s *rgbaSurface) DrawLine(x1, y1, x2, y2 int, hexColor string, lineWidth int) {
	if lineWidth < 1 {
		lineWidth = 1
	}
	// Axis-aligned lines only; that is all the page painter emits.
	if y1 == y2 {
		s.FillRect(min(x1, x2), y1, abs(x2-x1), lineWidth, hexColor)
		return
	}
	s.FillRect(x1, min(y1, y2), lineWidth, abs(y2-y1), hexColor)
}

func (s *rgbaSurface) DrawText(text string, x, y, maxWidth int, opts TextOptions) {
	face := basicfont.Face7x13
	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.4
	}
	step := int(float64(face.Height)*lineHeight + 0.5)

	drawer := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(parseHexColor(opts.Color)),
		Face: face,
	}

	for i, line := range wrapText(text, maxWidth/face.Advance) {
		lineX := x
		lineWidth := len(line) * face.Advance
		switch opts.Align {
		case "center":
			lineX = x + (maxWidth-lineWidth)/2
		case "right":
			lineX = x + maxWidth - lineWidth
		}
		drawer.Dot = fixed.P(lineX, y+face.Ascent+i*step)
		drawer.DrawString(line)
	}
}

func (s *rgbaSurface) Image() image.Image {
	return s.img
}

// wrapText splits text into lines of at most maxChars characters, breaking
// on spaces. Words longer than the budget get their own line.
func wrapText(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len([]rune(candidate)) > maxChars && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// parseHexColor parses #rgb and #rrggbb colors, defaulting to black.
func parseHexColor(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			c.R = uint8((v >> 8 & 0xf) * 0x11)
			c.G = uint8((v >> 4 & 0xf) * 0x11)
			c.B = uint8((v & 0xf) * 0x11)
		}
	case 6:
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			c.R = uint8(v >> 16)
			c.G = uint8(v >> 8)
			c.B = uint8(v)
		}
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
