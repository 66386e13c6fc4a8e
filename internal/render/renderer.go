package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/metravel/bookgen/internal/theme"
)

const defaultDPI = 300

// Renderer rasterizes structured pages to bitmap data URIs. Both the
// drawing surface and the encoder are injectable seams.
type Renderer struct {
	dpi        float64
	newSurface NewSurface
	encoder    Encoder
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDPI sets the rasterization resolution.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithSurfaceFactory swaps the drawing surface constructor.
func WithSurfaceFactory(f NewSurface) Option {
	return func(r *Renderer) {
		if f != nil {
			r.newSurface = f
		}
	}
}

// WithEncoder swaps the bitmap encoder.
func WithEncoder(e Encoder) Option {
	return func(r *Renderer) {
		if e != nil {
			r.encoder = e
		}
	}
}

// NewRenderer builds a renderer with the in-memory surface and PNG output
// unless options say otherwise.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		dpi:        defaultDPI,
		newSurface: NewRGBASurface,
		encoder:    NewEncoder(FormatPNG, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderPage paints one page and encodes it. A surface that cannot be
// created is a hard error for the page, never a silently blank result.
func (r *Renderer) RenderPage(ctx context.Context, page Page, th theme.Theme) (RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return RenderedPage{}, err
	}

	w, h := pixelSize(page.Format, page.Orientation, r.dpi)
	surface, err := r.newSurface(w, h)
	if err != nil {
		return RenderedPage{}, fmt.Errorf("create %dx%d surface for page %s: %w", w, h, page.ID, err)
	}
	if surface == nil {
		return RenderedPage{}, fmt.Errorf("create %dx%d surface for page %s: factory returned nil", w, h, page.ID)
	}

	r.paintBackground(surface, page, th, w, h)
	for _, block := range page.Blocks {
		if block.Hidden {
			continue
		}
		r.paintBlock(surface, block, th, w, h)
	}

	data, err := r.encoder.Encode(surface.Image())
	if err != nil {
		return RenderedPage{}, fmt.Errorf("encode page %s: %w", page.ID, err)
	}

	return RenderedPage{
		PageID:     page.ID,
		PageNumber: page.PageNumber,
		ImageData:  data,
		Width:      w,
		Height:     h,
	}, nil
}

// RenderPages rasterizes pages in order, stopping at the first failure.
func (r *Renderer) RenderPages(ctx context.Context, pages []Page, th theme.Theme) ([]RenderedPage, error) {
	rendered := make([]RenderedPage, 0, len(pages))
	for _, page := range pages {
		rp, err := r.RenderPage(ctx, page, th)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, rp)
	}
	return rendered, nil
}

func (r *Renderer) paintBackground(s Surface, page Page, th theme.Theme, w, h int) {
	// Gradients are approximated with their first stop; the surface has no
	// gradient primitive.
	switch {
	case len(page.Background.Gradient) > 0:
		s.FillRect(0, 0, w, h, page.Background.Gradient[0])
	case page.Background.Color != "":
		s.FillRect(0, 0, w, h, page.Background.Color)
	default:
		s.FillRect(0, 0, w, h, th.Colors.Background)
	}
}

func (r *Renderer) paintBlock(s Surface, block Block, th theme.Theme, pageW, pageH int) {
	x, y, w, h := r.blockRect(block.Position, pageW, pageH)

	switch block.Kind {
	case KindHeading1:
		s.DrawText(block.Text, x, y, w, r.textOptions(block, th, th.Typography.H1.Size, 34))
	case KindHeading2:
		s.DrawText(block.Text, x, y, w, r.textOptions(block, th, th.Typography.H2.Size, 24))
	case KindHeading3:
		s.DrawText(block.Text, x, y, w, r.textOptions(block, th, th.Typography.H3.Size, 18))
	case KindParagraph:
		s.DrawText(block.Text, x, y, w, r.textOptions(block, th, th.Typography.Body.Size, 11))
	case KindImage, KindMap:
		// Bitmaps are not decoded here; the block paints as a framed
		// placeholder carrying its source reference.
		fill := block.Styles.BackgroundColor
		if fill == "" {
			fill = th.Colors.SurfaceAlt
		}
		s.FillRect(x, y, w, h, fill)
		s.StrokeRect(x, y, w, h, th.Colors.Border, r.mmToPx(0.3))
		if block.ImageURL == "" {
			s.DrawText("(изображение недоступно)", x, y+h/2, w, TextOptions{
				Size:  r.ptToPx(9),
				Color: th.Colors.TextMuted,
				Align: "center",
			})
		}
	case KindQuote:
		s.FillRect(x, y, r.mmToPx(1.2), h, th.Colors.Accent)
		s.DrawText(block.Text, x+r.mmToPx(4), y, w-r.mmToPx(4), r.textOptions(block, th, th.Typography.Body.Size, 12))
	case KindTip:
		r.paintCallout(s, block, th.Colors.TipBlock, x, y, w, h)
	case KindImportant:
		r.paintCallout(s, block, th.Colors.InfoBlock, x, y, w, h)
	case KindWarning:
		r.paintCallout(s, block, th.Colors.WarningBlock, x, y, w, h)
	case KindDivider:
		lineColor := block.Styles.Color
		if lineColor == "" {
			lineColor = th.Colors.Border
		}
		s.DrawLine(x, y+h/2, x+w, y+h/2, lineColor, r.mmToPx(0.3))
	case KindSpacer:
		// Nothing to paint.
	}
}

func (r *Renderer) paintCallout(s Surface, block Block, palette theme.BlockPalette, x, y, w, h int) {
	s.FillRect(x, y, w, h, palette.Background)
	s.StrokeRect(x, y, w, h, palette.Border, r.mmToPx(0.3))
	pad := r.mmToPx(3)
	s.DrawText(block.Text, x+pad, y+pad, w-2*pad, TextOptions{
		Size:       r.resolveFontSize(block, "", 10),
		Color:      palette.Text,
		LineHeight: block.Styles.LineHeight,
		Align:      block.Styles.TextAlign,
	})
}

// blockRect converts the declared position into pixel coordinates. Percent
// positions are relative to the full page.
func (r *Renderer) blockRect(pos Position, pageW, pageH int) (x, y, w, h int) {
	if pos.Unit == UnitPercent {
		x = int(pos.X/100*float64(pageW) + 0.5)
		y = int(pos.Y/100*float64(pageH) + 0.5)
		w = int(pos.Width/100*float64(pageW) + 0.5)
		h = int(pos.Height/100*float64(pageH) + 0.5)
		return x, y, w, h
	}
	return r.mmToPxF(pos.X), r.mmToPxF(pos.Y), r.mmToPxF(pos.Width), r.mmToPxF(pos.Height)
}

func (r *Renderer) textOptions(block Block, th theme.Theme, themeSize string, fallbackPt float64) TextOptions {
	color := block.Styles.Color
	if color == "" {
		color = th.Colors.Text
	}
	return TextOptions{
		Size:       r.resolveFontSize(block, themeSize, fallbackPt),
		Color:      color,
		LineHeight: block.Styles.LineHeight,
		Align:      block.Styles.TextAlign,
	}
}

func (r *Renderer) resolveFontSize(block Block, themeSize string, fallbackPt float64) float64 {
	pt := block.Styles.FontSize
	if pt <= 0 {
		pt = parsePt(themeSize, fallbackPt)
	}
	return r.ptToPx(pt)
}

func (r *Renderer) mmToPx(mm float64) int {
	px := int(mm*r.dpi/25.4 + 0.5)
	if px < 1 {
		px = 1
	}
	return px
}

func (r *Renderer) mmToPxF(mm float64) int {
	return int(mm*r.dpi/25.4 + 0.5)
}

func (r *Renderer) ptToPx(pt float64) float64 {
	return pt * r.dpi / 72
}

// parsePt reads the numeric part of a size like "42pt". Anything it cannot
// parse yields the fallback.
func parsePt(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "pt")
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && v > 0 {
		return v
	}
	return fallback
}
