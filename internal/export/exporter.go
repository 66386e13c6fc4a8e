// Package export drives a full book export: it normalizes the input travels,
// walks the layout blocks in order and assembles the generated pages into one
// final HTML document.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/imageproc"
	"github.com/metravel/bookgen/internal/layout"
	"github.com/metravel/bookgen/internal/pages"
	"github.com/metravel/bookgen/internal/theme"
)

// Progress is called after every generated page.
type Progress func(done, total int)

// Document is the result of one export.
type Document struct {
	Title       string    `json:"title"`
	Theme       string    `json:"theme"`
	PageCount   int       `json:"pageCount"`
	HTML        string    `json:"html"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Exporter assembles book documents. The zero value is not usable; construct
// with New.
type Exporter struct {
	images   *imageproc.Processor
	layout   layout.Layout
	quote    *pages.Quote
	mapOpts  []pages.MapOption
	progress Progress
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithImageProcessor swaps the image pipeline.
func WithImageProcessor(p *imageproc.Processor) Option {
	return func(e *Exporter) {
		if p != nil {
			e.images = p
		}
	}
}

// WithLayout selects the block layout driving the export.
func WithLayout(l layout.Layout) Option {
	return func(e *Exporter) { e.layout = l }
}

// WithQuote sets the cover and final page quote.
func WithQuote(q pages.Quote) Option {
	return func(e *Exporter) { e.quote = &q }
}

// WithProgress installs a progress callback.
func WithProgress(p Progress) Option {
	return func(e *Exporter) { e.progress = p }
}

// WithMapOptions forwards options to the map page generator.
func WithMapOptions(opts ...pages.MapOption) Option {
	return func(e *Exporter) { e.mapOpts = append(e.mapOpts, opts...) }
}

// New builds an Exporter with the full-book layout and default image
// pipeline unless options say otherwise.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		images: imageproc.New(imageproc.DefaultOptions()),
	}
	if l, ok := layout.DefaultLayout("full-book"); ok {
		e.layout = l
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// pageJob is one planned page, carrying the layout block so per-block
// config and page-break hints survive into rendering.
type pageJob struct {
	block  layout.Block
	travel int
}

// Export builds the complete document for travels under the given settings.
// Page numbers increase monotonically across the whole book; blocks that
// would render empty (a gallery without photos, a map without locations) are
// skipped without leaving gaps.
func (e *Exporter) Export(ctx context.Context, travels []book.TravelForBook, settings book.BookSettings) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := book.BuildFromTravels(travels, settings)
	th := theme.Get(settings.Template)
	blocks := e.layout.EnabledBlocks()

	jobs := e.planTravelJobs(model, blocks)

	tocWanted := settings.IncludeToc && blockEnabled(blocks, layout.BlockToc) && len(model.Travels) > 0
	tocGen := pages.NewTocGenerator(th)
	var tocEntries []pages.TocEntry
	tocPages := 0
	if tocWanted {
		tocEntries = e.planTocEntries(model, jobs, tocGen)
		tocPages = tocGen.EstimatePageCount(tocEntries)
	}

	total := 1 + tocPages + len(jobs) + 1 // cover + toc + travel pages + final
	if model.QR != nil {
		total++
	}

	coverGen := pages.NewCoverGenerator(th, e.images, e.quote)
	galleryGen := pages.NewGalleryGenerator(th)
	mapGen := pages.NewMapGenerator(th, e.mapOpts...)
	travelGen := pages.NewTravelGenerator(th, e.images)
	qrGen := pages.NewQRGenerator(th)
	finalGen := pages.NewFinalGenerator(th, e.quote)

	galleryOpts := pages.GalleryOptionsFor(settings)

	var sections []string
	done := 0
	emit := func(html string) {
		sections = append(sections, html)
		done++
		if e.progress != nil {
			e.progress(done, total)
		}
	}

	mode := e.layout.Mode
	bookBreak := breakStyle(layout.Block{}.EffectiveBreak(mode))

	emit(withBreakStyle(coverGen.Generate(ctx, model), blockBreak(blocks, layout.BlockCover, mode)))

	pageNumber := 2
	if tocWanted {
		tocBreak := blockBreak(blocks, layout.BlockToc, mode)
		for _, chunk := range chunkTocEntries(tocEntries, tocPages) {
			emit(withBreakStyle(tocGen.Generate(chunk, model.Meta.TravelCount, pageNumber), tocBreak))
			pageNumber++
		}
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := model.Travels[job.travel]
		bs := breakStyle(job.block.EffectiveBreak(mode))
		switch job.block.Type {
		case layout.BlockPhoto:
			emit(withBreakStyle(travelGen.GeneratePhotoPage(ctx, t, pageNumber), bs))
		case layout.BlockDescription:
			emit(withBreakStyle(travelGen.GenerateDescription(t, pageNumber), bs))
		case layout.BlockRecommendation:
			emit(withBreakStyle(travelGen.GenerateRecommendation(t, pageNumber), bs))
		case layout.BlockPlus, layout.BlockMinus:
			emit(withBreakStyle(travelGen.GenerateProsCons(t, pageNumber), bs))
		case layout.BlockGallery:
			e.images.PreloadImages(ctx, photoURLs(t.Gallery))
			emit(withBreakStyle(galleryGen.Generate(t.Title, e.resolvePhotos(ctx, t.Gallery), galleryOpts, pageNumber), bs))
		case layout.BlockMap:
			emit(withBreakStyle(mapGen.Generate(ctx, t.Title, t.MapPoints, pageNumber), bs))
		case layout.BlockQR:
			emit(withBreakStyle(qrGen.Generate(book.QRTarget{URL: t.ShareURL, Label: t.Title}, pageNumber), bs))
		case layout.BlockSpacer:
			emit(spacerSection(spacerHeight(job.block.Config), bs))
		}
		pageNumber++
	}

	if model.QR != nil {
		emit(withBreakStyle(qrGen.Generate(*model.QR, pageNumber), bookBreak))
		pageNumber++
	}

	emit(withBreakStyle(finalGen.Generate(pageNumber), bookBreak))

	html, err := renderDocument(model.Meta.Title, th, mode, sections)
	if err != nil {
		return nil, fmt.Errorf("assemble document: %w", err)
	}

	return &Document{
		Title:       model.Meta.Title,
		Theme:       th.Name,
		PageCount:   done,
		HTML:        html,
		GeneratedAt: model.Meta.GeneratedAt,
	}, nil
}

// planTravelJobs expands the layout's travel-level blocks across every
// travel, dropping blocks that would render empty. Plus and minus collapse
// into a single pros/cons page.
func (e *Exporter) planTravelJobs(model book.BookModel, blocks []layout.Block) []pageJob {
	var jobs []pageJob
	for i, t := range model.Travels {
		prosConsPlanned := false
		for _, b := range blocks {
			switch b.Type {
			case layout.BlockPhoto, layout.BlockDescription, layout.BlockRecommendation, layout.BlockSpacer:
				jobs = append(jobs, pageJob{block: b, travel: i})
			case layout.BlockPlus, layout.BlockMinus:
				if prosConsPlanned || (t.Pros == "" && t.Cons == "") {
					continue
				}
				prosConsPlanned = true
				jobs = append(jobs, pageJob{block: b, travel: i})
			case layout.BlockGallery:
				if model.Settings.IncludeGallery && len(t.Gallery) > 0 {
					jobs = append(jobs, pageJob{block: b, travel: i})
				}
			case layout.BlockMap:
				if model.Settings.IncludeMap && len(t.MapPoints) > 0 {
					jobs = append(jobs, pageJob{block: b, travel: i})
				}
			case layout.BlockQR:
				if t.ShareURL != "" {
					jobs = append(jobs, pageJob{block: b, travel: i})
				}
			}
		}
	}
	return jobs
}

// planTocEntries computes each travel's start page from the planned jobs.
// Travels that ended up with no content pages are left out of the TOC
// entirely; spacers are layout filler and never count as a travel's start.
func (e *Exporter) planTocEntries(model book.BookModel, jobs []pageJob, tocGen *pages.TocGenerator) []pages.TocEntry {
	firstJob := make(map[int]int, len(model.Travels))
	for pos, job := range jobs {
		if job.block.Type == layout.BlockSpacer {
			continue
		}
		if _, seen := firstJob[job.travel]; !seen {
			firstJob[job.travel] = pos
		}
	}

	listed := make([]pages.TocEntry, 0, len(firstJob))
	for range firstJob {
		listed = append(listed, pages.TocEntry{})
	}
	tocPages := tocGen.EstimatePageCount(listed)

	entries := make([]pages.TocEntry, 0, len(firstJob))
	for i, t := range model.Travels {
		pos, ok := firstJob[i]
		if !ok {
			continue
		}
		entries = append(entries, pages.TocEntryFor(t, 1+tocPages+1+pos))
	}
	return entries
}

func (e *Exporter) resolvePhotos(ctx context.Context, photos []book.BookPhoto) []book.BookPhoto {
	resolved := make([]book.BookPhoto, len(photos))
	for i, p := range photos {
		p.URL = e.images.ProcessURL(ctx, p.URL)
		resolved[i] = p
	}
	return resolved
}

func photoURLs(photos []book.BookPhoto) []string {
	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		urls = append(urls, p.URL)
	}
	return urls
}

// breakStyle maps a resolved page-break policy to inline CSS.
func breakStyle(pb layout.PageBreak) string {
	switch pb {
	case layout.BreakAlways:
		return "page-break-before: always;"
	case layout.BreakAvoid:
		return "page-break-inside: avoid;"
	default:
		return ""
	}
}

// withBreakStyle injects the break CSS into the section's style attribute.
// Every page template opens with a styled <section>, so the first style
// attribute is always the page-level one.
func withBreakStyle(html, css string) string {
	if css == "" {
		return html
	}
	return strings.Replace(html, `style="`, `style="`+css+" ", 1)
}

// blockBreak resolves the break style for a book-level block type. A block
// absent from the layout falls back to the mode's default policy.
func blockBreak(blocks []layout.Block, t layout.BlockType, mode layout.Mode) string {
	for _, b := range blocks {
		if b.Type == t {
			return breakStyle(b.EffectiveBreak(mode))
		}
	}
	return breakStyle(layout.Block{}.EffectiveBreak(mode))
}

// spacerSection renders a blank filler page of the given height.
func spacerSection(height, breakCSS string) string {
	return fmt.Sprintf(`<section class="pdf-page spacer-page" style="%s">
  <div style="height: %s;"></div>
</section>`, breakCSS, height)
}

// spacerHeight reads the block's configured height. Strings pass through
// as CSS lengths, JSON numbers are taken as millimeters.
func spacerHeight(config map[string]any) string {
	switch h := config["height"].(type) {
	case string:
		if h != "" && !strings.ContainsAny(h, `"<>`) {
			return h
		}
	case float64:
		if h > 0 {
			return fmt.Sprintf("%gmm", h)
		}
	case int:
		if h > 0 {
			return fmt.Sprintf("%dmm", h)
		}
	}
	return "20mm"
}

func blockEnabled(blocks []layout.Block, t layout.BlockType) bool {
	for _, b := range blocks {
		if b.Type == t {
			return true
		}
	}
	return false
}

// chunkTocEntries splits entries evenly over pageCount pages.
func chunkTocEntries(entries []pages.TocEntry, pageCount int) [][]pages.TocEntry {
	if pageCount < 1 {
		pageCount = 1
	}
	per := (len(entries) + pageCount - 1) / pageCount
	if per < 1 {
		per = 1
	}
	var chunks [][]pages.TocEntry
	for start := 0; start < len(entries); start += per {
		end := start + per
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[start:end])
	}
	if len(chunks) == 0 {
		chunks = [][]pages.TocEntry{entries}
	}
	return chunks
}
