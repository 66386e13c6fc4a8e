package pages

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/metravel/bookgen/internal/book"
	"github.com/metravel/bookgen/internal/theme"
)

// DefaultLegendCap is how many locations the map legend lists before folding
// the rest into an overflow note.
const DefaultLegendCap = 8

const mapProbeTimeout = 5 * time.Second

// osmStaticMapURL is the fallback static-map provider used when no primary
// provider is configured or the primary does not respond.
const osmStaticMapURL = "https://staticmap.openstreetmap.de/staticmap.php"

// MapGenerator renders a travel's map page: a static map image plus a
// numbered location legend. It degrades through a provider chain and never
// fails; the worst case is an inline SVG placeholder.
type MapGenerator struct {
	theme     theme.Theme
	legendCap int

	// primaryURL is an optional preferred static-map endpoint taking the
	// same query parameters as the OSM fallback.
	primaryURL string

	// probe reports whether a candidate map URL is reachable. Replaceable
	// in tests.
	probe func(ctx context.Context, rawURL string) bool

	tmpl *template.Template
}

// MapOption adjusts a MapGenerator.
type MapOption func(*MapGenerator)

// WithLegendCap overrides the legend overflow threshold.
func WithLegendCap(n int) MapOption {
	return func(g *MapGenerator) {
		if n > 0 {
			g.legendCap = n
		}
	}
}

// WithPrimaryProvider sets the preferred static-map endpoint.
func WithPrimaryProvider(rawURL string) MapOption {
	return func(g *MapGenerator) { g.primaryURL = rawURL }
}

// WithProbe swaps the reachability check used on candidate map URLs.
func WithProbe(probe func(ctx context.Context, rawURL string) bool) MapOption {
	return func(g *MapGenerator) {
		if probe != nil {
			g.probe = probe
		}
	}
}

// NewMapGenerator creates a map page generator.
func NewMapGenerator(th theme.Theme, opts ...MapOption) *MapGenerator {
	g := &MapGenerator{
		theme:     th,
		legendCap: DefaultLegendCap,
		probe:     probeURL,
		tmpl:      parsePage("map.tmpl"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type mapLegendItem struct {
	Address  string
	Category string
}

type mapData struct {
	Theme         theme.Theme
	TravelName    string
	MapImageURL   string
	Legend        []mapLegendItem
	LocationCount int
	Overflow      int
	PageNumber    int
}

// Generate renders the map page for travelName. Points without an address
// are excluded from the legend; points without a parsable coordinate still
// appear there but do not contribute to the map centroid.
func (g *MapGenerator) Generate(ctx context.Context, travelName string, points []book.BookMapPoint, pageNumber int) string {
	legendPoints := make([]book.BookMapPoint, 0, len(points))
	for _, p := range points {
		if p.Address != "" {
			legendPoints = append(legendPoints, p)
		}
	}

	shown := legendPoints
	overflow := 0
	if len(legendPoints) > g.legendCap {
		shown = legendPoints[:g.legendCap]
		overflow = len(legendPoints) - g.legendCap
	}

	legend := make([]mapLegendItem, 0, len(shown))
	for _, p := range shown {
		legend = append(legend, mapLegendItem{Address: p.Address, Category: p.Category})
	}

	return renderPage(g.tmpl, mapData{
		Theme:         g.theme,
		TravelName:    travelName,
		MapImageURL:   g.resolveMapImage(ctx, points),
		Legend:        legend,
		LocationCount: len(legendPoints),
		Overflow:      overflow,
		PageNumber:    pageNumber,
	})
}

// resolveMapImage walks the provider chain: primary provider, OSM static
// map, inline SVG placeholder. With no parsable coordinates it goes straight
// to the placeholder.
func (g *MapGenerator) resolveMapImage(ctx context.Context, points []book.BookMapPoint) string {
	center, zoom, ok := mapBounds(points)
	if !ok {
		return placeholderMapURI("Карта")
	}

	query := staticMapQuery(center, zoom, points)
	if g.primaryURL != "" {
		candidate := g.primaryURL + "?" + query
		if g.probe(ctx, candidate) {
			return candidate
		}
	}
	candidate := osmStaticMapURL + "?" + query
	if g.probe(ctx, candidate) {
		return candidate
	}
	return placeholderMapURI(fmt.Sprintf("%.2f, %.2f", center.lat, center.lng))
}

type latLng struct {
	lat, lng float64
}

// mapBounds computes the centroid and a zoom level from the parsable
// coordinates. ok is false when no point carries a coordinate.
func mapBounds(points []book.BookMapPoint) (center latLng, zoom int, ok bool) {
	var coords []latLng
	for _, p := range points {
		if p.HasCoord {
			coords = append(coords, latLng{lat: p.Lat, lng: p.Lng})
		}
	}
	if len(coords) == 0 {
		return latLng{}, 0, false
	}

	var minLat, maxLat, minLng, maxLng float64
	for i, c := range coords {
		center.lat += c.lat
		center.lng += c.lng
		if i == 0 {
			minLat, maxLat, minLng, maxLng = c.lat, c.lat, c.lng, c.lng
			continue
		}
		minLat = min(minLat, c.lat)
		maxLat = max(maxLat, c.lat)
		minLng = min(minLng, c.lng)
		maxLng = max(maxLng, c.lng)
	}
	center.lat /= float64(len(coords))
	center.lng /= float64(len(coords))

	maxRange := max(maxLat-minLat, maxLng-minLng)
	switch {
	case maxRange > 10:
		zoom = 5
	case maxRange > 5:
		zoom = 7
	case maxRange > 1:
		zoom = 9
	case maxRange > 0.1:
		zoom = 11
	default:
		zoom = 13
	}
	return center, zoom, true
}

func staticMapQuery(center latLng, zoom int, points []book.BookMapPoint) string {
	q := url.Values{}
	q.Set("center", fmt.Sprintf("%f,%f", center.lat, center.lng))
	q.Set("zoom", fmt.Sprintf("%d", zoom))
	q.Set("size", "800x600")
	var markers []string
	for _, p := range points {
		if p.HasCoord {
			markers = append(markers, fmt.Sprintf("%f,%f,red-pushpin", p.Lat, p.Lng))
		}
	}
	if len(markers) > 0 {
		q.Set("markers", strings.Join(markers, "|"))
	}
	return q.Encode()
}

// placeholderMapURI builds an inline SVG stand-in so the page always has a
// map image reference.
func placeholderMapURI(label string) string {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600" viewBox="0 0 800 600">` +
		`<defs><pattern id="grid" width="40" height="40" patternUnits="userSpaceOnUse">` +
		`<path d="M 40 0 L 0 0 0 40" fill="none" stroke="#e0e0e0" stroke-width="1"/></pattern></defs>` +
		`<rect width="800" height="600" fill="#f5f5f5"/>` +
		`<rect width="800" height="600" fill="url(#grid)"/>` +
		`<circle cx="400" cy="300" r="60" fill="#5b8a7a" opacity="0.3"/>` +
		`<circle cx="400" cy="300" r="40" fill="#5b8a7a" opacity="0.5"/>` +
		`<circle cx="400" cy="300" r="20" fill="#5b8a7a"/>` +
		`<text x="400" y="400" font-family="Arial, sans-serif" font-size="18" fill="#4a4a4a" text-anchor="middle">` +
		escapeHTML(label) + `</text></svg>`
	return "data:image/svg+xml," + url.PathEscape(svg)
}

// probeURL checks reachability with a HEAD request.
func probeURL(ctx context.Context, rawURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, mapProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusBadRequest
}
