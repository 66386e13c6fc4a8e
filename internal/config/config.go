// Package config loads runtime settings from the environment with embedded
// defaults. Everything has a working default so a bare `bookgen export`
// produces a book without any environment at all.
package config

import (
	_ "embed"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed quotes.yaml
var quotesYAML []byte

type Config struct {
	Server ServerConfig
	Images ImageConfig
	Maps   MapConfig
	Export ExportConfig
	Quotes QuotesConfig
}

type ServerConfig struct {
	Port           int           // HTTP listen port (default 8080)
	RequestTimeout time.Duration // per-request budget (default 120s)
}

// ImageConfig drives the image proxy pipeline. The proxy keeps remote
// photos canvas-safe; see internal/imageproc.
type ImageConfig struct {
	ProxyEnabled bool
	ProxyURL     string // weserv-compatible endpoint
	MaxWidth     int    // resize cap in pixels
	CacheTTL     time.Duration
}

type MapConfig struct {
	PrimaryURL string // preferred static-map endpoint, OSM fallback when empty
	LegendCap  int    // locations listed before "И еще N"
}

type ExportConfig struct {
	Theme         string // default theme id
	Layout        string // default layout preset id
	GalleryLayout string
}

// QuotesConfig is the embedded pool of cover and closing quotes.
type QuotesConfig struct {
	Quotes []Quote `yaml:"quotes"`
}

// Quote is one attributed epigraph.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

// CoverQuote picks the quote for a book. The pick is stable per title so
// re-exports of the same book look identical.
func (c *Config) CoverQuote(title string) Quote {
	quotes := c.Quotes.Quotes
	if len(quotes) == 0 {
		return Quote{}
	}
	sum := 0
	for _, r := range title {
		sum += int(r)
	}
	return quotes[sum%len(quotes)]
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envBool reads an environment variable as a boolean, defaulting when unset
// or unparsable.
func envBool(key string, defaultVal bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return defaultVal
}

// envString returns the variable's value or the default when unset.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var quotes QuotesConfig
	if err := yaml.Unmarshal(quotesYAML, &quotes); err != nil {
		// Embedded file; cannot fail outside a broken build.
		panic("failed to unmarshal embedded quotes.yaml: " + err.Error())
	}

	return &Config{
		Server: ServerConfig{
			Port:           envInt("BOOKGEN_PORT", 8080),
			RequestTimeout: time.Duration(envInt("BOOKGEN_REQUEST_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Images: ImageConfig{
			ProxyEnabled: envBool("IMAGE_PROXY_ENABLED", true),
			ProxyURL:     envString("IMAGE_PROXY_URL", "https://images.weserv.nl/"),
			MaxWidth:     envInt("IMAGE_MAX_WIDTH", 1600),
			CacheTTL:     time.Duration(envInt("IMAGE_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Maps: MapConfig{
			PrimaryURL: os.Getenv("MAP_PROVIDER_URL"),
			LegendCap:  envInt("MAP_LEGEND_CAP", 8),
		},
		Export: ExportConfig{
			Theme:         envString("BOOK_THEME", "minimal"),
			Layout:        envString("BOOK_LAYOUT", "full-book"),
			GalleryLayout: envString("BOOK_GALLERY_LAYOUT", "grid"),
		},
		Quotes: quotes,
	}
}
