package export

import (
	"github.com/metravel/bookgen/internal/config"
	"github.com/metravel/bookgen/internal/imageproc"
	"github.com/metravel/bookgen/internal/pages"
)

// OptionsFromConfig translates runtime configuration into exporter options.
// Callers append request-specific options (layout, quote, progress) on top.
func OptionsFromConfig(cfg *config.Config) []Option {
	images := imageproc.New(imageproc.Options{
		ProxyEnabled: cfg.Images.ProxyEnabled,
		ProxyURL:     cfg.Images.ProxyURL,
		MaxWidth:     cfg.Images.MaxWidth,
		CacheEnabled: true,
		CacheTTL:     cfg.Images.CacheTTL,
	})

	mapOpts := []pages.MapOption{}
	if cfg.Maps.LegendCap > 0 {
		mapOpts = append(mapOpts, pages.WithLegendCap(cfg.Maps.LegendCap))
	}
	if cfg.Maps.PrimaryURL != "" {
		mapOpts = append(mapOpts, pages.WithPrimaryProvider(cfg.Maps.PrimaryURL))
	}

	return []Option{
		WithImageProcessor(images),
		WithMapOptions(mapOpts...),
	}
}
