// Package imageproc resolves photo URLs to canvas-safe, optionally proxied
// and cached URLs. Browsers taint a canvas when painting cross-origin images
// without CORS headers; routing remote images through a weserv-style proxy
// that returns permissive headers keeps rasterization working without every
// image host cooperating.
package imageproc

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const preloadConcurrency = 4

// Options configures a Processor.
type Options struct {
	ProxyEnabled bool
	ProxyURL     string
	MaxWidth     int
	CacheEnabled bool
	CacheTTL     time.Duration
}

// DefaultOptions returns the production proxy configuration.
func DefaultOptions() Options {
	return Options{
		ProxyEnabled: true,
		ProxyURL:     "https://images.weserv.nl/",
		MaxWidth:     1600,
		CacheEnabled: true,
		CacheTTL:     5 * time.Minute,
	}
}

type cacheEntry struct {
	value      string
	insertedAt time.Time
}

// Processor rewrites image URLs and memoizes results. The cache is owned by
// the instance, not shared process-wide, so parallel export jobs stay
// isolated unless they deliberately share a Processor.
type Processor struct {
	opts Options

	// resolver computes the safe URL for a cache miss. Replaceable in tests
	// to count resolution calls.
	resolver func(string) string

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time
}

// New creates a Processor with the given options.
func New(opts Options) *Processor {
	p := &Processor{
		opts:  opts,
		cache: make(map[string]cacheEntry),
		now:   time.Now,
	}
	p.resolver = p.BuildSafeURL
	return p
}

// BuildSafeURL is the synchronous, cache-free rewrite. It never fails:
// whatever comes in, some string comes out.
//
// Empty input stays empty; data URIs and rooted paths are already safe and
// pass through; absolute http(s) URLs are rewritten onto the proxy when
// proxying is enabled; everything else (ftp:, garbage, whitespace) is
// returned unchanged.
func (p *Processor) BuildSafeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "data:") || strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	if !p.opts.ProxyEnabled || p.opts.ProxyURL == "" {
		return trimmed
	}

	q := url.Values{}
	q.Set("url", trimmed)
	q.Set("w", strconv.Itoa(p.opts.MaxWidth))
	q.Set("output", "webp")
	return p.opts.ProxyURL + "?" + q.Encode()
}

// ProcessURL resolves a URL through the TTL cache. Stale entries are
// re-resolved in place on lookup.
func (p *Processor) ProcessURL(ctx context.Context, raw string) string {
	if raw == "" {
		return ""
	}
	if !p.opts.CacheEnabled {
		return p.resolver(raw)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.cache[raw]; ok && p.now().Sub(entry.insertedAt) <= p.opts.CacheTTL {
		return entry.value
	}

	value := p.resolver(raw)
	p.cache[raw] = cacheEntry{value: value, insertedAt: p.now()}
	return value
}

// PreloadImages warms the cache for a batch of URLs with a bounded worker
// pool. Best effort: malformed URLs are processed like any other and never
// abort the batch.
func (p *Processor) PreloadImages(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}

	jobs := make(chan string, len(urls))
	for _, u := range urls {
		jobs <- u
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < preloadConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range jobs {
				if ctx.Err() != nil {
					return
				}
				p.ProcessURL(ctx, u)
			}
		}()
	}
	wg.Wait()
}

// ClearCache drops all entries immediately.
func (p *Processor) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]cacheEntry)
}

// Cleanup sweeps entries whose age exceeds the TTL.
func (p *Processor) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	cutoff := p.now()
	for key, entry := range p.cache {
		if cutoff.Sub(entry.insertedAt) > p.opts.CacheTTL {
			delete(p.cache, key)
		}
	}
}

// CacheLen reports the current number of cached entries.
func (p *Processor) CacheLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cache)
}
