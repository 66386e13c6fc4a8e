package imageproc

import (
	"context"
	"strings"
	"testing"
	"time"
)

func testOptions() Options {
	return Options{
		ProxyEnabled: true,
		ProxyURL:     "https://images.weserv.nl/",
		MaxWidth:     1600,
		CacheEnabled: true,
		CacheTTL:     time.Minute,
	}
}

// --- BuildSafeURL ---

func TestBuildSafeURL(t *testing.T) {
	p := New(testOptions())

	t.Run("empty input", func(t *testing.T) {
		if got := p.BuildSafeURL(""); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})

	t.Run("local path passes through", func(t *testing.T) {
		if got := p.BuildSafeURL("/local/path.jpg"); got != "/local/path.jpg" {
			t.Errorf("expected unchanged path, got %q", got)
		}
	})

	t.Run("data uri passes through", func(t *testing.T) {
		uri := "data:image/png;base64,AAAA"
		if got := p.BuildSafeURL(uri); got != uri {
			t.Errorf("expected unchanged data uri, got %q", got)
		}
	})

	t.Run("https url is proxied", func(t *testing.T) {
		got := p.BuildSafeURL("https://example.com/image.jpg")
		if !strings.Contains(got, "images.weserv.nl") {
			t.Errorf("expected proxy host in %q", got)
		}
		if !strings.Contains(got, "w=1600") {
			t.Errorf("expected width param in %q", got)
		}
		if !strings.Contains(got, "output=webp") {
			t.Errorf("expected output param in %q", got)
		}
		if !strings.Contains(got, "url=https%3A%2F%2Fexample.com%2Fimage.jpg") {
			t.Errorf("expected encoded origin url in %q", got)
		}
	})

	t.Run("wrong scheme returned unchanged", func(t *testing.T) {
		if got := p.BuildSafeURL("ftp://example.com/a.jpg"); got != "ftp://example.com/a.jpg" {
			t.Errorf("expected unchanged ftp url, got %q", got)
		}
	})

	t.Run("whitespace only", func(t *testing.T) {
		if got := p.BuildSafeURL("   "); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})

	t.Run("proxy disabled", func(t *testing.T) {
		opts := testOptions()
		opts.ProxyEnabled = false
		direct := New(opts)
		url := "https://example.com/image.jpg"
		if got := direct.BuildSafeURL(url); got != url {
			t.Errorf("expected unchanged url, got %q", got)
		}
	})
}

// --- ProcessURL ---

func TestProcessURL(t *testing.T) {
	t.Run("cache stable and resolver hit once", func(t *testing.T) {
		p := New(testOptions())
		calls := 0
		inner := p.BuildSafeURL
		p.resolver = func(raw string) string {
			calls++
			return inner(raw)
		}

		ctx := context.Background()
		first := p.ProcessURL(ctx, "https://example.com/a.jpg")
		second := p.ProcessURL(ctx, "https://example.com/a.jpg")
		if first != second {
			t.Errorf("expected identical results, got %q vs %q", first, second)
		}
		if calls != 1 {
			t.Errorf("expected 1 resolver call, got %d", calls)
		}
	})

	t.Run("stale entry re-resolved", func(t *testing.T) {
		opts := testOptions()
		opts.CacheTTL = 10 * time.Millisecond
		p := New(opts)
		calls := 0
		p.resolver = func(raw string) string {
			calls++
			return "resolved:" + raw
		}

		clock := time.Now()
		p.now = func() time.Time { return clock }

		ctx := context.Background()
		p.ProcessURL(ctx, "https://example.com/a.jpg")
		clock = clock.Add(20 * time.Millisecond)
		p.ProcessURL(ctx, "https://example.com/a.jpg")
		if calls != 2 {
			t.Errorf("expected re-resolve after TTL, got %d calls", calls)
		}
	})

	t.Run("cache disabled resolves every time", func(t *testing.T) {
		opts := testOptions()
		opts.CacheEnabled = false
		p := New(opts)
		calls := 0
		p.resolver = func(raw string) string {
			calls++
			return raw
		}
		ctx := context.Background()
		p.ProcessURL(ctx, "https://example.com/a.jpg")
		p.ProcessURL(ctx, "https://example.com/a.jpg")
		if calls != 2 {
			t.Errorf("expected 2 resolver calls, got %d", calls)
		}
	})

	t.Run("empty url short-circuits", func(t *testing.T) {
		p := New(testOptions())
		if got := p.ProcessURL(context.Background(), ""); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
		if p.CacheLen() != 0 {
			t.Error("empty url must not be cached")
		}
	})
}

// --- PreloadImages ---

func TestPreloadImages(t *testing.T) {
	t.Run("empty slice resolves", func(t *testing.T) {
		p := New(testOptions())
		p.PreloadImages(context.Background(), nil)
		if p.CacheLen() != 0 {
			t.Errorf("expected empty cache, got %d entries", p.CacheLen())
		}
	})

	t.Run("populates cache including malformed urls", func(t *testing.T) {
		p := New(testOptions())
		urls := []string{
			"https://example.com/1.jpg",
			"https://example.com/2.jpg",
			"not a url at all",
			"ftp://weird/3.jpg",
		}
		p.PreloadImages(context.Background(), urls)
		if p.CacheLen() != len(urls) {
			t.Errorf("expected %d cached entries, got %d", len(urls), p.CacheLen())
		}
	})

	t.Run("cancelled context stops early without panic", func(t *testing.T) {
		p := New(testOptions())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p.PreloadImages(ctx, []string{"https://example.com/1.jpg"})
	})
}

// --- Cache maintenance ---

func TestCacheMaintenance(t *testing.T) {
	t.Run("clear cache", func(t *testing.T) {
		p := New(testOptions())
		p.ProcessURL(context.Background(), "https://example.com/a.jpg")
		if p.CacheLen() != 1 {
			t.Fatalf("expected 1 entry, got %d", p.CacheLen())
		}
		p.ClearCache()
		if p.CacheLen() != 0 {
			t.Errorf("expected empty cache, got %d", p.CacheLen())
		}
	})

	t.Run("cleanup evicts only stale entries", func(t *testing.T) {
		opts := testOptions()
		opts.CacheTTL = 50 * time.Millisecond
		p := New(opts)

		clock := time.Now()
		p.now = func() time.Time { return clock }

		ctx := context.Background()
		p.ProcessURL(ctx, "https://example.com/old.jpg")
		clock = clock.Add(100 * time.Millisecond)
		p.ProcessURL(ctx, "https://example.com/new.jpg")

		p.Cleanup()
		if p.CacheLen() != 1 {
			t.Errorf("expected 1 surviving entry, got %d", p.CacheLen())
		}
	})
}
