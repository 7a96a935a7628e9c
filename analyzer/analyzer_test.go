package analyzer

import (
	"testing"
	"time"
)

func TestAnalyzerCaching(t *testing.T) {
	a, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	defer a.Shutdown()

	html := "<h2>lamp</h2> <p>De lamp staat centraal in dit verhaal.</p>"

	if a.IsCached(html, "lamp") {
		t.Error("fresh analyzer should not report a cache hit")
	}

	first := a.Analyze(html, "lamp")
	if !a.IsCached(html, "lamp") {
		t.Error("result should be cached after first analysis")
	}

	second := a.Analyze(html, "lamp")
	if first != second {
		t.Error("cache hit should return the stored result")
	}

	// Different keywords form a different cache key.
	if a.IsCached(html, "hout") {
		t.Error("different keywords must not share a cache entry")
	}

	cs := a.GetCacheStats()
	if cs.Entries != 1 {
		t.Errorf("entries = %d, want 1", cs.Entries)
	}
	if cs.CacheHits != 1 || cs.CacheMisses != 1 {
		t.Errorf("hits = %d, misses = %d, want 1 and 1", cs.CacheHits, cs.CacheMisses)
	}
}

func TestAnalyzerCacheExpiry(t *testing.T) {
	a, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	defer a.Shutdown()

	html := "<p>tekst</p>"
	a.Analyze(html, "lamp")

	a.SetCacheTTL(time.Nanosecond)
	time.Sleep(time.Millisecond)
	if a.IsCached(html, "lamp") {
		t.Error("expired entry must not count as cached")
	}

	a.SetCacheTTL(30 * time.Minute)
	a.Analyze(html, "lamp")
	a.ClearCache()
	if cs := a.GetCacheStats(); cs.Entries != 0 {
		t.Errorf("entries after clear = %d, want 0", cs.Entries)
	}
}

func TestAnalyzerCountsUsage(t *testing.T) {
	a, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	defer a.Shutdown()

	a.GetStats().IncrementGenerations()
	a.GetStats().IncrementModifications()

	current := a.GetStats().GetCurrentStats()
	if current.Generations != 1 || current.Modifications != 1 {
		t.Errorf("generations = %d, modifications = %d, want 1 and 1", current.Generations, current.Modifications)
	}
}
