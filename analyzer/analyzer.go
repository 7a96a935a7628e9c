package analyzer

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	analysis  *SeoAnalysis
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// Analyzer wraps the pure scoring engine with a TTL-bounded result
// cache. The editor re-scores on every keystroke pause, so identical
// document+keyword pairs repeat often.
type Analyzer struct {
	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stats           *stats.Storage
}

// New creates a new Analyzer instance backed by persistent counters in
// dataDir.
func New(dataDir string) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	analyzer := &Analyzer{
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stats:           statsStorage,
	}

	go analyzer.periodicCleanup()

	return analyzer, nil
}

// periodicCleanup removes expired entries from the cache periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		a.cleanup()
	}
}

// cleanup removes expired entries and ensures the cache size limit
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))

		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetCacheTTL sets the cache TTL
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the analysis cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// cacheKey derives a unique key for a document and keyword pair
func cacheKey(htmlContent, keywords string) string {
	hash := md5.Sum([]byte(keywords + "\x00" + htmlContent))
	return hex.EncodeToString(hash[:])
}

// IsCached checks whether a document+keyword pair is cached and fresh
func (a *Analyzer) IsCached(htmlContent, keywords string) bool {
	key := cacheKey(htmlContent, keywords)
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	current := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     len(a.cache),
		CacheHits:   current.AnalysisCacheHits,
		CacheMisses: current.AnalysisCacheMisses,
		CacheTTL:    a.cacheTTL,
	}
}

// Analyze scores the given HTML against the target keywords, serving
// repeated identical inputs from the cache.
func (a *Analyzer) Analyze(htmlContent, targetKeywordsCsv string) *SeoAnalysis {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	key := cacheKey(htmlContent, targetKeywordsCsv)
	a.cacheMutex.RLock()
	if entry, found := a.cache[key]; found {
		if time.Since(entry.timestamp) < a.cacheTTL {
			a.stats.IncrementAnalysisCache(1, 0)
			a.cacheMutex.RUnlock()
			return entry.analysis
		}
	}
	a.cacheMutex.RUnlock()

	a.stats.IncrementAnalysisCache(0, 1)

	analysis := AnalyzeHTML(htmlContent, targetKeywordsCsv)

	a.cacheMutex.Lock()
	a.cache[key] = cacheEntry{
		analysis:  analysis,
		timestamp: time.Now(),
	}
	a.cacheMutex.Unlock()

	return analysis
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown persists outstanding statistics and drops the cache
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}
