package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility
const ENV_DEV_MODE = "DEV_MODE"

// Statistics represents the collected runtime statistics
type Statistics struct {
	UniqueVisitors      map[string]time.Time `json:"uniqueVisitors"`      // IP -> Last Visit Time
	GenerationRequests  int                  `json:"generationRequests"`  // Total number of blog generations
	AnalysisRequests    int                  `json:"analysisRequests"`    // Total number of analysis requests
	ErrorCount          int                  `json:"errorCount"`          // Number of errors
	PopularKeywords     map[string]int       `json:"popularKeywords"`     // Primary keyword -> Count
	AverageGenerateTime float64              `json:"averageGenerateTime"` // Average generation time in milliseconds
	TotalGenerateTime   float64              `json:"-"`                   // Used to calculate average
	TimedRequestCount   int                  `json:"-"`                   // Used to calculate average
	LastPersisted       time.Time            `json:"lastPersisted"`       // Last time stats were saved
	mutex               sync.RWMutex         `json:"-"`
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors:  make(map[string]time.Time),
			PopularKeywords: make(map[string]int),
			LastPersisted:   time.Now(),
		}

		// Try to load existing statistics
		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// primaryKeyword extracts the first keyword from a comma-separated list
func primaryKeyword(keywords string) string {
	first, _, _ := strings.Cut(keywords, ",")
	return strings.ToLower(strings.TrimSpace(first))
}

// TrackGeneration records a blog generation request
func (s *Statistics) TrackGeneration(keywords string, generateTime float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.GenerationRequests++

	if key := primaryKeyword(keywords); key != "" {
		s.PopularKeywords[key]++
	}

	if hasError {
		s.ErrorCount++
	}

	// Update average generation time
	s.TotalGenerateTime += generateTime
	s.TimedRequestCount++
	s.AverageGenerateTime = s.TotalGenerateTime / float64(s.TimedRequestCount)
}

// TrackAnalysis records an analysis request
func (s *Statistics) TrackAnalysis(hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++
	if hasError {
		s.ErrorCount++
	}
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.uniqueVisitorsLocked()
}

func (s *Statistics) uniqueVisitorsLocked() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}

	return count
}

// GetPopularKeywords returns up to N of the most used primary keywords
func (s *Statistics) GetPopularKeywords(n int) map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.popularKeywordsLocked(n)
}

func (s *Statistics) popularKeywordsLocked(n int) map[string]int {
	result := make(map[string]int)
	count := 0

	for keyword, freq := range s.PopularKeywords {
		if count < n {
			result[keyword] = freq
			count++
		}
	}

	return result
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.errorRateLocked()
}

func (s *Statistics) errorRateLocked() float64 {
	total := s.GenerationRequests + s.AnalysisRequests
	if total == 0 {
		return 0
	}

	return (float64(s.ErrorCount) / float64(total)) * 100
}

// Save persists the statistics to a file
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create("statistics.json")
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}

	return nil
}

// Load reads the statistics from a file
func (s *Statistics) Load() error {
	file, err := os.Open("statistics.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not an error if file doesn't exist yet
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}

	return nil
}

// GetStatistics returns a copy of the current statistics. Keyword
// details are only included in development mode.
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := map[string]interface{}{
		"uniqueVisitors24h":   s.uniqueVisitorsLocked(),
		"totalGenerations":    s.GenerationRequests,
		"totalAnalyses":       s.AnalysisRequests,
		"errorRate":           s.errorRateLocked(),
		"averageGenerateTime": s.AverageGenerateTime,
	}

	if os.Getenv(ENV_DEV_MODE) == "true" {
		result["popularKeywords"] = s.popularKeywordsLocked(5) // Top 5 only shown in dev mode
	}

	return result
}
