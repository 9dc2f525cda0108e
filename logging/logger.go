// Package logging collects in-memory runtime metrics for the service.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility.
const ENV_DEV_MODE = "DEV_MODE"

// Statistics represents the collected runtime statistics.
type Statistics struct {
	UniqueClients       map[string]time.Time `json:"uniqueClients"`       // IP -> last request time
	GenerationRequests  int                  `json:"generationRequests"`  // Total generation requests
	FallbackGenerations int                  `json:"fallbackGenerations"` // Generations that used the deterministic fallback
	AnalysisRequests    int                  `json:"analysisRequests"`    // Preview-only analysis requests
	ErrorCount          int                  `json:"errorCount"`
	AveragePipelineMs   float64              `json:"averagePipelineMs"` // Average pipeline duration in milliseconds
	TotalPipelineMs     float64              `json:"-"`
	RequestCount        int                  `json:"-"`
	LastPersisted       time.Time            `json:"lastPersisted"`
	mutex               sync.RWMutex         `json:"-"`
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics singleton.
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueClients: make(map[string]time.Time),
			LastPersisted: time.Now(),
		}

		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackClient records a unique client address.
func (s *Statistics) TrackClient(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueClients[ip] = time.Now()
}

// TrackGeneration records one generation request.
func (s *Statistics) TrackGeneration(durationMs float64, usedFallback, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.GenerationRequests++
	if usedFallback {
		s.FallbackGenerations++
	}
	if hasError {
		s.ErrorCount++
	}

	s.TotalPipelineMs += durationMs
	s.RequestCount++
	s.AveragePipelineMs = s.TotalPipelineMs / float64(s.RequestCount)
}

// TrackAnalysis records one preview-only analysis request.
func (s *Statistics) TrackAnalysis(durationMs float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++
	if hasError {
		s.ErrorCount++
	}

	s.TotalPipelineMs += durationMs
	s.RequestCount++
	s.AveragePipelineMs = s.TotalPipelineMs / float64(s.RequestCount)
}

// The locked helpers assume the caller holds s.mutex. GetStatistics composes
// several of them under a single read lock; the exported getters wrap them.

func (s *Statistics) uniqueClientsCountLocked() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastSeen := range s.UniqueClients {
		if lastSeen.After(cutoff) {
			count++
		}
	}

	return count
}

func (s *Statistics) errorRateLocked() float64 {
	total := s.GenerationRequests + s.AnalysisRequests
	if total == 0 {
		return 0
	}

	return (float64(s.ErrorCount) / float64(total)) * 100
}

func (s *Statistics) fallbackRateLocked() float64 {
	if s.GenerationRequests == 0 {
		return 0
	}

	return (float64(s.FallbackGenerations) / float64(s.GenerationRequests)) * 100
}

// GetUniqueClientsCount returns the number of unique clients in the last 24
// hours.
func (s *Statistics) GetUniqueClientsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.uniqueClientsCountLocked()
}

// GetErrorRate returns the error rate as a percentage.
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.errorRateLocked()
}

// GetFallbackRate returns the share of generations that fell back, as a
// percentage.
func (s *Statistics) GetFallbackRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.fallbackRateLocked()
}

// Save persists the statistics to a file.
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

// Load reads the statistics from a file.
func (s *Statistics) Load() error {
	file, err := os.Open("statistics.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
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

// GetStatistics returns the current statistics. Full detail only in
// development mode.
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if os.Getenv(ENV_DEV_MODE) != "true" {
		return map[string]interface{}{
			"uniqueClients24h":  s.uniqueClientsCountLocked(),
			"totalGenerations":  s.GenerationRequests,
			"fallbackRate":      s.fallbackRateLocked(),
			"errorRate":         s.errorRateLocked(),
			"averagePipelineMs": s.AveragePipelineMs,
		}
	}

	return map[string]interface{}{
		"uniqueClients24h":    s.uniqueClientsCountLocked(),
		"totalGenerations":    s.GenerationRequests,
		"analysisRequests":    s.AnalysisRequests,
		"fallbackGenerations": s.FallbackGenerations,
		"fallbackRate":        s.fallbackRateLocked(),
		"errorRate":           s.errorRateLocked(),
		"averagePipelineMs":   s.AveragePipelineMs,
	}
}
