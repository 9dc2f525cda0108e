// Package stats persists monthly usage counters for the generation service.
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyStats holds the counters for one month.
type MonthlyStats struct {
	Generations         int       `json:"generations"`
	FallbackGenerations int       `json:"fallback_generations"`
	AnalysisCacheHits   int       `json:"analysis_hits"`
	AnalysisCacheMisses int       `json:"analysis_misses"`
	LastUpdated         time.Time `json:"last_updated"`
}

// Storage handles persistent storage of statistics.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
}

// NewStorage creates a statistics storage instance backed by a JSON file in
// dataDir. A background goroutine flushes periodically.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, "stats.json")
	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filePath,
		writeBuffer: make(chan struct{}, 1),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// save writes the stats to a temp file and renames it into place.
func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// backgroundWriter handles periodic writes to disk.
func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		}
	}
}

// getCurrentMonth returns the current month key in YYYY-MM format.
func getCurrentMonth() string {
	return time.Now().Format("2006-01")
}

// requestWrite signals that a write to disk is needed.
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// Write already pending.
	}
}

func (s *Storage) currentLocked() *MonthlyStats {
	month := getCurrentMonth()
	stats, exists := s.stats[month]
	if !exists {
		stats = &MonthlyStats{}
		s.stats[month] = stats
	}
	return stats
}

// RecordGeneration counts one completed generation, fallback or not.
func (s *Storage) RecordGeneration(usedFallback bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats := s.currentLocked()
	stats.Generations++
	if usedFallback {
		stats.FallbackGenerations++
	}
	stats.LastUpdated = time.Now()

	s.maybeRequestWriteLocked()
}

// RecordCacheAccess counts one analysis cache lookup.
func (s *Storage) RecordCacheAccess(hit bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats := s.currentLocked()
	if hit {
		stats.AnalysisCacheHits++
	} else {
		stats.AnalysisCacheMisses++
	}
	stats.LastUpdated = time.Now()

	s.maybeRequestWriteLocked()
}

func (s *Storage) maybeRequestWriteLocked() {
	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// GetCurrentStats returns statistics for the current month.
func (s *Storage) GetCurrentStats() MonthlyStats {
	month := getCurrentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[month]; exists {
		return *stats
	}
	return MonthlyStats{}
}

// GetMonthlyStats returns statistics for a specific month.
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[yearMonth]; exists {
		return *stats, true
	}
	return MonthlyStats{}, false
}

// Cleanup drops everything except the current and previous month.
func (s *Storage) Cleanup() {
	currentTime := time.Now()
	currentMonth := currentTime.Format("2006-01")
	previousMonth := currentTime.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.stats {
		if key != currentMonth && key != previousMonth {
			delete(s.stats, key)
		}
	}

	s.requestWrite()

	log.Printf("Retained statistics for months: %s, %s", currentMonth, previousMonth)
}

// GetAllMonths returns a sorted list of all months with statistics, newest
// first.
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}
