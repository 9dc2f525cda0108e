package logging

import (
	"sync"
	"testing"
	"time"
)

func newStats() *Statistics {
	return &Statistics{
		UniqueClients: make(map[string]time.Time),
	}
}

func TestTrackGeneration(t *testing.T) {
	s := newStats()

	s.TrackGeneration(100, false, false)
	s.TrackGeneration(300, true, false)

	if s.GenerationRequests != 2 {
		t.Errorf("Expected 2 generation requests, got %d", s.GenerationRequests)
	}
	if s.FallbackGenerations != 1 {
		t.Errorf("Expected 1 fallback, got %d", s.FallbackGenerations)
	}
	if s.AveragePipelineMs != 200 {
		t.Errorf("Expected average 200ms, got %f", s.AveragePipelineMs)
	}
	if got := s.GetFallbackRate(); got != 50 {
		t.Errorf("Expected 50%% fallback rate, got %f", got)
	}
}

func TestErrorRate(t *testing.T) {
	s := newStats()

	if got := s.GetErrorRate(); got != 0 {
		t.Errorf("Expected zero error rate without requests, got %f", got)
	}

	s.TrackGeneration(100, false, true)
	s.TrackAnalysis(50, false)

	if got := s.GetErrorRate(); got != 50 {
		t.Errorf("Expected 50%% error rate, got %f", got)
	}
}

func TestGetStatisticsWithConcurrentWriters(t *testing.T) {
	s := newStats()
	s.TrackGeneration(100, false, false)

	// GetStatistics reads everything under one lock acquisition; interleaved
	// writers must never be able to wedge it.
	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.TrackGeneration(10, true, false)
				s.GetStatistics()
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("GetStatistics blocked alongside concurrent writers")
	}

	result := s.GetStatistics()
	if result["totalGenerations"].(int) != 51 {
		t.Errorf("Expected 51 generations, got %v", result["totalGenerations"])
	}
}

func TestUniqueClients(t *testing.T) {
	s := newStats()

	s.TrackClient("10.0.0.1")
	s.TrackClient("10.0.0.2")
	s.TrackClient("10.0.0.1")

	if got := s.GetUniqueClientsCount(); got != 2 {
		t.Errorf("Expected 2 unique clients, got %d", got)
	}
}
