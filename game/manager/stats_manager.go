package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// HistorySize is the number of recent scores kept for moving averages
const HistorySize = 100

// StatsManager aggregates session statistics across finished games.
// It is safe for concurrent use: the loop writes, frontends read.
type StatsManager struct {
	mutex         sync.RWMutex
	GamesPlayed   int       `json:"gamesPlayed"`
	TotalScore    int       `json:"totalScore"`
	MaxScore      int       `json:"maxScore"`
	TotalDuration float64   `json:"totalDuration"` // Seconds
	MaxDuration   float64   `json:"maxDuration"`   // Seconds
	Recent        []int     `json:"recent"`        // Newest last, at most HistorySize
	LastPlayed    time.Time `json:"lastPlayed"`
}

// Summary is a point-in-time copy of the statistics
type Summary struct {
	GamesPlayed     int
	MaxScore        int
	AverageScore    float64
	RecentAverage   float64
	MedianScore     float64
	AverageDuration float64
	Recent          []int
}

func NewStatsManager() *StatsManager {
	return &StatsManager{Recent: make([]int, 0, HistorySize)}
}

// AddGame records one finished game
func (s *StatsManager) AddGame(score int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	if duration < 0 {
		duration = 0
	}

	s.GamesPlayed++
	s.TotalScore += score
	s.TotalDuration += duration
	s.MaxScore = max(s.MaxScore, score)
	s.MaxDuration = max(s.MaxDuration, duration)
	s.LastPlayed = endTime

	s.Recent = append(s.Recent, score)
	if len(s.Recent) > HistorySize {
		s.Recent = s.Recent[len(s.Recent)-HistorySize:]
	}
}

// Summary returns the current aggregates
func (s *StatsManager) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sum := Summary{
		GamesPlayed: s.GamesPlayed,
		MaxScore:    s.MaxScore,
	}
	if s.GamesPlayed > 0 {
		sum.AverageScore = float64(s.TotalScore) / float64(s.GamesPlayed)
		sum.AverageDuration = s.TotalDuration / float64(s.GamesPlayed)
	}
	if len(s.Recent) > 0 {
		total := 0
		for _, score := range s.Recent {
			total += score
		}
		sum.RecentAverage = float64(total) / float64(len(s.Recent))
		sum.MedianScore = median(s.Recent)
		sum.Recent = append([]int(nil), s.Recent...)
	}
	return sum
}

func median(scores []int) float64 {
	sorted := append([]int(nil), scores...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}

// SaveToFile writes the statistics as JSON, creating the parent directory
func (s *StatsManager) SaveToFile(path string) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// LoadStats reads statistics from path; a missing file yields empty statistics
func LoadStats(path string) (*StatsManager, error) {
	s := NewStatsManager()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return NewStatsManager(), fmt.Errorf("failed to parse stats file: %w", err)
	}
	if len(s.Recent) > HistorySize {
		s.Recent = s.Recent[len(s.Recent)-HistorySize:]
	}
	return s, nil
}
