package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snake-arcade/ai"
	"snake-arcade/audio"
	"snake-arcade/game/manager"
)

func TestShutdownPersistsState(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		StatsPath:  filepath.Join(dir, "stats.json"),
		QTablePath: filepath.Join(dir, "qtable.json"),
	}
	stats := manager.NewStatsManager()
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stats.AddGame(40, start, start.Add(time.Minute))

	if err := shutdown(nil, audio.NewSoundManager(), stats, cfg, ai.NewAgent(0.1, 0.9, 1)); err != nil {
		t.Fatal(err)
	}

	loaded, err := manager.LoadStats(cfg.StatsPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := loaded.Summary().MaxScore; got != 40 {
		t.Errorf("max score = %d, want 40", got)
	}
	if _, err := os.Stat(cfg.QTablePath); err != nil {
		t.Errorf("q-table not written: %v", err)
	}
}

func TestShutdownReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Config{
		StatsPath:  filepath.Join(blocker, "stats.json"),
		QTablePath: filepath.Join(blocker, "qtable.json"),
	}

	err := shutdown(nil, audio.NewSoundManager(), manager.NewStatsManager(), cfg, ai.NewAgent(0.1, 0.9, 1))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "save stats") || !strings.Contains(msg, "save q-table") {
		t.Errorf("error = %q, want both failures", msg)
	}
}
