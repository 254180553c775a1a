package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"snake-arcade/game/types"
)

const (
	frontendTerminal = "terminal"
	frontendWindow   = "window"
)

type Config struct {
	Difficulty      types.Difficulty
	GridSize        int
	Frontend        string
	LeaderboardPath string
	StatsPath       string
	QTablePath      string
	Debug           bool
	Sound           bool
	Autopilot       bool
	TrainEpisodes   int
	Seed            uint64
}

// parseConfig reads command line flags; output receives usage text on error
func parseConfig(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)

	var cfg Config
	difficulty := fs.String("difficulty", "normal", "Difficulty: easy, normal, hard")
	fs.IntVar(&cfg.GridSize, "grid", types.DefaultGridSize, "Board side length in cells")
	fs.StringVar(&cfg.Frontend, "frontend", frontendTerminal, "Frontend: terminal, window")
	fs.StringVar(&cfg.LeaderboardPath, "leaderboard", "data/leaderboard.json", "Leaderboard file")
	fs.StringVar(&cfg.StatsPath, "stats", "data/stats.json", "Session statistics file")
	fs.StringVar(&cfg.QTablePath, "qtable", "data/qtable.json", "Autopilot Q-table file")
	fs.BoolVar(&cfg.Debug, "debug", false, "Write debug logs to logs/snake.log")
	fs.BoolVar(&cfg.Sound, "sound", true, "Play sound effects")
	fs.BoolVar(&cfg.Autopilot, "autopilot", false, "Let the Q-learning agent play")
	fs.IntVar(&cfg.TrainEpisodes, "train", 0, "Train the agent headlessly for N episodes and exit")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	d, err := types.ParseDifficulty(*difficulty)
	if err != nil {
		return Config{}, err
	}
	cfg.Difficulty = d

	if cfg.GridSize < types.MinGridSize {
		return Config{}, fmt.Errorf("grid %d: must be at least %d", cfg.GridSize, types.MinGridSize)
	}
	switch cfg.Frontend {
	case frontendTerminal, frontendWindow:
	default:
		return Config{}, fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
	if cfg.TrainEpisodes < 0 {
		return Config{}, errors.New("train: episode count must not be negative")
	}
	return cfg, nil
}
