package main

import (
	"fmt"
	"io"
	"time"

	"snake-arcade/ai"
	"snake-arcade/game"
	"snake-arcade/game/leaderboard"

	"github.com/rs/zerolog"
)

const (
	learningRate = 0.1
	discount     = 0.9
)

// newAgent loads the saved Q-table at path, starting fresh when there is none
func newAgent(path string, seed uint64) (*ai.Agent, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	agent := ai.NewAgent(learningRate, discount, seed)
	if err := agent.LoadQTable(path); err != nil {
		return nil, fmt.Errorf("load q-table: %w", err)
	}
	return agent, nil
}

// runTraining plays cfg.TrainEpisodes headless games and saves the Q-table.
// Training runs never touch the player's leaderboard or stats.
func runTraining(cfg Config, out io.Writer, log zerolog.Logger) error {
	opts := []game.Option{
		game.WithLogger(log),
		game.WithLeaderboard(leaderboard.Load(&leaderboard.MemoryStore{}, log)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	g, err := game.NewGame(cfg.GridSize, cfg.Difficulty, opts...)
	if err != nil {
		return err
	}

	agent, err := newAgent(cfg.QTablePath, cfg.Seed)
	if err != nil {
		return err
	}

	// A snake circling forever never ends its episode
	maxSteps := cfg.GridSize * cfg.GridSize * 4
	report := ai.Train(g, agent, cfg.TrainEpisodes, maxSteps, log)

	fmt.Fprintf(out, "Trained %d episodes: best %d, average %.1f, %d states, epsilon %.3f\n",
		report.Episodes, report.BestScore, report.AverageScore, report.States, agent.Epsilon)

	if err := agent.SaveQTable(cfg.QTablePath); err != nil {
		return fmt.Errorf("save q-table: %w", err)
	}
	return nil
}
