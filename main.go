package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/ai"
	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/leaderboard"
	"snake-arcade/game/manager"
	"snake-arcade/input"
	"snake-arcade/terminal"
	"snake-arcade/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// frontend draws published frames and feeds player intents back to the loop
type frontend interface {
	Frame(game.Snapshot)
	Run(ctx context.Context, send func(input.Intent) bool)
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	log, logFile, err := setupLogging(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.TrainEpisodes > 0 {
		err = runTraining(cfg, os.Stdout, log)
	} else {
		err = run(cfg, log)
	}
	if err != nil {
		log.Error().Err(err).Msg("exit with error")
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg Config, log zerolog.Logger) error {
	stats, err := manager.LoadStats(cfg.StatsPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.StatsPath).Msg("stats unavailable, starting fresh")
		stats = manager.NewStatsManager()
	}

	opts := []game.Option{
		game.WithLogger(log),
		game.WithStats(stats),
		game.WithLeaderboard(leaderboard.Load(leaderboard.NewFileStore(cfg.LeaderboardPath), log)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	g, err := game.NewGame(cfg.GridSize, cfg.Difficulty, opts...)
	if err != nil {
		return err
	}

	var agent *ai.Agent
	if cfg.Autopilot {
		if agent, err = newAgent(cfg.QTablePath, cfg.Seed); err != nil {
			return err
		}
	}

	sounds := audio.NewSoundManager()
	if cfg.Sound {
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable")
		}
	}

	var front frontend
	var host *terminal.Host
	switch cfg.Frontend {
	case frontendWindow:
		front = ui.NewWindow(1280, 800, log)
	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if host, err = terminal.NewHost(screen, log); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		front = host
	}

	var pilot *ai.Pilot
	loop := game.NewLoop(g,
		game.WithLoopLogger(log),
		game.OnFrame(func(s game.Snapshot) {
			front.Frame(s)
			if pilot != nil {
				pilot.Observe(s)
			}
		}),
		game.OnEvent(func(ev game.Event) {
			switch ev.Kind {
			case game.FoodEaten:
				sounds.PlayEat()
			case game.Collided:
				sounds.PlayGameOver()
			case game.BoardFilled:
				sounds.PlayWin()
			}
		}),
	)
	if agent != nil {
		pilot = ai.NewPilot(agent, loop, true, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	log.Info().
		Str("frontend", cfg.Frontend).
		Str("difficulty", cfg.Difficulty.String()).
		Int("grid", cfg.GridSize).
		Bool("autopilot", cfg.Autopilot).
		Msg("game started")

	// raylib needs the main goroutine, so the frontend always runs here
	front.Run(ctx, loop.Send)
	stop()
	<-done

	return shutdown(host, sounds, stats, cfg, agent)
}

// shutdown releases the frontend and persists session state, reporting every failure
func shutdown(host *terminal.Host, sounds *audio.SoundManager, stats *manager.StatsManager, cfg Config, agent *ai.Agent) error {
	var merr *multierror.Error

	if host != nil {
		host.Close()
	}
	sounds.Cleanup()

	if err := stats.SaveToFile(cfg.StatsPath); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("save stats: %w", err))
	}
	if agent != nil {
		if err := agent.SaveQTable(cfg.QTablePath); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("save q-table: %w", err))
		}
	}
	return merr.ErrorOrNil()
}
