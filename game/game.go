package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/leaderboard"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrGridTooSmall is returned for boards that cannot hold a fresh snake
var ErrGridTooSmall = errors.New("grid too small")

type Game struct {
	mu sync.RWMutex

	grid    types.Grid
	snake   *entity.Snake
	food    types.Point
	hasFood bool
	score   int
	speed   time.Duration
	tier    types.Difficulty
	profile types.Profile
	phase   types.Phase
	won     bool
	cause   types.CollisionType
	runID   string

	startedAt time.Time
	now       func() time.Time

	foods      *manager.FoodManager
	collisions *manager.CollisionManager
	board      *leaderboard.Leaderboard
	stats      *manager.StatsManager
	log        zerolog.Logger
}

type Option func(*Game)

// WithLeaderboard replaces the default in-memory leaderboard
func WithLeaderboard(lb *leaderboard.Leaderboard) Option {
	return func(g *Game) { g.board = lb }
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithSeed makes food placement reproducible
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.foods = manager.NewFoodManager(g.grid, seed) }
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func WithStats(stats *manager.StatsManager) Option {
	return func(g *Game) { g.stats = stats }
}

// NewGame builds an idle game on a size x size board
func NewGame(size int, tier types.Difficulty, opts ...Option) (*Game, error) {
	if size < types.MinGridSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrGridTooSmall, size, types.MinGridSize)
	}
	profile, err := tier.Profile()
	if err != nil {
		return nil, err
	}

	grid := types.Grid{Size: size}
	g := &Game{
		grid:       grid,
		tier:       tier,
		profile:    profile,
		now:        time.Now,
		log:        zerolog.Nop(),
		collisions: manager.NewCollisionManager(grid),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.foods == nil {
		g.foods = manager.NewFoodManager(grid, uint64(time.Now().UnixNano()))
	}
	if g.board == nil {
		g.board = leaderboard.Load(nil, g.log)
	}
	if g.stats == nil {
		g.stats = manager.NewStatsManager()
	}

	g.resetLocked()
	g.phase = types.Idle
	g.log.Info().Int("grid", size).Stringer("difficulty", tier).Msg("game created")
	return g, nil
}

// resetLocked restores the canonical starting state without touching the phase
func (g *Game) resetLocked() {
	g.snake = entity.NewSnake(g.grid.Center())
	g.food, g.hasFood = g.foods.GenerateFood(g.snake.Body)
	g.score = 0
	g.speed = g.profile.InitialSpeed
	g.won = false
	g.cause = types.NoCollision
	g.runID = uuid.NewString()
	g.startedAt = g.now()
}

// Start begins play from Idle; after a game over it starts a fresh run
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case types.Idle:
		g.phase = types.Running
		g.startedAt = g.now()
		g.log.Info().Str("run", g.runID).Msg("game started")
	case types.GameOver:
		g.resetRunningLocked()
	}
}

func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == types.Running {
		g.phase = types.Paused
		g.log.Debug().Str("run", g.runID).Msg("paused")
	}
}

func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == types.Paused {
		g.phase = types.Running
		g.log.Debug().Str("run", g.runID).Msg("resumed")
	}
}

// Reset discards the current run and starts a new one immediately
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetRunningLocked()
}

func (g *Game) resetRunningLocked() {
	g.resetLocked()
	g.phase = types.Running
	g.log.Info().Str("run", g.runID).Stringer("difficulty", g.tier).Msg("game reset")
}

// SetDirection buffers a heading for the next tick; ignored unless running
func (g *Game) SetDirection(d types.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != types.Running {
		return
	}
	g.snake.SetPendingDirection(d)
}

// SetDifficulty switches the speed profile. A run in progress keeps its current interval.
func (g *Game) SetDifficulty(d types.Difficulty) error {
	profile, err := d.Profile()
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.tier = d
	g.profile = profile
	if g.phase == types.Idle || g.phase == types.GameOver {
		g.speed = profile.InitialSpeed
	}
	g.log.Info().Stringer("difficulty", d).Stringer("phase", g.phase).Msg("difficulty changed")
	return nil
}

// Tick advances the snake by one cell. It does nothing unless the game is running.
func (g *Game) Tick() []Event {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != types.Running {
		return nil
	}

	var events []Event
	g.snake.Move()
	head := g.snake.Head()

	if g.hasFood && g.collisions.IsFoodCollision(head, g.food) {
		g.snake.Grow()
		g.score += types.FoodPoints
		g.speed = g.profile.Next(g.speed)
		events = append(events, Event{Kind: FoodEaten, Cell: head, Score: g.score})

		g.food, g.hasFood = g.foods.GenerateFood(g.snake.Body)
		if !g.hasFood {
			g.finishLocked(true, types.NoCollision)
			return append(events, Event{Kind: BoardFilled, Cell: head, Score: g.score})
		}
	}

	if g.snake.CheckCollision(g.grid.Size) {
		cause := g.collisions.Classify(g.snake)
		g.finishLocked(false, cause)
		events = append(events, Event{Kind: Collided, Cell: head, Score: g.score, Cause: cause})
	}
	return events
}

func (g *Game) finishLocked(won bool, cause types.CollisionType) {
	end := g.now()
	g.phase = types.GameOver
	g.won = won
	g.cause = cause

	if _, err := g.board.Record(g.score, end, g.runID); err != nil {
		g.log.Warn().Err(err).Msg("leaderboard not saved")
	}
	g.stats.AddGame(g.score, g.startedAt, end)

	g.log.Info().
		Str("run", g.runID).
		Int("score", g.score).
		Bool("won", won).
		Stringer("cause", cause).
		Msg("game over")
}

// Interval is the delay before the next tick
func (g *Game) Interval() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.speed
}

func (g *Game) Phase() types.Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.phase
}

func (g *Game) RunID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.runID
}

func (g *Game) Stats() *manager.StatsManager {
	return g.stats
}

func (g *Game) Leaderboard() *leaderboard.Leaderboard {
	return g.board
}

// Snapshot copies the state; callers may keep it across ticks
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{
		RunID:       g.runID,
		GridSize:    g.grid.Size,
		Body:        append([]types.Point(nil), g.snake.Body...),
		Food:        g.food,
		HasFood:     g.hasFood,
		Direction:   g.snake.Direction,
		Score:       g.score,
		Speed:       g.speed,
		Phase:       g.phase,
		Difficulty:  g.tier,
		Won:         g.won,
		Cause:       g.cause,
		Rank:        leaderboard.Rank(g.score),
		Leaderboard: g.board.Entries(),
		Stats:       g.stats.Summary(),
	}
}
