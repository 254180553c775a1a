package game

import (
	"time"

	"snake-arcade/game/leaderboard"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// EventKind classifies what happened during a tick
type EventKind int

const (
	FoodEaten EventKind = iota
	Collided
	BoardFilled
)

func (k EventKind) String() string {
	switch k {
	case FoodEaten:
		return "food"
	case Collided:
		return "collision"
	case BoardFilled:
		return "board filled"
	default:
		return "unknown"
	}
}

// Event is emitted by Tick for frontends (sound, effects)
type Event struct {
	Kind  EventKind
	Cell  types.Point // Head position when the event happened
	Score int
	Cause types.CollisionType
}

// Snapshot is a read-only copy of the game state for rendering
type Snapshot struct {
	RunID       string
	GridSize    int
	Body        []types.Point
	Food        types.Point
	HasFood     bool
	Direction   types.Direction
	Score       int
	Speed       time.Duration
	Phase       types.Phase
	Difficulty  types.Difficulty
	Won         bool
	Cause       types.CollisionType
	Rank        string
	Leaderboard []leaderboard.Entry
	Stats       manager.Summary
}

// Head returns the first body cell
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[0]
}
