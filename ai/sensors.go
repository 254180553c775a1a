package ai

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Action is a move relative to the current heading
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight
)

const NumActions = 3

// Apply converts a relative action into an absolute heading. It can never reverse.
func (a Action) Apply(current types.Direction) types.Direction {
	switch a {
	case TurnLeft:
		return current.TurnLeft()
	case TurnRight:
		return current.TurnRight()
	default:
		return current
	}
}

// State is what the agent perceives around the head
type State struct {
	DangerLeft     bool
	DangerStraight bool
	DangerRight    bool
	FoodAhead      int // -1 behind, 0 level, 1 ahead
	FoodSide       int // -1 left, 0 level, 1 right
}

func (s State) Key() string {
	return fmt.Sprintf("%d%d%d:%d:%d",
		boolToInt(s.DangerLeft), boolToInt(s.DangerStraight), boolToInt(s.DangerRight),
		s.FoodAhead, s.FoodSide)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Observe reads the sensors from a snapshot
func Observe(snap game.Snapshot) State {
	if len(snap.Body) == 0 {
		return State{}
	}

	cm := manager.NewCollisionManager(types.Grid{Size: snap.GridSize})
	snake := &entity.Snake{Body: snap.Body, Direction: snap.Direction}
	head := snap.Head()
	dir := snap.Direction

	danger := func(d types.Direction) bool {
		return cm.IsDeadly(head.Add(d.Delta()), snake)
	}

	state := State{
		DangerLeft:     danger(dir.TurnLeft()),
		DangerStraight: danger(dir),
		DangerRight:    danger(dir.TurnRight()),
	}
	if snap.HasFood {
		offset := types.Point{X: snap.Food.X - head.X, Y: snap.Food.Y - head.Y}
		state.FoodAhead = sign(dot(offset, dir.Delta()))
		state.FoodSide = sign(dot(offset, dir.TurnRight().Delta()))
	}
	return state
}

// FoodDistance is the Manhattan distance from head to food, or 0 without food
func FoodDistance(snap game.Snapshot) int {
	if !snap.HasFood || len(snap.Body) == 0 {
		return 0
	}
	head := snap.Head()
	return abs(head.X-snap.Food.X) + abs(head.Y-snap.Food.Y)
}

// Reward scores the transition between two consecutive snapshots of one run
func Reward(prev, next game.Snapshot) float64 {
	switch {
	case next.Phase == types.GameOver && !next.Won:
		return -1.0
	case next.Score > prev.Score:
		return 1.0
	}

	change := FoodDistance(next) - FoodDistance(prev)
	switch {
	case change < 0:
		return 0.5
	case change > 0:
		return -0.3
	default:
		return 0
	}
}

func dot(a, b types.Point) int {
	return a.X*b.X + a.Y*b.Y
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
