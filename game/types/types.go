package types

// Point is a single grid cell
type Point struct {
	X, Y int
}

// Add returns the cell shifted by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid represents the square game board
type Grid struct {
	Size int
}

// InBounds reports whether p lies on the board
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Center returns the spawn cell for a fresh snake head
func (g Grid) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}

// Game constants
const (
	DefaultGridSize = 20
	MinGridSize     = 5  // Canonical 3-segment body must fit left of the center
	FoodPoints      = 10 // Score awarded per food
)

// Phase is the coarse lifecycle state of a game
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
