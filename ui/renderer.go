package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
)

// Layout holds the pixel geometry of one frame
type Layout struct {
	CellSize   int32
	OffsetX    int32
	OffsetY    int32
	GridPixels int32
	StatsX     int32
	StatsWidth int32
	FontSize   int32
	LineHeight int32
}

// ComputeLayout fits a size x size board left of a stats panel taking a seventh of the width
func ComputeLayout(screenWidth, screenHeight int32, size int) Layout {
	statsPanel := screenWidth / 7
	gameWidth := screenWidth - statsPanel

	available := min(gameWidth-borderPadding*2, screenHeight-borderPadding*2)
	cell := max(1, available/int32(max(size, 1)))
	grid := cell * int32(size)

	return Layout{
		CellSize:   cell,
		OffsetX:    borderPadding + (gameWidth-borderPadding*2-grid)/2,
		OffsetY:    (screenHeight - grid) / 2,
		GridPixels: grid,
		StatsX:     gameWidth + 5,
		StatsWidth: statsPanel,
		FontSize:   max(10, min(screenHeight/40, statsPanel/10)),
		LineHeight: max(12, min(screenHeight/30, statsPanel/8)),
	}
}

// CellRect returns the top-left pixel of grid cell p
func (l Layout) CellRect(p types.Point) (int32, int32) {
	return l.OffsetX + int32(p.X)*l.CellSize, l.OffsetY + int32(p.Y)*l.CellSize
}

// Renderer draws snapshots into the raylib window
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(s game.Snapshot) {
	l := ComputeLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), s.GridSize)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Board background and grid lines
	rl.DrawRectangle(l.OffsetX-1, l.OffsetY-1, l.GridPixels+2, l.GridPixels+2, rl.DarkGray)
	for x := 0; x < s.GridSize; x++ {
		for y := 0; y < s.GridSize; y++ {
			px, py := l.CellRect(types.Point{X: x, Y: y})
			rl.DrawRectangleLines(px, py, l.CellSize, l.CellSize, rl.Gray)
		}
	}

	if s.HasFood {
		px, py := l.CellRect(s.Food)
		rl.DrawRectangle(px, py, l.CellSize, l.CellSize, rl.Red)
	}

	grid := types.Grid{Size: s.GridSize}
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !grid.InBounds(p) {
			continue
		}
		px, py := l.CellRect(p)
		color := rl.Green
		if i == len(s.Body)-1 {
			color = rl.DarkGreen // Tail
		}
		if i == 0 {
			color = rl.Lime
		}
		rl.DrawRectangle(px, py, l.CellSize, l.CellSize, color)
		if i == 0 {
			drawDirection(px, py, l.CellSize, s.Direction)
		}
	}

	r.drawStatsPanel(s, l)
	r.drawOverlay(s, l)
	rl.EndDrawing()
}

// drawDirection puts a triangle on the head pointing where the snake goes
func drawDirection(headX, headY, cellSize int32, dir types.Direction) {
	halfCell := cellSize / 2
	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cellSize)},
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, l Layout) {
	x, y := l.StatsX, int32(10)
	rl.DrawRectangle(x-5, 0, l.StatsWidth+5, int32(rl.GetScreenHeight()), rl.DarkGray)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, l.FontSize, color)
		y += l.LineHeight
	}

	line(fmt.Sprintf("Score: %d", s.Score), rl.White)
	line(fmt.Sprintf("Level: %s", s.Difficulty), rl.White)
	line(fmt.Sprintf("Speed: %dms", s.Speed.Milliseconds()), rl.White)
	y += l.LineHeight / 2

	line("High Scores:", rl.Yellow)
	for i, e := range s.Leaderboard {
		line(fmt.Sprintf("%d. %d", i+1, e.Score), rl.White)
	}
	y += l.LineHeight / 2

	line("Session:", rl.Yellow)
	line(fmt.Sprintf("Games: %d", s.Stats.GamesPlayed), rl.White)
	line(fmt.Sprintf("Avg: %.1f", s.Stats.AverageScore), rl.White)
	line(fmt.Sprintf("Median: %.1f", s.Stats.MedianScore), rl.White)
	line(fmt.Sprintf("Time: %.0fs", s.Stats.AverageDuration), rl.White)

	drawScoreGraph(s.Stats.Recent, x, y+l.LineHeight/2, l.StatsWidth-10, int32(rl.GetScreenHeight())-y-l.LineHeight)
}

// drawScoreGraph draws recent scores as bars joined by a line, oldest on the left
func drawScoreGraph(scores []int, x, y, width, height int32) {
	if len(scores) == 0 || width <= 0 || height <= 20 {
		return
	}
	rl.DrawRectangle(x, y, width, height, rl.Black)

	maxScore := 1
	for _, score := range scores {
		maxScore = max(maxScore, score)
	}

	scaleY := float32(height-10) / float32(maxScore)
	spacing := float32(width) / float32(len(scores))
	barWidth := max(1, int32(spacing)-1)
	bottom := float32(y + height)

	var prevX, prevY float32
	for i, score := range scores {
		barX := float32(x) + float32(i)*spacing
		barY := bottom - float32(score)*scaleY
		rl.DrawRectangle(int32(barX), int32(barY), barWidth, int32(bottom-barY), rl.Color{R: 0, G: 180, B: 0, A: 180})
		if i > 0 {
			rl.DrawLine(int32(prevX), int32(prevY), int32(barX), int32(barY), rl.Green)
		}
		prevX, prevY = barX, barY
	}
}

func (r *Renderer) drawOverlay(s game.Snapshot, l Layout) {
	var lines []string
	switch s.Phase {
	case types.Idle:
		lines = []string{"Press Enter or click to start"}
	case types.Paused:
		lines = []string{"PAUSED", "Space or double-click to resume"}
	case types.GameOver:
		title := "GAME OVER"
		if s.Won {
			title = "BOARD CLEARED!"
		}
		lines = []string{title, fmt.Sprintf("Score: %d", s.Score), s.Rank, "Enter to play again"}
	default:
		return
	}

	fontSize := l.FontSize * 2
	top := l.OffsetY + l.GridPixels/2 - int32(len(lines))*fontSize/2
	for i, text := range lines {
		width := rl.MeasureText(text, fontSize)
		rl.DrawText(text, l.OffsetX+(l.GridPixels-width)/2, top+int32(i)*fontSize, fontSize, rl.RayWhite)
	}
}
