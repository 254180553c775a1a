package terminal

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// Board cells are two columns wide so the grid looks square in a terminal
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

const (
	headRune = tcell.RuneDiamond
	bodyRune = tcell.RuneBlock
	foodRune = '●'
)

var help = []string{
	"arrows/wasd  steer",
	"space        pause",
	"enter        start",
	"r            restart",
	"1 2 3        difficulty",
	"q/esc        quit",
}

// Console draws snapshots onto a tcell screen
type Console struct {
	screen tcell.Screen
}

func NewConsole(screen tcell.Screen) *Console {
	return &Console{screen: screen}
}

// CellAt returns the screen column and row of the left half of grid cell p
func CellAt(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

// Draw renders one frame
func (c *Console) Draw(s game.Snapshot) {
	c.screen.Clear()

	c.drawBox(s.GridSize)
	if s.HasFood {
		x, y := CellAt(s.Food)
		c.screen.SetContent(x, y, foodRune, nil, styleFood)
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !(types.Grid{Size: s.GridSize}).InBounds(p) {
			continue // A head that left the board is not drawn over the border
		}
		x, y := CellAt(p)
		if i == 0 {
			c.screen.SetContent(x, y, headRune, nil, styleHead)
			c.screen.SetContent(x+1, y, headRune, nil, styleHead)
			continue
		}
		c.screen.SetContent(x, y, bodyRune, nil, styleBody)
		c.screen.SetContent(x+1, y, bodyRune, nil, styleBody)
	}

	c.drawHUD(s)
	c.drawOverlay(s)
	c.screen.Show()
}

func (c *Console) drawBox(size int) {
	x2, y2 := size*cellWidth+1, size+1
	for col := 0; col <= x2; col++ {
		c.screen.SetContent(col, 0, tcell.RuneHLine, nil, styleBorder)
		c.screen.SetContent(col, y2, tcell.RuneHLine, nil, styleBorder)
	}
	for row := 1; row < y2; row++ {
		c.screen.SetContent(0, row, tcell.RuneVLine, nil, styleBorder)
		c.screen.SetContent(x2, row, tcell.RuneVLine, nil, styleBorder)
	}
	c.screen.SetContent(0, 0, tcell.RuneULCorner, nil, styleBorder)
	c.screen.SetContent(x2, 0, tcell.RuneURCorner, nil, styleBorder)
	c.screen.SetContent(0, y2, tcell.RuneLLCorner, nil, styleBorder)
	c.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, styleBorder)
}

func (c *Console) drawHUD(s game.Snapshot) {
	x := s.GridSize*cellWidth + 4
	best := 0
	if len(s.Leaderboard) > 0 {
		best = s.Leaderboard[0].Score
	}

	lines := []string{
		fmt.Sprintf("Score  %d", s.Score),
		fmt.Sprintf("Best   %d", max(best, s.Score)),
		fmt.Sprintf("Level  %s", s.Difficulty),
		fmt.Sprintf("Speed  %dms", s.Speed.Milliseconds()),
		fmt.Sprintf("Games  %d", s.Stats.GamesPlayed),
	}
	drawText(c.screen, x, 1, styleTitle, "SNAKE")
	for i, line := range lines {
		drawText(c.screen, x, 3+i, styleDefault, line)
	}
	for i, line := range help {
		drawText(c.screen, x, 4+len(lines)+i, styleDim, line)
	}
}

func (c *Console) drawOverlay(s game.Snapshot) {
	var lines []string
	switch s.Phase {
	case types.Idle:
		lines = []string{"Press Enter to start"}
	case types.Paused:
		lines = []string{"PAUSED", "space to resume"}
	case types.GameOver:
		title := "GAME OVER"
		if s.Won {
			title = "BOARD CLEARED"
		}
		lines = []string{title, fmt.Sprintf("Score %d", s.Score), s.Rank, ""}
		for i, e := range s.Leaderboard {
			lines = append(lines, fmt.Sprintf("%d. %4d  %s", i+1, e.Score, e.Date))
		}
		lines = append(lines, "", "Enter to play again")
	default:
		return
	}

	boardWidth := s.GridSize*cellWidth + 2
	top := max(1, (s.GridSize+2-len(lines))/2)
	for i, line := range lines {
		x := max(1, (boardWidth-len([]rune(line)))/2)
		style := styleDefault
		if i == 0 {
			style = styleTitle
		}
		drawText(c.screen, x, top+i, style, line)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
