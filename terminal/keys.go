package terminal

import (
	"snake-arcade/game/types"
	"snake-arcade/input"

	"github.com/gdamore/tcell/v2"
)

var key2Dir = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var rune2Intent = map[rune]input.Intent{
	'w': input.Move(types.Up),
	's': input.Move(types.Down),
	'a': input.Move(types.Left),
	'd': input.Move(types.Right),
	' ': input.TogglePause(),
	'p': input.TogglePause(),
	'r': input.ResetIntent(),
	'1': input.Select(types.Easy),
	'2': input.Select(types.Normal),
	'3': input.Select(types.Hard),
}

// KeyIntent maps a key press to an intent
func KeyIntent(ev *tcell.EventKey) (input.Intent, bool) {
	if dir, ok := key2Dir[ev.Key()]; ok {
		return input.Move(dir), true
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		return input.StartIntent(), true
	case tcell.KeyRune:
		in, ok := rune2Intent[toLower(ev.Rune())]
		return in, ok
	}
	return input.Intent{}, false
}

// IsQuit reports whether the key closes the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return toLower(ev.Rune()) == 'q'
	}
	return false
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
