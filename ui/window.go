package ui

import (
	"context"
	"sync/atomic"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// KeyBinding maps a raylib key to an intent
type KeyBinding struct {
	Key    int32
	Intent input.Intent
}

var Bindings = []KeyBinding{
	{rl.KeyUp, input.Move(types.Up)},
	{rl.KeyDown, input.Move(types.Down)},
	{rl.KeyLeft, input.Move(types.Left)},
	{rl.KeyRight, input.Move(types.Right)},
	{rl.KeyW, input.Move(types.Up)},
	{rl.KeyS, input.Move(types.Down)},
	{rl.KeyA, input.Move(types.Left)},
	{rl.KeyD, input.Move(types.Right)},
	{rl.KeySpace, input.TogglePause()},
	{rl.KeyP, input.TogglePause()},
	{rl.KeyEnter, input.StartIntent()},
	{rl.KeyR, input.ResetIntent()},
	{rl.KeyOne, input.Select(types.Easy)},
	{rl.KeyTwo, input.Select(types.Normal)},
	{rl.KeyThree, input.Select(types.Hard)},
}

// Window hosts the raylib frontend. Run must be called from the main goroutine.
type Window struct {
	width, height int32
	renderer      *Renderer
	latest        atomic.Pointer[game.Snapshot]
	swipe         *input.SwipeTracker
	taps          *input.TapDetector
	log           zerolog.Logger
}

func NewWindow(width, height int32, log zerolog.Logger) *Window {
	return &Window{
		width:    width,
		height:   height,
		renderer: NewRenderer(),
		swipe:    input.NewSwipeTracker(),
		taps:     input.NewTapDetector(),
		log:      log,
	}
}

// Frame stores the newest snapshot; safe from any goroutine
func (w *Window) Frame(s game.Snapshot) {
	w.latest.Store(&s)
}

// Run opens the window and draws until it is closed or ctx ends
func (w *Window) Run(ctx context.Context, send func(input.Intent) bool) {
	rl.InitWindow(w.width, w.height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			w.log.Info().Msg("quit requested")
			return
		}

		for _, b := range Bindings {
			if rl.IsKeyPressed(b.Key) {
				send(b.Intent)
			}
		}
		w.pollMouse(send)

		if s := w.latest.Load(); s != nil {
			w.renderer.Draw(*s)
		} else {
			rl.BeginDrawing()
			rl.ClearBackground(rl.Black)
			rl.EndDrawing()
		}
	}
}

// pollMouse turns drags into swipes and clicks into start or pause
func (w *Window) pollMouse(send func(input.Intent) bool) {
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		w.swipe.Begin(x, y)
		if w.taps.Tap(time.Now()) {
			send(input.TogglePause())
			return
		}
		if s := w.latest.Load(); s != nil && s.Phase == types.Idle {
			send(input.StartIntent())
		}
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		if in, ok := w.swipe.Move(x, y); ok {
			send(in)
		}
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		w.swipe.End()
	}
}
