package terminal

import (
	"context"

	"snake-arcade/game"
	"snake-arcade/input"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Host runs the terminal frontend: it draws published frames and forwards keys
type Host struct {
	screen  tcell.Screen
	console *Console
	frames  chan game.Snapshot
	last    game.Snapshot
	log     zerolog.Logger
}

// NewHost initializes screen
func NewHost(screen tcell.Screen, log zerolog.Logger) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(styleDefault)
	screen.HideCursor()

	return &Host{
		screen:  screen,
		console: NewConsole(screen),
		frames:  make(chan game.Snapshot, 1),
		log:     log,
	}, nil
}

// Frame hands a snapshot to the draw goroutine, replacing one not yet drawn.
// It never blocks, so it is safe as a loop frame callback.
func (h *Host) Frame(s game.Snapshot) {
	for {
		select {
		case h.frames <- s:
			return
		default:
		}
		select {
		case <-h.frames:
		default:
		}
	}
}

// Run draws frames and forwards key intents until the player quits or ctx ends
func (h *Host) Run(ctx context.Context, send func(input.Intent) bool) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.frames:
			h.last = s
			h.console.Draw(s)

		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(ev) {
					h.log.Info().Msg("quit requested")
					return
				}
				if in, ok := KeyIntent(ev); ok {
					send(in)
				}
			case *tcell.EventResize:
				h.screen.Sync()
				h.console.Draw(h.last)
			}
		}
	}
}

// Close restores the terminal
func (h *Host) Close() {
	h.screen.Fini()
}
