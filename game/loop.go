package game

import (
	"context"
	"time"

	"snake-arcade/game/types"
	"snake-arcade/input"

	"github.com/rs/zerolog"
)

// DefaultIntentBuffer is the intent queue length before Send starts dropping
const DefaultIntentBuffer = 32

// Loop drives a Game: it owns the tick timer and is the only goroutine that mutates the game.
type Loop struct {
	game    *Game
	router  *input.Router
	intents chan input.Intent
	after   func(time.Duration) <-chan time.Time
	onFrame func(Snapshot)
	onEvent func(Event)
	log     zerolog.Logger
}

type LoopOption func(*Loop)

// WithAfter replaces time.After as the tick timer source
func WithAfter(after func(time.Duration) <-chan time.Time) LoopOption {
	return func(l *Loop) { l.after = after }
}

// OnFrame registers a callback receiving a snapshot after every state change
func OnFrame(fn func(Snapshot)) LoopOption {
	return func(l *Loop) { l.onFrame = fn }
}

// OnEvent registers a callback for tick events
func OnEvent(fn func(Event)) LoopOption {
	return func(l *Loop) { l.onEvent = fn }
}

func WithLoopLogger(log zerolog.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

func NewLoop(g *Game, opts ...LoopOption) *Loop {
	l := &Loop{
		game:    g,
		intents: make(chan input.Intent, DefaultIntentBuffer),
		after:   time.After,
		onFrame: func(Snapshot) {},
		onEvent: func(Event) {},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.router = input.NewRouter(g, l.log)
	return l
}

// Send queues an intent from any goroutine. It returns false when the queue is full.
func (l *Loop) Send(in input.Intent) bool {
	select {
	case l.intents <- in:
		return true
	default:
		l.log.Warn().Stringer("intent", in).Msg("intent queue full, dropped")
		return false
	}
}

// Run processes intents and ticks until ctx is cancelled
func (l *Loop) Run(ctx context.Context) {
	var tick <-chan time.Time
	arm := func() {
		if l.game.Phase() == types.Running {
			tick = l.after(l.game.Interval())
		} else {
			tick = nil
		}
	}

	arm()
	l.onFrame(l.game.Snapshot())

	for {
		select {
		case <-ctx.Done():
			l.log.Debug().Msg("loop stopped")
			return

		case in := <-l.intents:
			phase, run := l.game.Phase(), l.game.RunID()
			if !l.router.Handle(in) {
				continue
			}
			// A new run or a phase change restarts the timer; steering keeps it
			if l.game.Phase() != phase || l.game.RunID() != run {
				arm()
			}
			l.onFrame(l.game.Snapshot())

		case <-tick:
			for _, ev := range l.game.Tick() {
				l.onEvent(ev)
			}
			arm()
			l.onFrame(l.game.Snapshot())
		}
	}
}
