package input

import (
	"snake-arcade/game/types"

	"github.com/rs/zerolog"
)

// Controller is the command surface of a running game
type Controller interface {
	Phase() types.Phase
	SetDirection(types.Direction)
	Pause()
	Resume()
	Start()
	Reset()
	SetDifficulty(types.Difficulty) error
}

// Router translates intents into controller commands according to the current phase
type Router struct {
	ctrl Controller
	log  zerolog.Logger
}

func NewRouter(ctrl Controller, log zerolog.Logger) *Router {
	return &Router{ctrl: ctrl, log: log}
}

// Handle applies one intent. It reports whether a command was issued.
func (r *Router) Handle(in Intent) bool {
	phase := r.ctrl.Phase()

	switch in.Kind {
	case MoveKind:
		// Steering only counts during play
		if phase != types.Running || !in.Dir.Valid() {
			return false
		}
		r.ctrl.SetDirection(in.Dir)

	case TogglePauseKind:
		switch phase {
		case types.Running:
			r.ctrl.Pause()
		case types.Paused:
			r.ctrl.Resume()
		default:
			return false
		}

	case StartKind:
		switch phase {
		case types.Idle:
			r.ctrl.Start()
		case types.Paused, types.GameOver:
			r.ctrl.Reset()
		default:
			return false
		}

	case ResetKind:
		r.ctrl.Reset()

	case SelectKind:
		if err := r.ctrl.SetDifficulty(in.Tier); err != nil {
			r.log.Warn().Err(err).Msg("difficulty rejected")
			return false
		}

	default:
		r.log.Debug().Int("kind", int(in.Kind)).Msg("unknown intent")
		return false
	}

	r.log.Debug().Stringer("intent", in).Stringer("phase", phase).Msg("intent handled")
	return true
}
