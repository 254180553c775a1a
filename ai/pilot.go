package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/input"

	"github.com/rs/zerolog"
)

// Sender accepts intents, typically a *game.Loop
type Sender interface {
	Send(input.Intent) bool
}

// Pilot steers the snake by sending Move intents, as a player would.
// Observe must be called from a single goroutine, usually the loop's frame callback.
type Pilot struct {
	agent *Agent
	out   Sender
	learn bool
	log   zerolog.Logger

	prev     game.Snapshot
	prevKey  string
	action   Action
	deciding bool
}

func NewPilot(agent *Agent, out Sender, learn bool, log zerolog.Logger) *Pilot {
	return &Pilot{agent: agent, out: out, learn: learn, log: log}
}

// Observe reacts to a published frame. It decides once per tick.
func (p *Pilot) Observe(snap game.Snapshot) {
	if p.deciding && !p.newTick(snap) {
		return
	}

	// A reset mid-run leaves the last decision without an outcome
	if p.deciding && p.learn && snap.RunID == p.prev.RunID {
		terminal := snap.Phase == types.GameOver
		nextKey := Observe(snap).Key()
		p.agent.Update(p.prevKey, p.action, Reward(p.prev, snap), nextKey, terminal)
		if terminal {
			p.agent.IncrementEpisode()
			p.log.Debug().Int("score", snap.Score).Int("states", p.agent.States()).Msg("autopilot episode finished")
		}
	}

	if snap.Phase != types.Running {
		p.deciding = false
		return
	}

	state := Observe(snap)
	key := state.Key()
	action := p.agent.GetAction(key)
	if dir := action.Apply(snap.Direction); dir != snap.Direction {
		p.out.Send(input.Move(dir))
	}

	p.prev, p.prevKey, p.action, p.deciding = snap, key, action, true
}

// newTick reports whether snap shows the snake after a move or a new run
func (p *Pilot) newTick(snap game.Snapshot) bool {
	if snap.RunID != p.prev.RunID {
		return true
	}
	if snap.Phase == types.GameOver {
		return true
	}
	return snap.Head() != p.prev.Head()
}
