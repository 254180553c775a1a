package input

import (
	"fmt"

	"snake-arcade/game/types"
)

// Kind discriminates Intent values
type Kind int

const (
	MoveKind Kind = iota
	TogglePauseKind
	StartKind
	ResetKind
	SelectKind
)

// Intent is a frontend-neutral player request
type Intent struct {
	Kind Kind
	Dir  types.Direction
	Tier types.Difficulty
}

func Move(dir types.Direction) Intent { return Intent{Kind: MoveKind, Dir: dir} }

func TogglePause() Intent { return Intent{Kind: TogglePauseKind} }

func StartIntent() Intent { return Intent{Kind: StartKind} }

func ResetIntent() Intent { return Intent{Kind: ResetKind} }

func Select(tier types.Difficulty) Intent { return Intent{Kind: SelectKind, Tier: tier} }

func (i Intent) String() string {
	switch i.Kind {
	case MoveKind:
		return fmt.Sprintf("move(%s)", i.Dir)
	case TogglePauseKind:
		return "toggle-pause"
	case StartKind:
		return "start"
	case ResetKind:
		return "reset"
	case SelectKind:
		return fmt.Sprintf("select(%s)", i.Tier)
	default:
		return "unknown"
	}
}
