package input

import (
	"errors"
	"testing"
	"time"

	"snake-arcade/game/types"

	"github.com/rs/zerolog"
)

type fakeController struct {
	phase types.Phase
	calls []string
	dir   types.Direction
	tier  types.Difficulty
	err   error
}

func (f *fakeController) Phase() types.Phase { return f.phase }

func (f *fakeController) SetDirection(d types.Direction) {
	f.calls = append(f.calls, "direction")
	f.dir = d
}

func (f *fakeController) Pause()  { f.calls = append(f.calls, "pause") }
func (f *fakeController) Resume() { f.calls = append(f.calls, "resume") }
func (f *fakeController) Start()  { f.calls = append(f.calls, "start") }
func (f *fakeController) Reset()  { f.calls = append(f.calls, "reset") }

func (f *fakeController) SetDifficulty(d types.Difficulty) error {
	f.calls = append(f.calls, "difficulty")
	if f.err != nil {
		return f.err
	}
	f.tier = d
	return nil
}

func TestRouterByPhase(t *testing.T) {
	tests := []struct {
		name   string
		phase  types.Phase
		intent Intent
		want   string // Expected call, empty for none
	}{
		{"move running", types.Running, Move(types.Up), "direction"},
		{"move idle", types.Idle, Move(types.Up), ""},
		{"move paused", types.Paused, Move(types.Up), ""},
		{"move game over", types.GameOver, Move(types.Up), ""},
		{"move invalid", types.Running, Move(types.None), ""},
		{"toggle running", types.Running, TogglePause(), "pause"},
		{"toggle paused", types.Paused, TogglePause(), "resume"},
		{"toggle idle", types.Idle, TogglePause(), ""},
		{"toggle game over", types.GameOver, TogglePause(), ""},
		{"start idle", types.Idle, StartIntent(), "start"},
		{"start paused", types.Paused, StartIntent(), "reset"},
		{"start game over", types.GameOver, StartIntent(), "reset"},
		{"start running", types.Running, StartIntent(), ""},
		{"reset running", types.Running, ResetIntent(), "reset"},
		{"select", types.Paused, Select(types.Hard), "difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &fakeController{phase: tt.phase}
			r := NewRouter(ctrl, zerolog.Nop())
			handled := r.Handle(tt.intent)

			if tt.want == "" {
				if handled || len(ctrl.calls) != 0 {
					t.Fatalf("expected no call, got %v", ctrl.calls)
				}
				return
			}
			if !handled || len(ctrl.calls) != 1 || ctrl.calls[0] != tt.want {
				t.Fatalf("calls = %v, want [%s]", ctrl.calls, tt.want)
			}
		})
	}
}

func TestRouterSelectError(t *testing.T) {
	ctrl := &fakeController{phase: types.Idle, err: types.ErrUnknownDifficulty}
	r := NewRouter(ctrl, zerolog.Nop())

	if r.Handle(Select(types.Difficulty(9))) {
		t.Fatal("rejected difficulty reported as handled")
	}
	if !errors.Is(ctrl.err, types.ErrUnknownDifficulty) {
		t.Fatal("unexpected error value")
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   types.Direction
		ok     bool
	}{
		{"right", 40, 5, types.Right, true},
		{"left", -40, 10, types.Left, true},
		{"down", 3, 35, types.Down, true},
		{"up", -3, -50, types.Up, true},
		{"too short", 20, 0, types.None, false},
		{"at threshold", 30, 0, types.None, false},
		{"diagonal tie", 40, 40, types.None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewSwipeTracker()
			st.Begin(100, 100)
			in, ok := st.Move(100+tt.dx, 100+tt.dy)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (in.Kind != MoveKind || in.Dir != tt.want) {
				t.Fatalf("intent = %v, want move(%v)", in, tt.want)
			}
		})
	}
}

func TestSwipeOriginFollowsPointer(t *testing.T) {
	st := NewSwipeTracker()
	st.Begin(0, 0)

	if _, ok := st.Move(20, 0); ok {
		t.Fatal("short step recognised")
	}
	// 40 from the start but only 20 from the last position
	if _, ok := st.Move(40, 0); ok {
		t.Fatal("origin did not follow pointer")
	}
	if in, ok := st.Move(80, 0); !ok || in.Dir != types.Right {
		t.Fatalf("Move = %v, %v", in, ok)
	}
}

func TestSwipeInactive(t *testing.T) {
	st := NewSwipeTracker()
	if _, ok := st.Move(100, 0); ok {
		t.Fatal("move without begin recognised")
	}
	st.Begin(0, 0)
	st.End()
	if _, ok := st.Move(100, 0); ok {
		t.Fatal("move after end recognised")
	}
}

func TestDoubleTap(t *testing.T) {
	td := NewTapDetector()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if td.Tap(t0) {
		t.Fatal("first tap is not a double tap")
	}
	if !td.Tap(t0.Add(200 * time.Millisecond)) {
		t.Fatal("second tap within window missed")
	}
	if td.Tap(t0.Add(800 * time.Millisecond)) {
		t.Fatal("tap outside window recognised")
	}
	if td.Tap(t0.Add(800 * time.Millisecond)) {
		t.Fatal("zero gap recognised")
	}
}
