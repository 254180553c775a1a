package input

import (
	"time"

	"snake-arcade/game/types"
)

const (
	DefaultSwipeDistance = 30
	DefaultTapWindow     = 300 * time.Millisecond
)

// SwipeTracker turns pointer drags into Move intents.
// The origin follows the pointer on every move, so only a quick drag registers.
type SwipeTracker struct {
	MinDistance float64
	active      bool
	x, y        float64
}

func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{MinDistance: DefaultSwipeDistance}
}

// Begin records the touch origin
func (st *SwipeTracker) Begin(x, y float64) {
	st.active = true
	st.x, st.y = x, y
}

// End forgets the origin
func (st *SwipeTracker) End() {
	st.active = false
}

// Move returns a Move intent when the step from the last pointer position exceeds
// MinDistance along a strictly dominant axis
func (st *SwipeTracker) Move(x, y float64) (Intent, bool) {
	if !st.active {
		return Intent{}, false
	}

	dx, dy := x-st.x, y-st.y
	st.x, st.y = x, y

	adx, ady := abs(dx), abs(dy)
	switch {
	case adx > ady && adx > st.MinDistance:
		if dx > 0 {
			return Move(types.Right), true
		}
		return Move(types.Left), true
	case ady > adx && ady > st.MinDistance:
		if dy > 0 {
			return Move(types.Down), true
		}
		return Move(types.Up), true
	}
	return Intent{}, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TapDetector recognises two taps within Window as a double tap
type TapDetector struct {
	Window time.Duration
	last   time.Time
}

func NewTapDetector() *TapDetector {
	return &TapDetector{Window: DefaultTapWindow}
}

// Tap registers a tap at now and reports whether it follows the previous one within Window
func (td *TapDetector) Tap(now time.Time) bool {
	gap := now.Sub(td.last)
	double := !td.last.IsZero() && gap > 0 && gap < td.Window
	td.last = now
	return double
}
