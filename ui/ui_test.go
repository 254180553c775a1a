package ui

import (
	"testing"

	"snake-arcade/game/types"
	"snake-arcade/input"
)

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(1400, 800, 20)

	if l.CellSize != 39 {
		t.Errorf("cell size = %d, want 39", l.CellSize)
	}
	if l.GridPixels != 780 {
		t.Errorf("grid pixels = %d, want 780", l.GridPixels)
	}
	if l.OffsetY != 10 {
		t.Errorf("offset y = %d, want 10", l.OffsetY)
	}
	if l.OffsetX+l.GridPixels > l.StatsX {
		t.Errorf("board overlaps stats panel: %d > %d", l.OffsetX+l.GridPixels, l.StatsX)
	}

	x, y := l.CellRect(types.Point{X: 2, Y: 3})
	if x != l.OffsetX+78 || y != l.OffsetY+117 {
		t.Errorf("cell rect = (%d,%d)", x, y)
	}
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := ComputeLayout(50, 30, 20)
	if l.CellSize < 1 {
		t.Fatalf("cell size = %d", l.CellSize)
	}
	if l.FontSize < 10 {
		t.Errorf("font size = %d", l.FontSize)
	}
}

func TestBindingsCoverIntents(t *testing.T) {
	want := map[input.Intent]bool{
		input.Move(types.Up):       false,
		input.Move(types.Down):     false,
		input.Move(types.Left):     false,
		input.Move(types.Right):    false,
		input.TogglePause():        false,
		input.StartIntent():        false,
		input.ResetIntent():        false,
		input.Select(types.Easy):   false,
		input.Select(types.Normal): false,
		input.Select(types.Hard):   false,
	}
	keys := make(map[int32]bool)
	for _, b := range Bindings {
		if keys[b.Key] {
			t.Errorf("key %d bound twice", b.Key)
		}
		keys[b.Key] = true
		if _, ok := want[b.Intent]; !ok {
			t.Errorf("unexpected intent %v", b.Intent)
		}
		want[b.Intent] = true
	}
	for in, seen := range want {
		if !seen {
			t.Errorf("no key for %v", in)
		}
	}
}
