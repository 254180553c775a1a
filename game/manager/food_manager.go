package manager

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// maxFoodAttempts bounds rejection sampling before falling back to a free-cell scan
const maxFoodAttempts = 64

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood picks a uniformly random cell not covered by body.
// ok is false only when the board is full.
func (fm *FoodManager) GenerateFood(body []types.Point) (types.Point, bool) {
	occupied := make(map[types.Point]struct{}, len(body))
	for _, part := range body {
		if fm.grid.InBounds(part) {
			occupied[part] = struct{}{}
		}
	}
	if len(occupied) >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxFoodAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Size),
			Y: fm.rng.Intn(fm.grid.Size),
		}
		if _, taken := occupied[food]; !taken {
			return food, true
		}
	}

	// Crowded board: enumerate what is left
	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Size; y++ {
		for x := 0; x < fm.grid.Size; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free[fm.rng.Intn(len(free))], true
}
