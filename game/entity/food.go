package entity

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
	"snake-arcade/ui"
)

// Food sits on a single cell until the snake's head reaches it.
type Food struct {
	Position types.Point
	Color    types.Color
	grid     types.Grid
	rng      *rand.Rand
}

// NewFood places food on a random cell. The first placement does not look at
// the snake.
func NewFood(grid types.Grid, color types.Color, rng *rand.Rand) *Food {
	f := &Food{
		Color: color,
		grid:  grid,
		rng:   rng,
	}
	f.Position = f.RandomizePosition()
	return f
}

// RandomizePosition draws a uniformly random cell of the grid.
func (f *Food) RandomizePosition() types.Point {
	return types.Point{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}

// Respawn moves the food to a random cell that is not in occupied. It keeps
// drawing until it finds one, so it never returns on a completely full grid.
func (f *Food) Respawn(occupied types.CellSet) {
	for {
		pos := f.RandomizePosition()
		if !occupied.Has(pos) {
			f.Position = pos
			return
		}
	}
}

func (f *Food) Draw(p Painter, surface *ui.Surface, cfg types.Config) {
	DrawCell(p, surface, cfg, f.Position, f.Color)
}
