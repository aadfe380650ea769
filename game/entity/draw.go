package entity

import (
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

// Painter is the part of ui.Service the entities draw with.
type Painter interface {
	DrawRect(s *ui.Surface, x, y, w, h int, c types.Color)
}

// DrawCell paints one cell-sized square at cell.
func DrawCell(p Painter, surface *ui.Surface, cfg types.Config, cell types.Point, c types.Color) {
	x, y := cfg.CellToPixel(cell)
	p.DrawRect(surface, x, y, cfg.CellSize, cfg.CellSize, c)
}
