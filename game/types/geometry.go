package types

import "github.com/zyedidia/generic/mapset"

// CellToPixel returns the top-left pixel of a cell.
func (c Config) CellToPixel(p Point) (x, y int) {
	return p.X * c.CellSize, p.Y * c.CellSize
}

// WrapPixel moves a pixel position by a pixel delta on the toroidal screen.
func (c Config) WrapPixel(pos, delta Point) Point {
	return Wrap(pos, delta, Grid{Width: c.ScreenWidth, Height: c.ScreenHeight})
}

// Wrap returns (pos + delta) mod bounds on each axis. The result is always
// inside [0,Width) x [0,Height), also for negative deltas.
func Wrap(pos, delta Point, bounds Grid) Point {
	p := pos.Add(delta)
	return Point{
		X: mod(p.X, bounds.Width),
		Y: mod(p.Y, bounds.Height),
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Step returns the neighbour of p in direction d, wrapping around the edges.
func (g Grid) Step(p Point, d Direction) Point {
	return Wrap(p, Point(d), g)
}

// Center is the cell the snake starts on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies within the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellSet is an unordered set of occupied cells.
type CellSet = mapset.Set[Point]

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Point) CellSet {
	set := mapset.New[Point]()
	for _, c := range cells {
		set.Put(c)
	}
	return set
}
