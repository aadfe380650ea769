package types

// Point is a cell on the grid, X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	Green = Color{R: 0, G: 255, B: 0}
	Red   = Color{R: 255, G: 0, B: 0}
)

// Direction is a unit vector along one of the grid axes.
type Direction Point

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
