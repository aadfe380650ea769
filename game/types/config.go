package types

import "time"

// Config holds the fixed gameplay constants. It is built once at startup and
// passed by value; nothing mutates it afterwards.
type Config struct {
	ScreenWidth    int
	ScreenHeight   int
	CellSize       int
	TicksPerSecond int

	Background Color
	SnakeColor Color
	FoodColor  Color
}

// DefaultConfig returns the 640x480 board of 20px cells, ticking at 10 Hz.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    640,
		ScreenHeight:   480,
		CellSize:       20,
		TicksPerSecond: 10,
		Background:     Black,
		SnakeColor:     Green,
		FoodColor:      Red,
	}
}

// Grid returns the board size in cells.
func (c Config) Grid() Grid {
	return Grid{
		Width:  c.ScreenWidth / c.CellSize,
		Height: c.ScreenHeight / c.CellSize,
	}
}

// TickInterval is the wall-clock length of one tick.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
