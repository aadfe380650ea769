// Package ui provides the display and input backends the game loop draws
// to and reads keys from.
package ui

import "snake-arcade/game/types"

// Surface is the drawable area created by a Service, in pixels.
type Surface struct {
	Width  int
	Height int
}

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Key identifies one of the steering keys.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is a single input event. Key is only set for EventKeyDown.
type Event struct {
	Kind EventKind
	Key  Key
}

// Service is a display and input backend.
type Service interface {
	// CreateSurface opens a drawable area of the given size in pixels.
	CreateSurface(width, height int) (*Surface, error)
	// PollEvents returns every event received since the previous call. It
	// never blocks.
	PollEvents() []Event
	DrawRect(s *Surface, x, y, w, h int, c types.Color)
	// Present shows everything drawn since the previous Present.
	Present(s *Surface)
	// DelayUntilNextTick blocks until 1/ticksPerSecond has passed since the
	// previous call returned.
	DelayUntilNextTick(ticksPerSecond int)
	// Quit releases the display.
	Quit()
}
