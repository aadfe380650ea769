package ui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game/types"
)

var windowKeys = map[int32]Key{
	rl.KeyUp:    KeyUp,
	rl.KeyDown:  KeyDown,
	rl.KeyLeft:  KeyLeft,
	rl.KeyRight: KeyRight,
}

// Window is a Service backed by a raylib window. Closing the window or
// pressing Escape quits.
type Window struct {
	title   string
	pacer   *Pacer
	open    bool
	drawing bool
}

func NewWindow(title string) *Window {
	return &Window{
		title: title,
		pacer: NewPacer(),
	}
}

func (w *Window) CreateSurface(width, height int) (*Surface, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), w.title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	w.open = true
	w.pacer.Reset()
	return &Surface{Width: width, Height: height}, nil
}

func (w *Window) PollEvents() []Event {
	// Keys queued by the poll inside the last EndDrawing go first; the
	// explicit poll then picks up whatever arrived during the tick delay.
	events := w.drainKeys(nil)
	rl.PollInputEvents()
	events = w.drainKeys(events)

	if rl.WindowShouldClose() {
		events = append(events, Event{Kind: EventQuit})
	}
	return events
}

func (w *Window) drainKeys(events []Event) []Event {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k, ok := windowKeys[key]; ok {
			events = append(events, Event{Kind: EventKeyDown, Key: k})
		}
	}
	return events
}

func (w *Window) DrawRect(_ *Surface, x, y, width, height int, c types.Color) {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), rl.NewColor(c.R, c.G, c.B, 255))
}

func (w *Window) Present(_ *Surface) {
	if !w.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	w.drawing = false
}

func (w *Window) DelayUntilNextTick(ticksPerSecond int) {
	w.pacer.Wait(ticksPerSecond)
}

func (w *Window) Quit() {
	if w.open {
		rl.CloseWindow()
		w.open = false
	}
}
