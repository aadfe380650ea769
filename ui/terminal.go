package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-arcade/game/types"
)

const eventBuffer = 256

var terminalKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
}

// Terminal is a Service that draws on a tcell screen. A square of cellSize
// pixels becomes two columns by one row so cells look roughly square.
// Escape, q and Ctrl-C quit.
type Terminal struct {
	screen   tcell.Screen
	cellSize int
	log      zerolog.Logger
	pacer    *Pacer

	events   chan tcell.Event
	done     chan struct{}
	started  bool
	quitOnce sync.Once
}

func NewTerminal(screen tcell.Screen, cellSize int, log zerolog.Logger) *Terminal {
	return &Terminal{
		screen:   screen,
		cellSize: cellSize,
		log:      log,
		pacer:    NewPacer(),
		events:   make(chan tcell.Event, eventBuffer),
		done:     make(chan struct{}),
	}
}

func (t *Terminal) CreateSurface(width, height int) (*Surface, error) {
	if err := t.screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	t.started = true
	t.screen.HideCursor()
	t.screen.Clear()

	cols, rows := t.screen.Size()
	needCols, needRows := t.toColumn(width), t.toRow(height)
	if cols < needCols || rows < needRows {
		t.log.Warn().
			Int("cols", cols).Int("rows", rows).
			Int("need_cols", needCols).Int("need_rows", needRows).
			Msg("terminal smaller than the board, drawing will be clipped")
	}

	go t.pump()
	t.pacer.Reset()
	return &Surface{Width: width, Height: height}, nil
}

// pump moves events from the blocking PollEvent into the buffered channel
// until the screen is finalised.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) PollEvents() []Event {
	var events []Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func translate(ev tcell.Event) (Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Event{}, false
	}
	if k, ok := terminalKeys[key.Key()]; ok {
		return Event{Kind: EventKeyDown, Key: k}, true
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Event{Kind: EventQuit}, true
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return Event{Kind: EventQuit}, true
		}
	}
	return Event{}, false
}

func (t *Terminal) toColumn(px int) int {
	return px * 2 / t.cellSize
}

func (t *Terminal) toRow(px int) int {
	return px / t.cellSize
}

func (t *Terminal) DrawRect(_ *Surface, x, y, w, h int, c types.Color) {
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for row := t.toRow(y); row < t.toRow(y+h); row++ {
		for col := t.toColumn(x); col < t.toColumn(x+w); col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *Terminal) Present(_ *Surface) {
	t.screen.Show()
}

func (t *Terminal) DelayUntilNextTick(ticksPerSecond int) {
	t.pacer.Wait(ticksPerSecond)
}

func (t *Terminal) Quit() {
	t.quitOnce.Do(func() {
		close(t.done)
		if t.started {
			t.screen.Fini()
		}
	})
}
