package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-arcade/game/types"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *Surface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminal(screen, 20, zerolog.Nop())
	surface, err := term.CreateSurface(640, 480)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	screen.SetSize(64, 24)
	t.Cleanup(term.Quit)
	return term, screen, surface
}

func TestTerminalDrawRect(t *testing.T) {
	term, screen, surface := newTestTerminal(t)

	// Cell {1 2} is columns 2-3 on row 2.
	term.DrawRect(surface, 20, 40, 20, 20, types.Red)
	term.Present(surface)

	red := tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	for _, col := range []int{2, 3} {
		if _, _, style, _ := screen.GetContent(col, 2); style != red {
			t.Errorf("column %d row 2 not painted red", col)
		}
	}
	for _, pos := range [][2]int{{1, 2}, {4, 2}, {2, 1}, {2, 3}} {
		if _, _, style, _ := screen.GetContent(pos[0], pos[1]); style == red {
			t.Errorf("column %d row %d painted outside the cell", pos[0], pos[1])
		}
	}
}

func TestTerminalPollEvents(t *testing.T) {
	term, screen, _ := newTestTerminal(t)

	if events := term.PollEvents(); len(events) != 0 {
		t.Fatalf("events before input: %v", events)
	}

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var got []Event
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		got = append(got, term.PollEvents()...)
		time.Sleep(5 * time.Millisecond)
	}

	want := []Event{{Kind: EventKeyDown, Key: KeyLeft}, {Kind: EventQuit}}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Event
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Event{Kind: EventKeyDown, Key: KeyUp}, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Event{Kind: EventKeyDown, Key: KeyDown}, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Event{Kind: EventKeyDown, Key: KeyRight}, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Event{Kind: EventQuit}, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Event{Kind: EventQuit}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Event{Kind: EventQuit}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), Event{}, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Event{}, false},
	}
	for _, tt := range tests {
		got, ok := translate(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("translate(%v) = %v, %v; want %v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestTerminalQuitTwice(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.Quit()
	term.Quit()
}

func TestTerminalQuitBeforeSurface(t *testing.T) {
	term := NewTerminal(tcell.NewSimulationScreen("UTF-8"), 20, zerolog.Nop())
	term.Quit()
}
