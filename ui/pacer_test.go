package ui

import (
	"testing"
	"time"
)

type fakeTime struct {
	now    time.Time
	sleeps []time.Duration
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
}

func newTestPacer() (*Pacer, *fakeTime) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	return newPacer(ft.Now, ft.Sleep), ft
}

func TestPacerFirstWaitSleepsTheRemainder(t *testing.T) {
	p, ft := newTestPacer()
	ft.now = ft.now.Add(10 * time.Millisecond)
	p.Wait(10)
	if len(ft.sleeps) != 1 || ft.sleeps[0] != 90*time.Millisecond {
		t.Errorf("sleeps = %v, want [90ms]", ft.sleeps)
	}
}

func TestPacerResetStartsANewTick(t *testing.T) {
	p, ft := newTestPacer()
	ft.now = ft.now.Add(time.Second)
	p.Reset()

	ft.now = ft.now.Add(40 * time.Millisecond)
	p.Wait(10)
	if len(ft.sleeps) != 1 || ft.sleeps[0] != 60*time.Millisecond {
		t.Errorf("sleeps = %v, want [60ms]", ft.sleeps)
	}
}

func TestPacerSleepsTheRemainder(t *testing.T) {
	p, ft := newTestPacer()
	p.Wait(10)
	ft.sleeps = nil

	ft.now = ft.now.Add(30 * time.Millisecond)
	p.Wait(10)
	if len(ft.sleeps) != 1 || ft.sleeps[0] != 70*time.Millisecond {
		t.Fatalf("sleeps = %v, want [70ms]", ft.sleeps)
	}

	// A slow tick is not paid back.
	ft.now = ft.now.Add(250 * time.Millisecond)
	p.Wait(10)
	if len(ft.sleeps) != 1 {
		t.Errorf("slept after an overlong tick: %v", ft.sleeps)
	}

	ft.now = ft.now.Add(100 * time.Millisecond)
	p.Wait(10)
	if len(ft.sleeps) != 1 {
		t.Errorf("slept after an exact tick: %v", ft.sleeps)
	}
}
