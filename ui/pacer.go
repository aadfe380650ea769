package ui

import "time"

// Pacer caps a loop at a fixed number of iterations per second.
type Pacer struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer returns a pacer whose first tick starts now.
func NewPacer() *Pacer {
	return newPacer(time.Now, time.Sleep)
}

func newPacer(now func() time.Time, sleep func(time.Duration)) *Pacer {
	p := &Pacer{now: now, sleep: sleep}
	p.Reset()
	return p
}

// Reset marks now as the start of the current tick.
func (p *Pacer) Reset() {
	p.last = p.now()
}

// Wait sleeps for whatever is left of the current tick, measured from the
// previous Wait or Reset.
func (p *Pacer) Wait(ticksPerSecond int) {
	interval := time.Second / time.Duration(ticksPerSecond)
	now := p.now()
	if elapsed := now.Sub(p.last); elapsed < interval {
		p.sleep(interval - elapsed)
		now = p.now()
	}
	p.last = now
}
