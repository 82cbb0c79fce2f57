package flick

import (
	"testing"
	"time"
)

func newTestClock() (*frameClock, *time.Time) {
	cur := new(time.Time)
	*cur = time.Unix(0, 0)
	return newFrameClock(func() time.Time { return *cur }), cur
}

func TestFrameClockNotRunningByDefault(t *testing.T) {
	c, _ := newTestClock()
	if c.Running() {
		t.Error("new clock should not be running")
	}
	if _, ok := c.Tick(); ok {
		t.Error("Tick on an idle clock should report no tick")
	}
}

func TestFrameClockTickDelta(t *testing.T) {
	c, cur := newTestClock()
	c.Start()

	*cur = cur.Add(16 * time.Millisecond)
	dt, ok := c.Tick()
	if !ok {
		t.Fatal("expected a tick while running")
	}
	if dt != 16 {
		t.Errorf("dt = %v, want 16", dt)
	}

	*cur = cur.Add(7 * time.Millisecond)
	if dt, _ = c.Tick(); dt != 7 {
		t.Errorf("dt = %v, want 7", dt)
	}
}

// A stalled host (tab suspended, slow device) must not feed the integrator a
// huge delta.
func TestFrameClockCapsDelta(t *testing.T) {
	c, cur := newTestClock()
	c.Start()

	*cur = cur.Add(3 * time.Second)
	dt, ok := c.Tick()
	if !ok || dt != maxTickMS {
		t.Errorf("dt = %v (ok=%v), want capped at %v", dt, ok, maxTickMS)
	}

	// The stamp still advanced to now: the following tick is small again.
	*cur = cur.Add(16 * time.Millisecond)
	if dt, _ = c.Tick(); dt != 16 {
		t.Errorf("dt after cap = %v, want 16", dt)
	}
}

func TestFrameClockNegativeDelta(t *testing.T) {
	c, cur := newTestClock()
	c.Start()

	*cur = cur.Add(-10 * time.Millisecond)
	if dt, _ := c.Tick(); dt != 0 {
		t.Errorf("dt = %v, want 0 for a backwards clock", dt)
	}
}

func TestFrameClockStopCancels(t *testing.T) {
	c, cur := newTestClock()
	c.Start()
	if !c.Running() {
		t.Fatal("clock should run after Start")
	}
	c.Stop()
	if c.Running() {
		t.Error("clock should not run after Stop")
	}
	*cur = cur.Add(16 * time.Millisecond)
	if _, ok := c.Tick(); ok {
		t.Error("stopped clock must not tick")
	}
}

func TestFrameClockRestart(t *testing.T) {
	c, cur := newTestClock()
	c.Start()
	*cur = cur.Add(time.Hour) // long idle gap before restart
	c.Stop()
	c.Start()

	*cur = cur.Add(16 * time.Millisecond)
	if dt, _ := c.Tick(); dt != 16 {
		t.Errorf("dt after restart = %v, want 16 (gap must not leak in)", dt)
	}
}
