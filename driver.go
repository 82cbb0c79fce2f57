package flick

import "time"

// maxTickMS caps the elapsed time fed into a single simulation tick. A host
// that was backgrounded or stalled otherwise hands the integrator a huge dt
// and the body teleports.
const maxTickMS = 50.0

// frameClock owns the simulation's per-frame scheduling: Start stamps the
// release time, Tick measures the capped delta since the previous tick, and
// Stop cancels the loop. There is no goroutine — the host's game loop calls
// Tick once per frame and the clock only says whether a tick is due and how
// much time it covers.
type frameClock struct {
	running bool
	last    time.Time
	now     func() time.Time
}

func newFrameClock(now func() time.Time) *frameClock {
	return &frameClock{now: now}
}

// Start begins (or restarts) the loop, stamping the current time as the last
// tick. Safe to call while already running.
func (c *frameClock) Start() {
	c.running = true
	c.last = c.now()
}

// Stop cancels the loop. Stopping an idle clock is a no-op. A new drag and
// Widget.Detach both go through here, so no stale tick can fire afterwards.
func (c *frameClock) Stop() {
	c.running = false
}

// Running reports whether the loop is active.
func (c *frameClock) Running() bool {
	return c.running
}

// Tick returns the elapsed milliseconds since the previous tick, capped at
// maxTickMS, and whether a tick should run at all. Negative deltas (a clock
// stepping backwards) count as zero.
func (c *frameClock) Tick() (dt float64, ok bool) {
	if !c.running {
		return 0, false
	}
	now := c.now()
	dt = float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxTickMS {
		dt = maxTickMS
	}
	return dt, true
}
