package flick

import "time"

// velocityTracker derives the body's release velocity from successive drag
// samples. It keeps only the last observed sample; each new one turns the
// position delta into pixels per second.
//
// The angular velocity is not physical: it is set from the change in
// horizontal velocity between samples, so a sudden sideways yank puts spin on
// the body. This is a deliberate stylistic approximation and is kept as-is.
type velocityTracker struct {
	lastX, lastY float64
	lastT        time.Time
	has          bool
}

// reset forgets the previous sample. Called when a drag starts so the first
// move of a new session never pairs with a stale sample.
func (v *velocityTracker) reset() {
	v.has = false
}

// sample records a drag position at time t and updates the body's velocities
// from the delta to the previous sample. Zero or negative elapsed time (a
// duplicate-timestamp event) skips the update entirely; the previous velocity
// and sample are kept.
func (v *velocityTracker) sample(b *Body, x, y float64, t time.Time, rotationMultiplier float64) {
	if v.has {
		dt := t.Sub(v.lastT).Seconds()
		if dt <= 0 {
			return
		}
		vx := (x - v.lastX) / dt
		vy := (y - v.lastY) / dt
		b.Angular = (vx - b.VX) * rotationMultiplier
		b.VX = vx
		b.VY = vy
	}
	v.lastX = x
	v.lastY = y
	v.lastT = t
	v.has = true
}
