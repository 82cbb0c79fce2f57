package flick

// resolveBounds clamps the body into the viewport and reflects its velocity
// off any edge it crossed. Axes are checked independently, X before Y, with
// exclusive branches per axis: the body cannot hit both walls of one axis in
// a single tick. Each wall also kicks the angular velocity from the velocity
// component running along it, which is what makes thrown bodies tumble.
// Returns whether any edge fired.
//
// The viewport is recomputed by the caller each tick, so a resize takes
// effect on the very next check.
func resolveBounds(b *Body, cfg Config, viewportW, viewportH float64) bool {
	maxX := viewportW - b.Width
	maxY := viewportH - b.Height
	hit := false

	if b.X < 0 {
		b.X = 0
		b.VX = -b.VX * cfg.Bounce
		b.Angular = -b.VY * cfg.RotationMultiplier
		hit = true
	} else if b.X > maxX {
		b.X = maxX
		b.VX = -b.VX * cfg.Bounce
		b.Angular = b.VY * cfg.RotationMultiplier
		hit = true
	}

	if b.Y < 0 {
		b.Y = 0
		b.VY = -b.VY * cfg.Bounce
		b.Angular = b.VX * cfg.RotationMultiplier
		hit = true
	} else if b.Y > maxY {
		b.Y = maxY
		b.VY = -b.VY * cfg.Bounce
		// Floor hits tumble harder and scrub off extra horizontal speed.
		b.Angular = -b.VX * cfg.RotationMultiplier * 2
		b.VX *= cfg.Friction * 0.9
		hit = true
	}

	return hit
}
