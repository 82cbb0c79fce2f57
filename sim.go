package flick

// Settlement thresholds. The body is considered at rest when every motion
// component is below its threshold while the body sits on the floor.
const (
	settleVX      = 0.01
	settleVY      = 0.05
	settleAngular = 0.01
)

// step advances the body by one simulated tick of dt milliseconds and reports
// whether the simulation should keep running (false once settled).
//
// Settlement is tested against the state the tick starts with: a body that
// begins the tick resting on the floor with negligible motion is stopped
// before any new forces apply. hitLastTick is the boundary flag from the
// previous tick — a body that settles without having just bounced gets its
// rotation snapped to the nearest right angle, so it always comes to rest
// flat. The updated hit flag is returned for the next tick.
//
// Gravity is accumulated unscaled per tick (not scaled by dt); position and
// rotation integration use dt. Callers cap dt at maxTickMS so a suspended
// host cannot produce a runaway jump.
func step(b *Body, cfg Config, viewportW, viewportH, dt float64, hitLastTick bool) (running, hit bool) {
	maxY := viewportH - b.Height
	if abs(b.VX) < settleVX && abs(b.VY) < settleVY && abs(b.Angular) < settleAngular && b.Y >= maxY {
		b.stopAll()
		if !hitLastTick {
			b.Rotation = snapRightAngle(b.Rotation)
		}
		return false, false
	}

	b.VY += cfg.Gravity
	b.VX *= cfg.Friction
	b.VY *= cfg.Friction

	b.X += b.VX * dt / 1000
	b.Y += b.VY * dt / 1000

	hit = resolveBounds(b, cfg, viewportW, viewportH)

	b.Angular *= cfg.RotationFriction
	b.Rotation = normalizeDegrees(b.Rotation + b.Angular*dt/1000)

	return true, hit
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
