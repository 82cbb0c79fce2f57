package flick

import "math"

// Body is the single rigid rectangle the simulation moves. A flat mutable
// struct with exported fields, owned by one Widget and mutated only inside a
// drag handler or a simulation tick, never both in the same frame.
type Body struct {
	// Position of the top-left corner in viewport pixels.
	X, Y float64
	// Fixed dimensions in pixels.
	Width, Height float64
	// Rotation in degrees, kept in [0, 360) by normalizeDegrees.
	Rotation float64
	// Linear velocity in pixels per second.
	VX, VY float64
	// Angular velocity in degrees per second.
	Angular float64
}

// Rect returns the body's axis-aligned rectangle (rotation ignored — hit
// testing and boundary checks both use the unrotated footprint).
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// stopAll zeroes all velocities. Called on grab (a fresh grab discards
// residual momentum) and on settlement.
func (b *Body) stopAll() {
	b.VX = 0
	b.VY = 0
	b.Angular = 0
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// snapRightAngle returns the multiple of 90 degrees nearest to deg,
// normalized to [0, 360).
func snapRightAngle(deg float64) float64 {
	return normalizeDegrees(math.Round(deg/90) * 90)
}
