package flick

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used to draw solid color rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Phase identifies what currently owns the body's motion. Exactly one phase
// holds at a time; PhaseFalling is the only phase with a running frame clock.
type Phase uint8

const (
	PhaseIdle     Phase = iota // mounted, not yet dropped or interacted with
	PhaseDragging              // pointer holds the body; simulation is stopped
	PhaseFalling               // released; simulation ticks until settlement
	PhaseResting               // settled; waiting for the next grab
)

// String returns the phase name for debug output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseFalling:
		return "falling"
	case PhaseResting:
		return "resting"
	default:
		return "unknown"
	}
}

// Config holds the immutable simulation constants. A Widget copies its Config
// at construction and never mutates it.
type Config struct {
	// Friction is the per-tick linear velocity damping factor, in (0, 1).
	Friction float64
	// Bounce is the restitution applied to the reflected velocity component
	// on a wall hit, in (0, 1).
	Bounce float64
	// Gravity is added to the vertical velocity once per tick, unscaled by
	// elapsed time (velocity units per tick, not per second).
	Gravity float64
	// RotationFriction is the per-tick angular velocity damping factor.
	RotationFriction float64
	// RotationMultiplier couples linear motion into spin: drag acceleration
	// and wall hits set the angular velocity through it.
	RotationMultiplier float64
	// Width and Height are the body's fixed dimensions in pixels.
	Width, Height float64
	// ScrollThreshold is the scroll offset in pixels past which the one-shot
	// drop fires.
	ScrollThreshold float64
	// DropMargin is the gap in pixels left between the body and the floor
	// when the drop repositions it.
	DropMargin float64
}

// DefaultConfig is the tuning used by NewWidget when no overrides are needed.
var DefaultConfig = Config{
	Friction:           0.98,
	Bounce:             0.7,
	Gravity:            0.05,
	RotationFriction:   0.95,
	RotationMultiplier: 0.1,
	Width:              120,
	Height:             48,
	ScrollThreshold:    50,
	DropMargin:         20,
}
