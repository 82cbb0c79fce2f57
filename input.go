package flick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerTracker normalizes mouse and touch input into one pointer sample per
// frame. Mouse (left button) and touch are treated uniformly once the client
// position is extracted; when touching, the first active touch point drives
// the sample and is followed until it lifts.
type pointerTracker struct {
	usingTouch bool
	touchID    ebiten.TouchID
	touchIDs   []ebiten.TouchID // reused buffer for AppendTouchIDs
}

// poll reads the current device state and returns the pointer position and
// whether it is pressed. With nothing pressed it returns the mouse cursor
// position (hover), which callers ignore outside a drag.
func (p *pointerTracker) poll() (x, y float64, pressed bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	// A touch already being followed wins over everything until it lifts.
	if p.usingTouch {
		for _, id := range p.touchIDs {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		p.usingTouch = false
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		return float64(mx), float64(my), true
	}

	if len(p.touchIDs) > 0 {
		p.usingTouch = true
		p.touchID = p.touchIDs[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), false
}

// handlePointer runs the drag state machine for one pointer sample. Presses
// only grab when the press edge lands on the body; moves outside an active
// drag are no-ops.
func (w *Widget) handlePointer(x, y float64, pressed bool) {
	switch {
	case pressed && !w.pointerDown:
		w.pointerDown = true
		if w.Body.Rect().Contains(x, y) {
			w.beginDrag(x, y)
		}
	case pressed && w.pointerDown:
		if w.phase == PhaseDragging {
			w.dragMove(x, y)
		}
	case !pressed && w.pointerDown:
		w.pointerDown = false
		if w.phase == PhaseDragging {
			w.endDrag()
		}
	}
}

// beginDrag starts a drag session: any in-flight simulation is cancelled,
// residual momentum is discarded, and the grab offset (pointer minus body
// position) is captured so the body doesn't jump to the pointer.
func (w *Widget) beginDrag(x, y float64) {
	w.clock.Stop()
	w.Body.stopAll()
	w.velocity.reset()
	w.grab = Vec2{X: x - w.Body.X, Y: y - w.Body.Y}
	w.phase = PhaseDragging
	w.velocity.sample(&w.Body, x, y, w.now(), w.cfg.RotationMultiplier)
}

// dragMove feeds the sample to the velocity tracker and moves the body so the
// grab point stays under the pointer.
func (w *Widget) dragMove(x, y float64) {
	w.velocity.sample(&w.Body, x, y, w.now(), w.cfg.RotationMultiplier)
	w.Body.X = x - w.grab.X
	w.Body.Y = y - w.grab.Y
}

// endDrag releases the body: the session ends, the release time is stamped,
// and the simulation loop starts with whatever velocity the drag built up.
func (w *Widget) endDrag() {
	w.phase = PhaseFalling
	w.hitLastTick = false
	w.clock.Start()
}
