package flick

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// dropDuration is how long the presented position takes to ease down to the
// floor after the one-shot drop fires.
const dropDuration = 0.9

// Transform is what the render sink consumes every frame: a translation, a
// rotation, and whether the host may smooth the change. Smoothed is false
// while dragging so tracking feels direct, and false before the drop so the
// body doesn't animate into its initial position.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Rotation   float64 // degrees
	Smoothed   bool
}

// presenter maps simulation state to a Transform and owns the one-shot drop:
// the first scroll past the threshold latches hasDropped, repositions the
// body just above the floor, and eases the presented position there.
type presenter struct {
	hasDropped bool
	dropTween  *gween.Tween // nil unless the drop ease is in flight
	presentedY float64
}

// notifyScroll reports the current scroll offset in pixels. The first offset
// past the configured threshold triggers the drop, exactly once; every later
// call is a no-op. Scrolls during a drag are ignored rather than latched, so
// the drop still fires on the next qualifying scroll after release.
func (p *presenter) notifyScroll(w *Widget, offset float64) {
	if p.hasDropped || offset <= w.cfg.ScrollThreshold {
		return
	}
	if w.phase == PhaseDragging || w.viewportH == 0 {
		return
	}
	p.hasDropped = true

	target := w.viewportH - w.Body.Height - w.cfg.DropMargin
	p.dropTween = gween.New(float32(w.Body.Y), float32(target), dropDuration, ease.OutBounce)
	p.presentedY = w.Body.Y

	w.Body.Y = target
	w.Body.stopAll()
	w.clock.Stop()
	w.phase = PhaseResting
}

// update advances the drop ease by dt seconds.
func (p *presenter) update(dt float32) {
	if p.dropTween == nil {
		return
	}
	v, finished := p.dropTween.Update(dt)
	p.presentedY = float64(v)
	if finished {
		p.dropTween = nil
	}
}

// transform computes the current render transform. While the drop ease is in
// flight the presented Y lags the body; otherwise the body position is passed
// through unchanged.
func (p *presenter) transform(w *Widget) Transform {
	t := Transform{
		TranslateX: w.Body.X,
		TranslateY: w.Body.Y,
		Rotation:   w.Body.Rotation,
		Smoothed:   p.hasDropped && w.phase != PhaseDragging,
	}
	if p.dropTween != nil {
		t.TranslateY = p.presentedY
	}
	return t
}
