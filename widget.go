package flick

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// wheelNotch converts one mouse wheel unit into scroll pixels, approximating
// a page scroll for hosts that don't feed NotifyScroll themselves.
const wheelNotch = 40.0

// Widget is a throwable button: grab it with mouse or touch, fling it, and it
// tumbles off the viewport walls under gravity until it settles. All state is
// owned by the widget and mutated only inside Update — single-threaded,
// cooperative, no locks.
type Widget struct {
	// Body is the simulated rectangle. Hosts may set its position directly
	// before attaching.
	Body Body
	// Color tints the drawn rectangle.
	Color Color

	cfg       Config
	phase     Phase
	clock     *frameClock
	velocity  velocityTracker
	pointer   pointerTracker
	presenter presenter

	grab        Vec2 // pointer-to-body offset captured at grab time
	pointerDown bool
	hitLastTick bool

	attached             bool
	viewportW, viewportH float64
	scrollY              float64

	injectQueue []syntheticEvent
	script      *ScriptRunner
	debug       bool

	// now is the widget's clock; tests swap it for a fake.
	now func() time.Time
}

// NewWidget creates a detached widget with the given config. Call Attach
// before driving it from a game loop.
func NewWidget(cfg Config) *Widget {
	w := &Widget{
		cfg:   cfg,
		Color: ColorWhite,
		Body:  Body{Width: cfg.Width, Height: cfg.Height},
		now:   time.Now,
	}
	w.clock = newFrameClock(func() time.Time { return w.now() })
	return w
}

// Attach makes the widget live: Update starts processing input and ticking
// the simulation. Attach/Detach pairs are re-entrant with no leaked state.
func (w *Widget) Attach() {
	w.attached = true
}

// Detach tears the widget down: any pending simulation work is cancelled and
// an in-flight drag session is discarded, so nothing mutates the widget after
// this returns. The widget can be re-attached later.
func (w *Widget) Detach() {
	w.attached = false
	w.clock.Stop()
	if w.phase == PhaseDragging {
		w.phase = PhaseIdle
	}
	w.pointerDown = false
}

// Attached reports whether the widget is live.
func (w *Widget) Attached() bool {
	return w.attached
}

// Phase returns the current motion phase.
func (w *Widget) Phase() Phase {
	return w.phase
}

// Dropped reports whether the one-shot scroll drop has fired.
func (w *Widget) Dropped() bool {
	return w.presenter.hasDropped
}

// SetViewport sets the logical viewport size in pixels. Call it from the
// host's Layout. A shrink is handled immediately: the body is clamped back
// inside rather than waiting for the next simulation tick.
func (w *Widget) SetViewport(width, height float64) {
	if width == w.viewportW && height == w.viewportH {
		return
	}
	w.viewportW = width
	w.viewportH = height
	if w.attached && w.phase != PhaseDragging {
		resolveBounds(&w.Body, w.cfg, width, height)
	}
}

// Viewport returns the current logical viewport size.
func (w *Widget) Viewport() (width, height float64) {
	return w.viewportW, w.viewportH
}

// NotifyScroll reports the host's scroll offset in pixels. The first offset
// past Config.ScrollThreshold triggers the one-time drop. Hosts without their
// own scroll container can ignore this — Update also accumulates the mouse
// wheel into a synthetic offset.
func (w *Widget) NotifyScroll(offset float64) {
	w.presenter.notifyScroll(w, offset)
}

// SetDebug toggles the debug overlay drawn by Draw (phase and velocities).
func (w *Widget) SetDebug(enabled bool) {
	w.debug = enabled
}

// Transform returns the render transform for the current frame. Hosts with
// their own render sink can consume this instead of calling Draw.
func (w *Widget) Transform() Transform {
	return w.presenter.transform(w)
}

// Update runs one cooperative frame: scripted steps, one pointer sample
// (injected or from the real devices), the scroll signal, and — only while
// falling — one simulation tick. No-op while detached.
func (w *Widget) Update() {
	if !w.attached {
		return
	}

	if w.script != nil {
		w.script.step(w)
	}

	if !w.consumeInjected() {
		x, y, pressed := w.pointer.poll()
		w.handlePointer(x, y, pressed)

		_, wheelY := ebiten.Wheel()
		if wheelY != 0 {
			w.scrollY -= wheelY * wheelNotch
			if w.scrollY < 0 {
				w.scrollY = 0
			}
		}
		w.NotifyScroll(w.scrollY)
	}

	if w.phase == PhaseFalling {
		if dt, ok := w.clock.Tick(); ok {
			running, hit := step(&w.Body, w.cfg, w.viewportW, w.viewportH, dt, w.hitLastTick)
			w.hitLastTick = hit
			if !running {
				w.phase = PhaseResting
				w.clock.Stop()
			}
		}
	}

	w.presenter.update(float32(1.0 / float64(ebiten.TPS())))
}

// Draw paints the body as a solid rectangle rotated about its center, plus
// the debug overlay when enabled.
func (w *Widget) Draw(screen *ebiten.Image) {
	t := w.Transform()

	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(w.Body.Width, w.Body.Height)
	opts.GeoM.Translate(-w.Body.Width/2, -w.Body.Height/2)
	opts.GeoM.Rotate(t.Rotation * math.Pi / 180)
	opts.GeoM.Translate(t.TranslateX+w.Body.Width/2, t.TranslateY+w.Body.Height/2)
	opts.ColorScale.Scale(
		float32(w.Color.R*w.Color.A),
		float32(w.Color.G*w.Color.A),
		float32(w.Color.B*w.Color.A),
		float32(w.Color.A),
	)
	screen.DrawImage(WhitePixel, &opts)

	if w.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"phase: %s\npos: %.1f, %.1f\nvel: %.1f, %.1f\nspin: %.1f deg/s",
			w.phase, w.Body.X, w.Body.Y, w.Body.VX, w.Body.VY, w.Body.Angular))
	}
}
