// Package flick is a throwable-button widget for [Ebitengine].
//
// A flick [Widget] is a single rigid rectangle the user can grab with mouse
// or touch and fling across the viewport. On release it tumbles under
// gravity, scrubs off speed against the walls and floor, and settles flat.
// The first scroll past a small threshold drops the resting button to the
// bottom of the viewport, once.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	w := flick.NewWidget(flick.DefaultConfig)
//	w.Body.X, w.Body.Y = 260, 80
//	flick.Run(w, flick.RunConfig{
//		Title: "Throw me", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself:
//
//	type Game struct{ w *flick.Widget }
//
//	func (g *Game) Update() error        { g.w.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.w.Draw(s) }
//	func (g *Game) Layout(ow, oh int) (int, int) {
//		g.w.SetViewport(640, 480)
//		return 640, 480
//	}
//
// Call [Widget.Attach] before the first Update and [Widget.Detach] on
// teardown; Detach cancels any pending simulation work.
//
// Hosts with their own render sink can skip [Widget.Draw] and consume
// [Widget.Transform] instead — the widget has no opinion on how the
// transform is painted.
//
// # Simulation
//
// The physics is a purpose-built single-body simulator, not a general
// engine: per-axis wall bounces with restitution, per-tick friction, and a
// stylistic spin heuristic that couples horizontal acceleration into
// rotation. Tuning lives in [Config]; [DefaultConfig] matches the intended
// feel.
//
// Input can be injected ([Widget.InjectDrag] and friends) or scripted from
// JSON ([LoadScript]) for automated runs. The drop ease uses [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package flick
