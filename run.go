package flick

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color
	ShowDebug     bool
}

// Run creates a window and a minimal game loop around the widget. For full
// control, implement ebiten.Game yourself and call Widget.Update, Widget.Draw,
// and Widget.SetViewport directly.
func Run(w *Widget, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	w.SetDebug(cfg.ShowDebug)
	w.SetViewport(float64(cfg.Width), float64(cfg.Height))
	w.Attach()
	defer w.Detach()

	return ebiten.RunGame(&game{widget: w, cfg: cfg})
}

type game struct {
	widget *Widget
	cfg    RunConfig
}

func (g *game) Update() error {
	g.widget.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.widget.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.widget.SetViewport(float64(g.cfg.Width), float64(g.cfg.Height))
	return g.cfg.Width, g.cfg.Height
}
