package easel

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window for Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
	Debug     bool
}

// game adapts a Page to the ebiten.Game interface.
type game struct {
	page   *Page
	width  int
	height int
}

func (g *game) Update() error {
	return g.page.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the page's Update/Draw loop until the window
// is closed. Blocks until then.
func Run(page *Page, cfg RunConfig) error {
	if page == nil {
		return errors.New("easel: Run requires a non-nil page")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("easel: Run requires positive window dimensions")
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if cfg.Debug {
		page.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		page.Root().AddChild(NewFPSWidget())
	}

	return ebiten.RunGame(&game{page: page, width: cfg.Width, height: cfg.Height})
}
