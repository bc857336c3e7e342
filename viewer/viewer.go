// Package viewer is the window shell around the scene: it owns the ebiten
// frame loop, turns mouse and keyboard events into camera and color-config
// mutations, and implements the scene's draw-call surface with a software
// rasterizer. The core packages never see a widget or an event; they only
// receive primitive values through this layer.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Elitism/Earth-Population-Map/scene"
)

// Config describes the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Viewer binds one Scene to the render shell.
type Viewer struct {
	scene *scene.Scene
	rend  *renderer
	hud   *hud
	cfg   Config
}

// New prepares the shell for a scene. The texture may be nil, in which
// case the sphere renders shaded but uncolored.
func New(cfg Config, s *scene.Scene, texture *image.RGBA) (*Viewer, error) {
	if cfg.Width <= 0 {
		cfg.Width = 900
	}
	if cfg.Height <= 0 {
		cfg.Height = 650
	}

	var tex *ebiten.Image
	if texture != nil {
		tex = ebiten.NewImageFromImage(texture)
	}

	h, err := newHUD()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		scene: s,
		rend:  newRenderer(cfg.Width, cfg.Height, s.Radius, tex),
		hud:   h,
		cfg:   cfg,
	}, nil
}

// RunWindow opens the window and blocks until it closes.
func RunWindow(v *Viewer) error {
	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&game{v: v})
}

type game struct {
	v *Viewer
}

func (g *game) Update() error {
	g.v.handleInput()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.v.rend.beginFrame(screen)
	scene.Compose(g.v.rend, g.v.scene)
	g.v.hud.draw(screen, g.v.scene)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.v.cfg.Width, g.v.cfg.Height
}
